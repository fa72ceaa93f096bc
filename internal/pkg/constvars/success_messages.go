package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Template messages
	CreateTemplateSuccess  = "template created successfully"
	FindTemplateSuccess    = "get template successfully"
	ListTemplatesSuccess   = "get templates successfully"
	UpdateTemplateSuccess  = "template updated successfully"
	DeleteTemplateSuccess  = "template deleted successfully"
	PublishTemplateSuccess = "template published successfully"

	// Response messages
	SubmitResponseSuccess = "response submitted successfully"
	ListResponsesSuccess  = "get responses successfully"

	// Session messages
	CreateSessionSuccess = "survey session created successfully"
	FindSessionSuccess   = "get survey session successfully"
	SetAnswerSuccess     = "answer recorded successfully"
	ResetSessionSuccess  = "survey session reset successfully"

	// Upload messages
	UploadImageSuccess = "image uploaded successfully"
)
