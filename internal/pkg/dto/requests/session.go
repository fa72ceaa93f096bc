package requests

type CreateSessionRequest struct {
	TemplateID   string `json:"templateId" validate:"required,object_id"`
	RespondentID string `json:"respondentId"`
}

type SetSessionAnswerRequest struct {
	QuestionID string      `json:"questionId" validate:"required"`
	Value      interface{} `json:"value"`
}

type SubmitSessionRequest struct {
	UserID   string           `json:"userId"`
	Location *GeoPointPayload `json:"location"`
}
