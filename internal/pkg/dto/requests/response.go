package requests

// AnswerPayload is one submitted answer in respondent order. QuestionID
// addresses the question by its stable key.
type AnswerPayload struct {
	QuestionID   string      `json:"questionId" validate:"required"`
	QuestionText string      `json:"questionText"`
	Section      string      `json:"section"`
	Type         string      `json:"type"`
	Value        interface{} `json:"value"`
}

type GeoPointPayload struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type SubmitResponseRequest struct {
	TemplateID string           `json:"templateId" validate:"required,object_id"`
	Answers    []AnswerPayload  `json:"answers" validate:"required,min=1,dive"`
	UserID     string           `json:"userId"`
	Location   *GeoPointPayload `json:"location"`
}
