package responses

import "time"

type SubmissionResultResponse struct {
	ResponseID  string    `json:"responseId"`
	TemplateID  string    `json:"templateId"`
	Score       *int      `json:"score"`
	Passed      *bool     `json:"passed"`
	SubmittedAt time.Time `json:"submittedAt"`
}
