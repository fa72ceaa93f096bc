package responses

import "time"

// SessionStateResponse is the respondent-facing view of a survey session:
// the current answer snapshot plus the visibility map the client renders
// from. Questions absent from Visibility are visible.
type SessionStateResponse struct {
	SessionID  string                 `json:"sessionId"`
	TemplateID string                 `json:"templateId"`
	Answers    map[string]interface{} `json:"answers"`
	Visibility map[string]bool        `json:"visibility"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}
