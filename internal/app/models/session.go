package models

import "time"

// Session is a respondent's in-progress answer state. It lives in Redis
// only; submitting it produces a Response document.
type Session struct {
	ID           string                 `json:"id"`
	TemplateID   string                 `json:"templateId"`
	RespondentID string                 `json:"respondentId,omitempty"`
	Answers      map[string]interface{} `json:"answers"`
	Visibility   map[string]bool        `json:"visibility"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}
