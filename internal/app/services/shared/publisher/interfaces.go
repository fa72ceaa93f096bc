package publisher

import (
	"context"
)

// EventPublisher emits domain events for downstream consumers such as
// reporting and notification workers.
type EventPublisher interface {
	PublishSubmissionCompleted(ctx context.Context, event *SubmissionCompletedEvent) error
}

// SubmissionCompletedEvent is the message body published after an audit
// response is persisted.
type SubmissionCompletedEvent struct {
	ResponseID   string `json:"responseId"`
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
	Score        *int   `json:"score"`
	Passed       *bool  `json:"passed"`
	SubmittedAt  string `json:"submittedAt"`
}
