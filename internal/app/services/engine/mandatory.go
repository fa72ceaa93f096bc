package engine

import (
	"auditflow-service/internal/app/models"
)

// MissingMandatory returns the display text of every mandatory question that
// is currently visible yet unanswered, in template order. The full list is
// reported so the caller can surface every gap at once.
//
// Hidden questions are exempt: the cascade guarantees they hold no answer,
// so demanding one would make submission impossible.
func MissingMandatory(template *models.Template, snapshot Snapshot) []string {
	visibility := ResolveVisibility(template.LogicRules, snapshot)

	var missing []string
	for _, q := range template.Questions {
		if !q.Mandatory || !visibility.Visible(q.Key) {
			continue
		}
		if !IsAnswered(snapshot[q.Key]) {
			missing = append(missing, q.Text)
		}
	}
	return missing
}
