package engine

import (
	"auditflow-service/internal/app/models"
)

// AnswerStore holds one respondent's answer snapshot together with the
// visibility it implies. Mutations are atomic transitions: the candidate
// snapshot is resolved and purged before anything is published, so observers
// never see an answered-but-hidden question (the visibility-answer
// consistency invariant).
//
// The store is built for a single respondent session and is not safe for
// concurrent writers.
type AnswerStore struct {
	template   *models.Template
	snapshot   Snapshot
	visibility Visibility
}

// NewAnswerStore starts a store at the template's declared defaults: an
// empty selection for multiple-choice, an empty string for dropdowns, nil
// for everything else.
func NewAnswerStore(template *models.Template) *AnswerStore {
	store := &AnswerStore{template: template}
	store.Reset()
	return store
}

// RestoreAnswerStore rebuilds a store around a previously committed
// snapshot, re-resolving visibility and re-enforcing the purge so a stale or
// hand-edited snapshot cannot smuggle in answers for hidden questions.
func RestoreAnswerStore(template *models.Template, snapshot Snapshot) *AnswerStore {
	store := &AnswerStore{template: template}
	candidate := snapshot.Clone()
	store.visibility = store.settle(candidate)
	store.snapshot = candidate
	return store
}

// SetAnswer applies one mutation and runs the cascade. Multiple-choice
// questions toggle the value's membership in the selection; every other type
// replaces the stored value. The returned snapshot and visibility map are
// copies of the committed state.
//
// Cascades resolve to a fixed point: resolve and purge repeat until the
// snapshot stops changing, so a chain of dependent follow-ups settles within
// a single mutation instead of trailing the trigger by one cycle.
func (s *AnswerStore) SetAnswer(questionKey string, value interface{}) (Snapshot, Visibility) {
	candidate := s.snapshot.Clone()

	question := s.template.QuestionByKey(questionKey)
	if question != nil && question.Type == models.QuestionTypeMultiple {
		candidate[questionKey] = toggleMembership(candidate[questionKey], stringify(value))
	} else {
		candidate[questionKey] = value
	}

	s.visibility = s.settle(candidate)
	s.snapshot = candidate

	return s.Snapshot(), s.Visibility()
}

// Reset restores the declared defaults and re-resolves visibility from that
// baseline.
func (s *AnswerStore) Reset() {
	defaults := make(Snapshot, len(s.template.Questions))
	for _, q := range s.template.Questions {
		switch q.Type {
		case models.QuestionTypeMultiple:
			defaults[q.Key] = []string{}
		case models.QuestionTypeDropdown:
			defaults[q.Key] = ""
		default:
			defaults[q.Key] = nil
		}
	}
	s.visibility = s.settle(defaults)
	s.snapshot = defaults
}

// Snapshot returns a copy of the committed answers.
func (s *AnswerStore) Snapshot() Snapshot {
	return s.snapshot.Clone()
}

// Visibility returns a copy of the committed visibility map.
func (s *AnswerStore) Visibility() Visibility {
	out := make(Visibility, len(s.visibility))
	for k, v := range s.visibility {
		out[k] = v
	}
	return out
}

// settle iterates resolve-then-purge until the candidate stops changing.
// Each purge can flip rules that depended on the removed answers, so the
// loop runs at most once per rule target plus the final stable pass.
func (s *AnswerStore) settle(candidate Snapshot) Visibility {
	visibility := ResolveVisibility(s.template.LogicRules, candidate)
	maxPasses := len(visibility) + 1
	for pass := 0; pass < maxPasses; pass++ {
		if !purgeHidden(candidate, visibility) {
			return visibility
		}
		visibility = ResolveVisibility(s.template.LogicRules, candidate)
	}
	return visibility
}

// purgeHidden removes entries held by rule targets that resolved invisible
// and reports whether anything changed.
func purgeHidden(candidate Snapshot, visibility Visibility) bool {
	changed := false
	for target, visible := range visibility {
		if visible {
			continue
		}
		current, exists := candidate[target]
		if !exists {
			continue
		}
		delete(candidate, target)
		if IsAnswered(current) {
			changed = true
		}
	}
	return changed
}

func toggleMembership(current interface{}, value string) []string {
	members, _ := asStringSlice(current)
	for i, member := range members {
		if member == value {
			return append(members[:i], members[i+1:]...)
		}
	}
	return append(members, value)
}
