package engine

import (
	"math"
	"strings"

	"auditflow-service/internal/app/models"
)

// ScoreResult carries the weighted compliance outcome. Score and Passed are
// nil when scoring is disabled, when no weight exists to score against, or
// when no threshold is configured.
type ScoreResult struct {
	Score  *int  `json:"score"`
	Passed *bool `json:"passed"`
}

// Score computes the 0-100 weighted compliance score for a finalized answer
// set.
//
// Every question contributes its weight to the denominator whether or not it
// was answered. Credit per answered question: single-choice and dropdown earn
// full weight on a case-insensitive "yes"; numeric earns full weight when the
// value is strictly positive; file earns half weight when any value is
// present; other types are not scored.
//
// A critical question of a scored type that was answered but earned no
// credit forces Passed to false; the numeric score is left untouched so the
// report still shows the raw result.
func Score(template *models.Template, snapshot Snapshot) ScoreResult {
	if !template.ScoringEnabled {
		return ScoreResult{}
	}

	var totalWeight, obtained float64
	criticalFailed := false

	for _, q := range template.Questions {
		weight := q.EffectiveWeight()
		totalWeight += weight

		raw, ok := snapshot[q.Key]
		if !ok || !IsAnswered(raw) {
			continue
		}

		credit, scored := questionCredit(q, raw, weight)
		obtained += credit
		if scored && q.Critical && credit == 0 {
			criticalFailed = true
		}
	}

	if totalWeight <= 0 {
		return ScoreResult{}
	}

	score := int(math.Round(100 * obtained / totalWeight))
	result := ScoreResult{Score: &score}

	if template.ComplianceThreshold != nil {
		passed := score >= *template.ComplianceThreshold && !criticalFailed
		result.Passed = &passed
	}
	return result
}

func questionCredit(q models.Question, raw interface{}, weight float64) (credit float64, scored bool) {
	switch q.Type {
	case models.QuestionTypeSingle, models.QuestionTypeDropdown:
		if strings.EqualFold(stringify(raw), "yes") {
			return weight, true
		}
		return 0, true
	case models.QuestionTypeNumeric:
		if value, ok := toFloat(raw); ok && value > 0 {
			return weight, true
		}
		return 0, true
	case models.QuestionTypeFile:
		// IsAnswered already held, so presence is established.
		return weight / 2, true
	}
	return 0, false
}
