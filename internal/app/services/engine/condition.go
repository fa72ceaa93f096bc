package engine

import (
	"auditflow-service/internal/app/models"
)

// EvaluateCondition evaluates one condition against the snapshot.
//
// An unanswered referenced question makes the condition false no matter the
// operator. Ordering operators coerce both sides to numbers and are false
// when either side does not parse. Equality operators compare stringified
// values; multi-select answers are joined with a fixed separator first.
func EvaluateCondition(cond models.Condition, snapshot Snapshot) bool {
	raw, ok := snapshot[cond.Question]
	if !ok || !IsAnswered(raw) {
		return false
	}

	switch cond.Operator {
	case models.OperatorLess, models.OperatorGreater,
		models.OperatorLessOrEqual, models.OperatorGreaterOrEqual:
		answered, okA := toFloat(raw)
		expected, okB := toFloat(cond.Value)
		if !okA || !okB {
			return false
		}
		switch cond.Operator {
		case models.OperatorLess:
			return answered < expected
		case models.OperatorGreater:
			return answered > expected
		case models.OperatorLessOrEqual:
			return answered <= expected
		default:
			return answered >= expected
		}
	case models.OperatorEqual:
		return stringify(raw) == stringify(cond.Value)
	case models.OperatorNotEqual:
		return stringify(raw) != stringify(cond.Value)
	}

	// Unknown operators are rejected at template save time; evaluation
	// treats them as never satisfied.
	return false
}
