package engine

import (
	"auditflow-service/internal/app/models"
)

// RuleFires folds the rule's conditions left to right into one verdict.
//
// The first condition seeds the accumulator; each later condition is
// evaluated on its own and combined through its connective. Conditions are
// never short-circuited: callers can rely on every referenced question being
// looked at, which keeps per-condition "unanswered" behavior uniform.
// A rule with no conditions never fires.
func RuleFires(rule models.LogicRule, snapshot Snapshot) bool {
	if len(rule.Conditions) == 0 {
		return false
	}

	result := EvaluateCondition(rule.Conditions[0], snapshot)
	for _, cond := range rule.Conditions[1:] {
		value := EvaluateCondition(cond, snapshot)
		if cond.LogicOp == models.LogicOpOr {
			result = result || value
		} else {
			result = result && value
		}
	}
	return result
}
