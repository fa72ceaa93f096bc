package engine

import (
	"testing"

	"auditflow-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func showRule(target string, conditions ...models.Condition) models.LogicRule {
	return models.LogicRule{Conditions: conditions, Action: models.Action{Type: models.ActionShow, Target: target}}
}

func hideRule(target string, conditions ...models.Condition) models.LogicRule {
	return models.LogicRule{Conditions: conditions, Action: models.Action{Type: models.ActionHide, Target: target}}
}

func TestResolveVisibility_ShowRule(t *testing.T) {
	rules := []models.LogicRule{
		showRule("q2", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
	}

	t.Run("fires", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{"q1": "Yes"})
		assert.True(t, visibility["q2"])
	})

	t.Run("does not fire", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{"q1": "No"})
		assert.False(t, visibility["q2"], "a show-ruled target with no firing rule is hidden by default")
	})

	t.Run("dependency unanswered", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{})
		assert.False(t, visibility["q2"])
	})
}

func TestResolveVisibility_HidePrecedence(t *testing.T) {
	// Both a show and a hide rule fire for the same target: hide wins.
	rules := []models.LogicRule{
		showRule("q3", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
		hideRule("q3", cond("q2", models.OperatorEqual, "Yes", models.LogicOpAnd)),
	}

	visibility := ResolveVisibility(rules, Snapshot{"q1": "Yes", "q2": "Yes"})
	assert.False(t, visibility["q3"], "a firing hide rule beats any firing show rule")
}

func TestResolveVisibility_UntargetedQuestionAlwaysVisible(t *testing.T) {
	rules := []models.LogicRule{
		showRule("q2", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
	}

	for _, snapshot := range []Snapshot{{}, {"q1": "Yes"}, {"q1": "No"}, {"q9": "whatever"}} {
		visibility := ResolveVisibility(rules, snapshot)
		_, targeted := visibility["q9"]
		assert.False(t, targeted, "untargeted questions stay out of the map")
		assert.True(t, visibility.Visible("q9"))
	}
}

func TestResolveVisibility_HideOnlyTargetDefaultsVisible(t *testing.T) {
	// A question targeted only by hide rules stays visible while none of
	// them fire. This must fall out of the precedence bookkeeping, not a
	// special case.
	rules := []models.LogicRule{
		hideRule("q2", cond("q1", models.OperatorEqual, "stop", models.LogicOpAnd)),
		hideRule("q2", cond("q1", models.OperatorEqual, "halt", models.LogicOpAnd)),
	}

	t.Run("none fire", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{"q1": "go"})
		assert.True(t, visibility["q2"])
	})

	t.Run("one fires", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{"q1": "stop"})
		assert.False(t, visibility["q2"])
	})

	t.Run("dependency unanswered", func(t *testing.T) {
		visibility := ResolveVisibility(rules, Snapshot{})
		assert.True(t, visibility["q2"])
	})
}

func TestResolveVisibility_MultipleShowRulesAnyFireShows(t *testing.T) {
	rules := []models.LogicRule{
		showRule("q3", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
		showRule("q3", cond("q2", models.OperatorEqual, "Yes", models.LogicOpAnd)),
	}

	visibility := ResolveVisibility(rules, Snapshot{"q1": "No", "q2": "Yes"})
	assert.True(t, visibility["q3"], "any firing show rule is enough")
}

func TestResolveVisibility_SkipActionIgnored(t *testing.T) {
	rules := []models.LogicRule{
		{
			Conditions: []models.Condition{cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)},
			Action:     models.Action{Type: models.ActionSkip, Target: "q2"},
		},
	}

	visibility := ResolveVisibility(rules, Snapshot{"q1": "Yes"})
	_, targeted := visibility["q2"]
	assert.False(t, targeted, "skip actions do not participate in visibility")
	assert.True(t, visibility.Visible("q2"))
}

func TestResolveVisibility_RuleWithUnansweredDependencyDoesNotContributeHide(t *testing.T) {
	// The hide rule's dependency is unanswered, so it cannot fire; the
	// firing show rule decides.
	rules := []models.LogicRule{
		showRule("q3", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
		hideRule("q3", cond("q2", models.OperatorEqual, "Yes", models.LogicOpAnd)),
	}

	visibility := ResolveVisibility(rules, Snapshot{"q1": "Yes"})
	assert.True(t, visibility["q3"])
}
