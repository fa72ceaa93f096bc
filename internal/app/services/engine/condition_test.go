package engine

import (
	"testing"

	"auditflow-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCondition_Unanswered(t *testing.T) {
	cond := models.Condition{Question: "q1", Operator: models.OperatorEqual, Value: "Yes"}

	cases := []struct {
		name     string
		snapshot Snapshot
	}{
		{"missing key", Snapshot{}},
		{"nil value", Snapshot{"q1": nil}},
		{"empty string", Snapshot{"q1": ""}},
		{"blank string", Snapshot{"q1": "   "}},
		{"empty selection", Snapshot{"q1": []string{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, EvaluateCondition(cond, tc.snapshot), "unanswered dependency must never satisfy a condition")
		})
	}
}

func TestEvaluateCondition_UnansweredBeatsOperator(t *testing.T) {
	// Even != against a value the empty answer trivially differs from is
	// false while the question is unanswered.
	cond := models.Condition{Question: "q1", Operator: models.OperatorNotEqual, Value: "anything"}
	assert.False(t, EvaluateCondition(cond, Snapshot{}))
}

func TestEvaluateCondition_NumericOperators(t *testing.T) {
	cases := []struct {
		name     string
		operator string
		stored   interface{}
		value    interface{}
		want     bool
	}{
		{"greater true", models.OperatorGreater, "10", "5", true},
		{"greater false on equal", models.OperatorGreater, "5", "5", false},
		{"less true", models.OperatorLess, "3", 5, true},
		{"less-or-equal boundary", models.OperatorLessOrEqual, 5, "5", true},
		{"greater-or-equal boundary", models.OperatorGreaterOrEqual, 5.0, "5", true},
		{"stored not a number", models.OperatorGreater, "abc", "5", false},
		{"comparison not a number", models.OperatorGreater, "10", "abc", false},
		{"numeric from float answer", models.OperatorGreater, 10.5, "10", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond := models.Condition{Question: "q1", Operator: tc.operator, Value: tc.value}
			got := EvaluateCondition(cond, Snapshot{"q1": tc.stored})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateCondition_Equality(t *testing.T) {
	cases := []struct {
		name     string
		operator string
		stored   interface{}
		value    interface{}
		want     bool
	}{
		{"string equal", models.OperatorEqual, "Yes", "Yes", true},
		{"string equal is case sensitive", models.OperatorEqual, "yes", "Yes", false},
		{"string not equal", models.OperatorNotEqual, "No", "Yes", true},
		{"number compared as string", models.OperatorEqual, 5, "5", true},
		{"multi-select joined equality", models.OperatorEqual, []string{"a", "b"}, "a,b", true},
		{"multi-select membership is not equality", models.OperatorEqual, []string{"a", "b"}, "a", false},
		{"multi-select order matters", models.OperatorEqual, []string{"b", "a"}, "a,b", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond := models.Condition{Question: "q1", Operator: tc.operator, Value: tc.value}
			got := EvaluateCondition(cond, Snapshot{"q1": tc.stored})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateCondition_UnknownOperator(t *testing.T) {
	cond := models.Condition{Question: "q1", Operator: "~=", Value: "Yes"}
	assert.False(t, EvaluateCondition(cond, Snapshot{"q1": "Yes"}))
}
