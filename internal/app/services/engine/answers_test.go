package engine

import (
	"testing"

	"auditflow-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// followUpTemplate builds the reference fixture: Q1 (single, Yes/No,
// weight 2) and Q2 (numeric, weight 1) shown by the rule Q1 == "Yes".
func followUpTemplate() *models.Template {
	return &models.Template{
		Name:   "Fire Safety Audit",
		Status: models.TemplateStatusPublished,
		Questions: []models.Question{
			{
				Key:     "q1",
				Text:    "Are extinguishers on site?",
				Type:    models.QuestionTypeSingle,
				Options: []models.Option{{Value: "Yes"}, {Value: "No"}},
				Weight:  floatPtr(2),
			},
			{
				Key:    "q2",
				Text:   "How many extinguishers?",
				Type:   models.QuestionTypeNumeric,
				Weight: floatPtr(1),
			},
		},
		LogicRules: []models.LogicRule{
			showRule("q2", cond("q1", models.OperatorEqual, "Yes", models.LogicOpAnd)),
		},
	}
}

func TestAnswerStore_Defaults(t *testing.T) {
	template := &models.Template{
		Questions: []models.Question{
			{Key: "multi", Type: models.QuestionTypeMultiple, Options: []models.Option{{Value: "a"}, {Value: "b"}}},
			{Key: "drop", Type: models.QuestionTypeDropdown, Options: []models.Option{{Value: "x"}, {Value: "y"}}},
			{Key: "free", Type: models.QuestionTypeText},
		},
	}

	store := NewAnswerStore(template)
	snapshot := store.Snapshot()

	assert.Equal(t, []string{}, snapshot["multi"])
	assert.Equal(t, "", snapshot["drop"])
	assert.Nil(t, snapshot["free"])
}

func TestAnswerStore_ShowAndPurgeCascade(t *testing.T) {
	store := NewAnswerStore(followUpTemplate())

	// Q2 starts hidden: it is targeted by a show rule that has not fired.
	assert.False(t, store.Visibility().Visible("q2"))

	_, visibility := store.SetAnswer("q1", "Yes")
	assert.True(t, visibility.Visible("q2"))

	snapshot, _ := store.SetAnswer("q2", "3")
	assert.Equal(t, "3", snapshot["q2"])

	// Flipping Q1 back hides Q2 and purges its stale answer.
	snapshot, visibility = store.SetAnswer("q1", "No")
	assert.False(t, visibility.Visible("q2"))
	_, held := snapshot["q2"]
	assert.False(t, held, "a hidden question must not keep a submitted answer")
}

func TestAnswerStore_HiddenQuestionsNeverHoldAnswers(t *testing.T) {
	store := NewAnswerStore(followUpTemplate())

	// Walk a handful of states and check the invariant after each one.
	steps := []struct {
		key   string
		value interface{}
	}{
		{"q1", "Yes"},
		{"q2", "7"},
		{"q1", "No"},
		{"q1", "Yes"},
		{"q2", "2"},
		{"q1", ""},
	}

	for _, step := range steps {
		snapshot, visibility := store.SetAnswer(step.key, step.value)
		for key, visible := range visibility {
			if visible {
				continue
			}
			_, held := snapshot[key]
			assert.False(t, held, "invisible question %q still holds an answer", key)
		}
	}
}

func TestAnswerStore_MultipleChoiceToggle(t *testing.T) {
	template := &models.Template{
		Questions: []models.Question{
			{Key: "multi", Type: models.QuestionTypeMultiple, Options: []models.Option{{Value: "a"}, {Value: "b"}}},
		},
	}
	store := NewAnswerStore(template)

	snapshot, _ := store.SetAnswer("multi", "a")
	assert.Equal(t, []string{"a"}, snapshot["multi"])

	snapshot, _ = store.SetAnswer("multi", "b")
	assert.Equal(t, []string{"a", "b"}, snapshot["multi"])

	// Toggling an existing member removes it.
	snapshot, _ = store.SetAnswer("multi", "a")
	assert.Equal(t, []string{"b"}, snapshot["multi"])
}

func TestAnswerStore_Reset(t *testing.T) {
	store := NewAnswerStore(followUpTemplate())

	store.SetAnswer("q1", "Yes")
	store.SetAnswer("q2", "5")

	store.Reset()

	baseline := NewAnswerStore(followUpTemplate())
	assert.Equal(t, baseline.Snapshot(), store.Snapshot())
	assert.Equal(t, baseline.Visibility(), store.Visibility(), "reset reproduces the declared default visibility")
}

func TestAnswerStore_FixedPointCascadeChain(t *testing.T) {
	// A shows B, and B's answer shows C. Clearing A must drop B's answer
	// and, in the same mutation, hide C.
	template := &models.Template{
		Questions: []models.Question{
			{Key: "a", Type: models.QuestionTypeSingle, Options: []models.Option{{Value: "Yes"}, {Value: "No"}}},
			{Key: "b", Type: models.QuestionTypeSingle, Options: []models.Option{{Value: "Yes"}, {Value: "No"}}},
			{Key: "c", Type: models.QuestionTypeText},
		},
		LogicRules: []models.LogicRule{
			showRule("b", cond("a", models.OperatorEqual, "Yes", models.LogicOpAnd)),
			showRule("c", cond("b", models.OperatorEqual, "Yes", models.LogicOpAnd)),
		},
	}
	store := NewAnswerStore(template)

	store.SetAnswer("a", "Yes")
	store.SetAnswer("b", "Yes")
	_, visibility := store.SetAnswer("c", "details")
	require.True(t, visibility.Visible("c"))

	snapshot, visibility := store.SetAnswer("a", "No")

	assert.False(t, visibility.Visible("b"))
	assert.False(t, visibility.Visible("c"), "hiding b must cascade to c within the same mutation")
	_, heldB := snapshot["b"]
	_, heldC := snapshot["c"]
	assert.False(t, heldB)
	assert.False(t, heldC)
}

func TestRestoreAnswerStore_RepairsInconsistentSnapshot(t *testing.T) {
	// A stored snapshot that answers a hidden question gets purged on
	// restore rather than trusted.
	snapshot := Snapshot{"q1": "No", "q2": "9"}

	store := RestoreAnswerStore(followUpTemplate(), snapshot)

	restored := store.Snapshot()
	_, held := restored["q2"]
	assert.False(t, held)
	assert.False(t, store.Visibility().Visible("q2"))
	assert.Equal(t, "No", restored["q1"])
}
