// Package engine implements the conditional-logic and scoring core shared by
// the authoring and respondent surfaces: condition evaluation, rule firing,
// visibility resolution, the answer cascade and compliance scoring. Every
// function here is a total, side-effect-free operation over in-memory values;
// persistence and transport live elsewhere.
package engine

import (
	"strconv"
	"strings"
)

// multiValueSeparator joins multiple-choice selections before equality
// comparison. Equality against a multi-select therefore checks the exact
// joined string, not set membership; that is the documented contract.
const multiValueSeparator = ","

// Snapshot maps question keys to their current answer value. A missing key,
// a nil value, an empty string or an empty selection all mean "unanswered".
type Snapshot map[string]interface{}

// Clone returns a shallow copy safe for candidate mutation. Multi-select
// slices are copied too, since SetAnswer toggles membership in place.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		if members, ok := asStringSlice(v); ok {
			copied := make([]string, len(members))
			copy(copied, members)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

// IsAnswered reports whether the value counts as an answer.
func IsAnswered(value interface{}) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	if members, ok := asStringSlice(value); ok {
		return len(members) > 0
	}
	return true
}

// Visibility maps rule-target question keys to their resolved state.
// Questions absent from the map are not conditional and are always visible.
type Visibility map[string]bool

// Visible reports the effective visibility of a question key.
func (v Visibility) Visible(key string) bool {
	visible, targeted := v[key]
	if !targeted {
		return true
	}
	return visible
}

func asStringSlice(value interface{}) ([]string, bool) {
	switch typed := value.(type) {
	case []string:
		return typed, true
	case []interface{}:
		members := make([]string, 0, len(typed))
		for _, member := range typed {
			members = append(members, stringify(member))
		}
		return members, true
	}
	return nil, false
}

func stringify(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	case nil:
		return ""
	}
	if members, ok := asStringSlice(value); ok {
		return strings.Join(members, multiValueSeparator)
	}
	return ""
}

func toFloat(value interface{}) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
