package engine

import (
	"auditflow-service/internal/app/models"
)

type targetState struct {
	hasShow     bool
	showMatched bool
	hideMatched bool
}

// ResolveVisibility computes the visibility of every rule target under the
// given snapshot.
//
// Precedence is fixed: a firing hide rule makes the target invisible no
// matter what show rules say. Without a firing hide rule, a target with show
// rules is visible only when one of them fired, while a target with hide
// rules alone stays visible. Questions no rule targets are absent from the
// map; Visibility.Visible treats them as always visible.
func ResolveVisibility(rules []models.LogicRule, snapshot Snapshot) Visibility {
	states := make(map[string]*targetState)

	for _, rule := range rules {
		target := rule.Action.Target
		if target == "" {
			continue
		}

		var state *targetState
		switch rule.Action.Type {
		case models.ActionShow:
			state = stateFor(states, target)
			state.hasShow = true
		case models.ActionHide:
			state = stateFor(states, target)
		default:
			// skip actions are reserved for navigation control and do
			// not participate in visibility.
			continue
		}

		if !RuleFires(rule, snapshot) {
			continue
		}
		if rule.Action.Type == models.ActionShow {
			state.showMatched = true
		} else {
			state.hideMatched = true
		}
	}

	visibility := make(Visibility, len(states))
	for target, state := range states {
		switch {
		case state.hideMatched:
			visibility[target] = false
		case state.hasShow:
			visibility[target] = state.showMatched
		default:
			// Hide-only target with no firing hide rule.
			visibility[target] = true
		}
	}
	return visibility
}

func stateFor(states map[string]*targetState, target string) *targetState {
	state, ok := states[target]
	if !ok {
		state = &targetState{}
		states[target] = state
	}
	return state
}
