package action

import (
	"fmt"
	"strings"
)

// Action represents a preflop decision a player can take
type Action string

// action constants
const (
	Fold  Action = "FOLD"
	Check Action = "CHECK"
	Call  Action = "CALL"
	Raise Action = "RAISE"
)

// All lists every action in the order they are offered
var All = []Action{Fold, Check, Call, Raise}

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Raise: true,
}

// FromString returns an action for the given string, case-insensitive
func FromString(s string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := allowedActions[a]; ok {
		return a, nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// Hotkey returns the key that selects the action in the drill
func (a Action) Hotkey() rune {
	switch a {
	case Fold:
		return 'f'
	case Check:
		return 'k'
	case Call:
		return 'c'
	case Raise:
		return 'r'
	}

	panic("unknown action")
}

// FromHotkey returns the action bound to the key
func FromHotkey(r rune) (Action, bool) {
	for _, a := range All {
		if a.Hotkey() == r {
			return a, true
		}
	}

	return "", false
}

// Contains returns true if a is in actions
func Contains(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate == a {
			return true
		}
	}

	return false
}
