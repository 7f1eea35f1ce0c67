package puzzle

import (
	"fmt"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/table"
)

// facingBet returns true if the user has chips to put in to continue.
// Only the big blind can see a blinds-only pot for free.
func facingBet(position table.Position, pot int, blinds Blinds) bool {
	return position != table.BB || pot > blinds.Small+blinds.Big
}

// availableActions returns the buttons offered to the user, in display order
func availableActions(position table.Position, pot int, blinds Blinds) []action.Action {
	if facingBet(position, pot, blinds) {
		return []action.Action{action.Fold, action.Call, action.Raise}
	}

	return []action.Action{action.Fold, action.Check, action.Raise}
}

// offerable returns an action from offered equivalent to a.
// CHECK and CALL stand in for one another; anything else must be offered as-is.
func offerable(a action.Action, offered []action.Action) (action.Action, error) {
	if action.Contains(offered, a) {
		return a, nil
	}

	var substitute action.Action
	switch a {
	case action.Check:
		substitute = action.Call
	case action.Call:
		substitute = action.Check
	default:
		return "", fmt.Errorf("%w: %s is not offered", ErrInconsistentPuzzle, a)
	}

	if !action.Contains(offered, substitute) {
		return "", fmt.Errorf("%w: neither %s nor %s is offered", ErrInconsistentPuzzle, a, substitute)
	}

	return substitute, nil
}
