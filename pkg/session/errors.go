package session

import (
	"errors"
	"fmt"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/table"
)

// ErrNotFound is returned when no session exists for a UUID
var ErrNotFound = errors.New("session not found")

// ErrNoPuzzle is returned when a session has nothing to answer
var ErrNoPuzzle = errors.New("session has no puzzle")

// ErrAlreadyAnswered is returned when the current puzzle was already graded
var ErrAlreadyAnswered = errors.New("puzzle already answered")

// ErrDuplicateSession is returned when a store already holds a session with the same UUID
var ErrDuplicateSession = errors.New("duplicate session")

// NotOfferedError is returned when the user answers with an action the puzzle does not offer
type NotOfferedError struct {
	Action  action.Action
	Offered []action.Action
}

func (n NotOfferedError) Error() string {
	return fmt.Sprintf("%s is not one of the available actions %v", string(n.Action), n.Offered)
}

// Is allows errors.Is(err, table.ErrInvalidArgument)
func (n NotOfferedError) Is(target error) bool {
	return target == table.ErrInvalidArgument
}
