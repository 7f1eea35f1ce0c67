package table

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error caused by bad caller input
var ErrInvalidArgument = errors.New("invalid argument")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("player count must be between %d and %d, got %d", p.Min, p.Max, p.Got)
}

// Is allows errors.Is(err, ErrInvalidArgument)
func (p PlayerCountError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// PositionError is returned when the user's position does not exist at a table of the given size
type PositionError struct {
	Position    Position
	PlayerCount int
}

func (p PositionError) Error() string {
	return fmt.Sprintf("position %s is not available at a %d-handed table", string(p.Position), p.PlayerCount)
}

// Is allows errors.Is(err, ErrInvalidArgument)
func (p PositionError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// invalidArgument wraps a message so it matches ErrInvalidArgument
func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
