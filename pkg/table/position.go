package table

import (
	"strings"
)

// Position is a named seat at the table
type Position string

// position constants, in preflop acting order
const (
	UTG  Position = "UTG"
	UTG1 Position = "UTG+1"
	UTG2 Position = "UTG+2"
	MP   Position = "MP"
	LJ   Position = "LJ"
	HJ   Position = "HJ"
	CO   Position = "CO"
	BTN  Position = "BTN"
	SB   Position = "SB"
	BB   Position = "BB"
)

// table size limits
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// fullRing is the ten-handed acting order, first to act to last to act preflop.
// Smaller tables use a suffix of it so the button and blinds are always seated.
var fullRing = []Position{UTG, UTG1, UTG2, MP, LJ, HJ, CO, BTN, SB, BB}

// PositionsForPlayerCount returns the ordered positions for a table of count players
func PositionsForPlayerCount(count int) ([]Position, error) {
	if count < MinPlayers || count > MaxPlayers {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: count,
		}
	}

	positions := make([]Position, count)
	copy(positions, fullRing[len(fullRing)-count:])

	return positions, nil
}

// PositionFromString returns the position for the given label, case-insensitive
func PositionFromString(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", invalidArgument("unknown position: %s", s)
	}

	return p, nil
}

// IsValid returns true if the position is one of the known seats
func (p Position) IsValid() bool {
	for _, pos := range fullRing {
		if pos == p {
			return true
		}
	}

	return false
}

// SeatedAt returns true if the position exists at a table of count players
func (p Position) SeatedAt(count int) bool {
	positions, err := PositionsForPlayerCount(count)
	if err != nil {
		return false
	}

	for _, pos := range positions {
		if pos == p {
			return true
		}
	}

	return false
}
