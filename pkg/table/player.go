package table

import (
	"pokertrainer-server/pkg/deck"
)

// Player is a seat at a simulated table
type Player struct {
	ID       int         `json:"id"`
	Position Position    `json:"position"`
	Stack    int         `json:"stack"`
	Cards    []deck.Card `json:"cards,omitempty"`
	IsUser   bool        `json:"isUser"`
}

// GeneratePlayers seats count players with sequential IDs starting at 1.
// Every player receives stackBB big blinds and exactly one player, the one at userPosition, is the user.
func GeneratePlayers(count int, userPosition Position, stackBB int, bigBlind int) ([]*Player, error) {
	positions, err := PositionsForPlayerCount(count)
	if err != nil {
		return nil, err
	}

	if stackBB <= 0 {
		return nil, invalidArgument("stack must be greater than zero, got %d big blinds", stackBB)
	}

	if bigBlind <= 0 {
		return nil, invalidArgument("big blind must be greater than zero, got %d", bigBlind)
	}

	players := make([]*Player, len(positions))
	found := false
	for i, position := range positions {
		isUser := position == userPosition
		found = found || isUser

		players[i] = &Player{
			ID:       i + 1,
			Position: position,
			Stack:    stackBB * bigBlind,
			IsUser:   isUser,
		}
	}

	if !found {
		return nil, PositionError{
			Position:    userPosition,
			PlayerCount: count,
		}
	}

	return players, nil
}

// User returns the player flagged as the user, or nil
func User(players []*Player) *Player {
	for _, p := range players {
		if p.IsUser {
			return p
		}
	}

	return nil
}
