// Package puzzle deals preflop decision puzzles and grades them against the range tables
package puzzle

import (
	"fmt"
	"strconv"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/deck"
	"pokertrainer-server/pkg/preflop"
	"pokertrainer-server/pkg/table"
)

// Difficulty is the difficulty label on a puzzle
type Difficulty string

// difficulties
const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Blinds are the forced bets in chips
type Blinds struct {
	Small int `json:"small"`
	Big   int `json:"big"`
}

// Puzzle is one dealt decision. It is never modified after Create returns it.
type Puzzle struct {
	ID                string          `json:"id"`
	Players           []*table.Player `json:"players"`
	Blinds            Blinds          `json:"blinds"`
	CommunityCards    []deck.Card     `json:"communityCards"`
	Pot               int             `json:"pot"`
	CorrectAction     action.Action   `json:"correctAction,omitempty"`
	ActionDescription string          `json:"actionDescription,omitempty"`
	AvailableActions  []action.Action `json:"availableActions"`
	GameType          table.GameType  `json:"gameType"`
	Difficulty        Difficulty      `json:"difficulty"`
	BigBlinds         int             `json:"bigBlinds"`
	Situation         string          `json:"situation"`
}

// User returns the user's seat
func (p *Puzzle) User() *table.Player {
	return table.User(p.Players)
}

// Hand returns the user's hole cards
func (p *Puzzle) Hand() preflop.Hand {
	hand, err := preflop.HandFromCards(p.User().Cards)
	if err != nil {
		panic(fmt.Sprintf("puzzle %s: user hand: %v", p.ID, err))
	}

	return hand
}

// IsOffered returns true if the action is one of the puzzle's buttons
func (p *Puzzle) IsOffered(a action.Action) bool {
	return action.Contains(p.AvailableActions, a)
}

// Redacted returns a copy of the puzzle without its answer
func (p *Puzzle) Redacted() *Puzzle {
	cp := *p
	cp.CorrectAction = ""
	cp.ActionDescription = ""
	return &cp
}

// situation returns the one-line summary shown above the table,
// e.g., Cash Game - Blinds: 0.5/1 BB - Pot: 1.5 BB - Your Stack: 100 BB
func situation(gameType table.GameType, blinds Blinds, pot int, stackBB int) string {
	return fmt.Sprintf("%s - Blinds: %s/%s BB - Pot: %s BB - Your Stack: %d BB",
		gameType.String(),
		inBigBlinds(blinds.Small, blinds.Big),
		inBigBlinds(blinds.Big, blinds.Big),
		inBigBlinds(pot, blinds.Big),
		stackBB,
	)
}

func inBigBlinds(chips int, bigBlind int) string {
	return strconv.FormatFloat(float64(chips)/float64(bigBlind), 'f', -1, 64)
}
