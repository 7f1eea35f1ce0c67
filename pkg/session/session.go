// Package session tracks a user working through puzzles: the table settings,
// the current puzzle and the running score.
package session

import (
	"time"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/table"
)

// feedback prefixes
const (
	correctPrefix   = "Correct! "
	incorrectPrefix = "Not the best play. "
)

// Session is a training session
type Session struct {
	UUID       string         `json:"uuid"`
	Settings   table.Settings `json:"settings"`
	Puzzle     *puzzle.Puzzle `json:"puzzle"`
	Answered   bool           `json:"answered"`
	LastResult *Result        `json:"lastResult,omitempty"`
	Stats      Stats          `json:"stats"`
	Created    time.Time      `json:"created"`
	Updated    time.Time      `json:"updated"`
}

// Result is the grade for one answer
type Result struct {
	PuzzleID      string        `json:"puzzleId"`
	Action        action.Action `json:"action"`
	Correct       bool          `json:"correct"`
	CorrectAction action.Action `json:"correctAction"`
	Feedback      string        `json:"feedback"`
	Stats         Stats         `json:"stats"`
}

// View returns a copy that is safe to show the user: the answer is hidden until the puzzle is graded
func (s *Session) View() *Session {
	cp := *s
	if cp.Puzzle != nil && !cp.Answered {
		cp.Puzzle = cp.Puzzle.Redacted()
	}

	return &cp
}

// grade scores a against the current puzzle and records it
func (s *Session) grade(a action.Action) (*Result, error) {
	if s.Puzzle == nil {
		return nil, ErrNoPuzzle
	}

	if s.Answered {
		return nil, ErrAlreadyAnswered
	}

	if !s.Puzzle.IsOffered(a) {
		return nil, NotOfferedError{
			Action:  a,
			Offered: s.Puzzle.AvailableActions,
		}
	}

	correct := a == s.Puzzle.CorrectAction
	s.Stats.Record(correct)
	s.Answered = true

	feedback := incorrectPrefix + s.Puzzle.ActionDescription
	if correct {
		feedback = correctPrefix + s.Puzzle.ActionDescription
	}

	s.LastResult = &Result{
		PuzzleID:      s.Puzzle.ID,
		Action:        a,
		Correct:       correct,
		CorrectAction: s.Puzzle.CorrectAction,
		Feedback:      feedback,
		Stats:         s.Stats,
	}

	return s.LastResult, nil
}

// deal replaces the current puzzle
func (s *Session) deal(p *puzzle.Puzzle) {
	s.Puzzle = p
	s.Answered = false
	s.LastResult = nil
}
