package puzzle

import (
	"fmt"

	"pokertrainer-server/internal/rng"
	"pokertrainer-server/pkg/deck"
)

// PotMode selects how the pot in front of the user is sized
type PotMode string

// pot modes
const (
	// PotBlinds is a pot made of the blinds only
	PotBlinds PotMode = "blinds"

	// PotRandom is a pot of 5 to 20 big blinds, i.e., a bet is in front of the user
	PotRandom PotMode = "random"
)

// board sizes
const (
	MinBoardSize = 3
	MaxBoardSize = 5
)

// Options are the table constants every puzzle is dealt with
type Options struct {
	BigBlind  int     `yaml:"bigBlind" json:"bigBlind"`
	BoardSize int     `yaml:"boardSize" json:"boardSize"`
	PotMode   PotMode `yaml:"potMode" json:"potMode"`
}

// DefaultOptions returns a 50/100 table with a full board and a blinds-only pot
func DefaultOptions() Options {
	return Options{
		BigBlind:  100,
		BoardSize: 5,
		PotMode:   PotBlinds,
	}
}

// Validate ensures the options can deal a puzzle
func (o Options) Validate() error {
	if o.BigBlind < 2 || o.BigBlind%2 != 0 {
		return fmt.Errorf("%w: big blind must be an even number of at least 2, got %d", ErrInvalidOptions, o.BigBlind)
	}

	if o.BoardSize < MinBoardSize || o.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size must be between %d and %d, got %d", ErrInvalidOptions, MinBoardSize, MaxBoardSize, o.BoardSize)
	}

	switch o.PotMode {
	case PotBlinds, PotRandom:
	default:
		return fmt.Errorf("%w: unknown pot mode: %s", ErrInvalidOptions, o.PotMode)
	}

	return nil
}

// Option configures an Assembler during creation
type Option func(*Assembler)

// WithGenerator sets the random source used for the pot and the fallback action
func WithGenerator(g rng.Generator) Option {
	return func(a *Assembler) {
		a.rng = g
	}
}

// WithShuffler sets the shuffler used for every fresh deck
func WithShuffler(s deck.Shuffler) Option {
	return func(a *Assembler) {
		a.shuffler = s
	}
}

// WithIDFunc sets the function that names each puzzle
func WithIDFunc(fn func() string) Option {
	return func(a *Assembler) {
		a.newID = fn
	}
}
