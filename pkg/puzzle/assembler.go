package puzzle

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokertrainer-server/internal/rng"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/deck"
	"pokertrainer-server/pkg/preflop"
	"pokertrainer-server/pkg/table"
)

// fallbackActions is the pool the fallback picker draws from
var fallbackActions = []action.Action{action.Fold, action.Call, action.Raise, action.Check}

var fallbackDescriptions = map[action.Action]string{
	action.Fold:  "Fold: with this hand from the %s the best play is to give up the pot.",
	action.Check: "Check: take the free option from the %s and see the flop.",
	action.Call:  "Call: the price is right to continue from the %s without raising.",
	action.Raise: "Raise 3x: take the initiative from the %s with a strong enough hand.",
}

// Assembler deals puzzles. It holds no state between calls and is safe for
// concurrent use as long as its generator and shuffler are.
type Assembler struct {
	opts     Options
	rng      rng.Generator
	shuffler deck.Shuffler
	newID    func() string
}

// New returns an assembler using a crypto-secure random source unless options say otherwise
func New(opts Options, options ...Option) (*Assembler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return newAssembler(opts, options...), nil
}

func newAssembler(opts Options, options ...Option) *Assembler {
	a := &Assembler{
		opts: opts,
		rng:  rng.Crypto{},
		newID: func() string {
			return uuid.New().String()
		},
	}

	for _, option := range options {
		option(a)
	}

	if a.shuffler == nil {
		a.shuffler = deck.NewShuffler(a.rng)
	}

	return a
}

// Options returns the table constants the assembler deals with
func (a *Assembler) Options() Options {
	return a.opts
}

// CreatePuzzle deals one puzzle with the default options
func CreatePuzzle(gameType table.GameType, playerCount int, userPosition table.Position, stackBB int) (*Puzzle, error) {
	return newAssembler(DefaultOptions()).Create(table.Settings{
		GameType:     gameType,
		PlayerCount:  playerCount,
		UserPosition: userPosition,
		BigBlinds:    stackBB,
	})
}

// Create deals a fresh deck to a table described by settings and determines the correct action.
// Invalid settings return an error matching table.ErrInvalidArgument and no puzzle.
func (a *Assembler) Create(settings table.Settings) (*Puzzle, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	players, err := table.GeneratePlayers(settings.PlayerCount, settings.UserPosition, settings.BigBlinds, a.opts.BigBlind)
	if err != nil {
		return nil, err
	}

	dealer := deck.NewDealer(a.shuffler.Shuffle(deck.Generate()))
	for _, player := range players {
		cards, err := dealer.DrawN(2)
		if err != nil {
			return nil, fmt.Errorf("could not deal to seat %d: %w", player.ID, err)
		}

		// other seats are dealt to keep the deck order, but their cards are never revealed
		if player.IsUser {
			player.Cards = cards
		}
	}

	board, err := dealer.DrawN(a.opts.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("could not deal the board: %w", err)
	}

	blinds := Blinds{
		Small: a.opts.BigBlind / 2,
		Big:   a.opts.BigBlind,
	}

	pot := a.pot(blinds)
	offered := availableActions(settings.UserPosition, pot, blinds)

	user := table.User(players)
	hand, err := preflop.HandFromCards(user.Cards)
	if err != nil {
		return nil, err
	}

	correct, description, err := a.decide(settings, hand, offered)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		ID:                a.newID(),
		Players:           players,
		Blinds:            blinds,
		CommunityCards:    board,
		Pot:               pot,
		CorrectAction:     correct,
		ActionDescription: description,
		AvailableActions:  offered,
		GameType:          settings.GameType,
		Difficulty:        Medium,
		BigBlinds:         settings.BigBlinds,
		Situation:         situation(settings.GameType, blinds, pot, settings.BigBlinds),
	}

	logrus.WithFields(logrus.Fields{
		"puzzleID":    p.ID,
		"playerCount": settings.PlayerCount,
		"position":    settings.UserPosition,
		"bigBlinds":   settings.BigBlinds,
		"hand":        hand.Category(),
		"action":      correct,
	}).Debug("puzzle: created")

	return p, nil
}

func (a *Assembler) pot(blinds Blinds) int {
	if a.opts.PotMode == PotRandom {
		return (5 + a.rng.Intn(16)) * blinds.Big
	}

	return blinds.Small + blinds.Big
}

// decide grades the hand with the heads-up small blind tables where one exists
// and otherwise picks a random action. Either result passes through offerable.
func (a *Assembler) decide(settings table.Settings, hand preflop.Hand, offered []action.Action) (action.Action, string, error) {
	if settings.IsHeadsUp() && settings.UserPosition == table.SB {
		if rt, ok := preflop.HeadsUpSB(settings.BigBlinds); ok {
			want := rt.Decide(hand)
			got, err := offerable(want, offered)
			if err != nil {
				return "", "", err
			}

			if got != want {
				logrus.WithFields(logrus.Fields{
					"want": want,
					"got":  got,
				}).Warn("puzzle: substituted range action")
			}

			return got, rt.Describe(hand, want), nil
		}
	}

	want := fallbackActions[a.rng.Intn(len(fallbackActions))]
	got, err := offerable(want, offered)
	if err != nil {
		return "", "", err
	}

	if got != want {
		logrus.WithFields(logrus.Fields{
			"want":     want,
			"got":      got,
			"position": settings.UserPosition,
		}).Debug("puzzle: substituted fallback action")
	}

	return got, fmt.Sprintf(fallbackDescriptions[got], settings.UserPosition), nil
}
