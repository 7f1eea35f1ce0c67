package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"pokertrainer-server/internal/rng"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/session"
	"pokertrainer-server/pkg/table"
)

// PlayCmd runs an interactive drill in the terminal
type PlayCmd struct {
	Game     string `kong:"default='CASH',enum='CASH,MTT',help='Game type'"`
	Players  int    `kong:"default='2',help='Players at the table (2-10)'"`
	Position string `kong:"default='SB',help='Your position, e.g., SB, BTN, UTG+1'"`
	Stack    int    `kong:"default='10',help='Stack depth in big blinds'"`
	Pot      string `kong:"default='blinds',enum='blinds,random',help='Pot sizing'"`
	Seed     int64  `kong:"default='0',help='Seed for a repeatable drill (0 is random)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

// Run deals puzzles until the user quits
func (p *PlayCmd) Run() error {
	if p.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	settings, err := p.settings()
	if err != nil {
		return err
	}

	opts := puzzle.DefaultOptions()
	opts.PotMode = puzzle.PotMode(p.Pot)

	var options []puzzle.Option
	if p.Seed != 0 {
		options = append(options, puzzle.WithGenerator(rng.NewSeeded(p.Seed)))
	}

	assembler, err := puzzle.New(opts, options...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sessions := session.NewManager(session.NewMemoryStore(), assembler)
	s, err := sessions.Start(ctx, settings)
	if err != nil {
		return err
	}

	lines := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("\n%s\n", renderPuzzle(s.Puzzle))

		k, err := p.waitForAnswer(lines)
		if err != nil {
			return err
		}

		switch k.kind {
		case keyQuit:
			fmt.Println(renderStats(s.Stats))
			return nil
		case keyAction:
			res, err := sessions.Answer(ctx, s.UUID, k.action)
			if err != nil {
				var notOffered session.NotOfferedError
				if errors.As(err, &notOffered) {
					fmt.Println(incorrectStyle.Render(err.Error()))
					continue
				}

				return err
			}

			fmt.Printf("\n%s\n", renderResult(res))
		}

		if s, err = sessions.Next(ctx, s.UUID); err != nil {
			return err
		}
	}
}

// waitForAnswer reads keys until one that means something is pressed
func (p *PlayCmd) waitForAnswer(lines *bufio.Reader) (key, error) {
	for {
		k, err := readKey(os.Stdin, lines)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return key{kind: keyQuit}, nil
			}

			return key{}, err
		}

		if k.kind != keyUnknown {
			return k, nil
		}
	}
}

func (p *PlayCmd) settings() (table.Settings, error) {
	gameType, err := table.GameTypeFromString(p.Game)
	if err != nil {
		return table.Settings{}, err
	}

	position, err := table.PositionFromString(p.Position)
	if err != nil {
		return table.Settings{}, err
	}

	settings := table.Settings{
		GameType:     gameType,
		PlayerCount:  p.Players,
		UserPosition: position,
		BigBlinds:    p.Stack,
	}

	return settings, settings.Validate()
}
