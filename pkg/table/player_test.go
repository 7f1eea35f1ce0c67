package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePlayers(t *testing.T) {
	a := assert.New(t)

	players, err := GeneratePlayers(6, BTN, 100, 2)
	a.NoError(err)
	a.Len(players, 6)

	users := 0
	for i, p := range players {
		a.Equal(i+1, p.ID)
		a.Equal(200, p.Stack)
		a.Nil(p.Cards)
		if p.IsUser {
			users++
			a.Equal(BTN, p.Position)
		}
	}

	a.Equal(1, users)
	a.Equal(BTN, User(players).Position)
}

func TestGeneratePlayers_HeadsUp(t *testing.T) {
	players, err := GeneratePlayers(2, SB, 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, []*Player{
		{ID: 1, Position: SB, Stack: 1000, IsUser: true},
		{ID: 2, Position: BB, Stack: 1000},
	}, players)
}

func TestGeneratePlayers_Errors(t *testing.T) {
	_, err := GeneratePlayers(1, SB, 100, 2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	players, err := GeneratePlayers(2, BTN, 100, 2)
	assert.Nil(t, players)
	assert.Equal(t, PositionError{Position: BTN, PlayerCount: 2}, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "position BTN is not available at a 2-handed table")

	_, err = GeneratePlayers(6, UTG, 100, 2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = GeneratePlayers(6, BTN, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = GeneratePlayers(6, BTN, 100, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestUser_None(t *testing.T) {
	assert.Nil(t, User(nil))
	assert.Nil(t, User([]*Player{{ID: 1}}))
}
