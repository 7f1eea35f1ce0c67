package table

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionsForPlayerCount(t *testing.T) {
	tests := []struct {
		count int
		want  []Position
	}{
		{2, []Position{SB, BB}},
		{3, []Position{BTN, SB, BB}},
		{4, []Position{CO, BTN, SB, BB}},
		{5, []Position{HJ, CO, BTN, SB, BB}},
		{6, []Position{LJ, HJ, CO, BTN, SB, BB}},
		{7, []Position{MP, LJ, HJ, CO, BTN, SB, BB}},
		{8, []Position{UTG2, MP, LJ, HJ, CO, BTN, SB, BB}},
		{9, []Position{UTG1, UTG2, MP, LJ, HJ, CO, BTN, SB, BB}},
		{10, []Position{UTG, UTG1, UTG2, MP, LJ, HJ, CO, BTN, SB, BB}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-handed", tt.count), func(t *testing.T) {
			positions, err := PositionsForPlayerCount(tt.count)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, positions)
		})
	}
}

func TestPositionsForPlayerCount_Properties(t *testing.T) {
	for count := MinPlayers; count <= MaxPlayers; count++ {
		positions, err := PositionsForPlayerCount(count)
		assert.NoError(t, err)
		assert.Len(t, positions, count)

		unique := make(map[Position]bool)
		for _, p := range positions {
			unique[p] = true
		}
		assert.Len(t, unique, count)

		if count >= 3 {
			assert.True(t, unique[BTN])
			assert.True(t, unique[SB])
			assert.True(t, unique[BB])
		}
	}
}

func TestPositionsForPlayerCount_DoesNotShareState(t *testing.T) {
	positions, _ := PositionsForPlayerCount(10)
	positions[0] = BB

	positions, _ = PositionsForPlayerCount(10)
	assert.Equal(t, UTG, positions[0])
}

func TestPositionsForPlayerCount_Invalid(t *testing.T) {
	for _, count := range []int{-1, 0, 1, 11, 100} {
		positions, err := PositionsForPlayerCount(count)
		assert.Nil(t, positions)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, PlayerCountError{Min: 2, Max: 10, Got: count}, err)
	}

	_, err := PositionsForPlayerCount(11)
	assert.EqualError(t, err, "player count must be between 2 and 10, got 11")
}

func TestPositionFromString(t *testing.T) {
	p, err := PositionFromString("utg+1")
	assert.NoError(t, err)
	assert.Equal(t, UTG1, p)

	p, err = PositionFromString("btn")
	assert.NoError(t, err)
	assert.Equal(t, BTN, p)

	_, err = PositionFromString("dealer")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.EqualError(t, err, "invalid argument: unknown position: dealer")
}

func TestPosition_SeatedAt(t *testing.T) {
	assert.True(t, SB.SeatedAt(2))
	assert.False(t, BTN.SeatedAt(2))
	assert.True(t, BTN.SeatedAt(3))
	assert.False(t, UTG.SeatedAt(9))
	assert.True(t, UTG.SeatedAt(10))
	assert.False(t, BB.SeatedAt(11))
}
