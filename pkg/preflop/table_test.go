package preflop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokertrainer-server/pkg/action"
)

func TestStackDepths(t *testing.T) {
	assert.Equal(t, []int{10, 20, 30, 50, 100}, StackDepths())
}

func TestHeadsUpSB(t *testing.T) {
	_, ok := HeadsUpSB(40)
	assert.False(t, ok)

	for _, depth := range StackDepths() {
		rt, ok := HeadsUpSB(depth)
		assert.True(t, ok)
		assert.Equal(t, depth, rt.StackDepth)
	}
}

func TestRangeTable_Decide(t *testing.T) {
	tests := []struct {
		depth int
		hand  string
		want  action.Action
	}{
		{10, "Qc,5d", action.Raise},
		{10, "Qc,4d", action.Fold},
		{20, "9c,7d", action.Raise},
		{20, "8c,7d", action.Fold},
		{30, "Jc,7d", action.Raise},
		{30, "Jc,6d", action.Fold},
		{50, "As,4s", action.Call},
		{50, "6h,5h", action.Call},
		{50, "2c,3d", action.Fold},
		{50, "7c,2d", action.Fold},
		{50, "9c,9d", action.Raise},
		{100, "9s,3s", action.Raise},
		{100, "9c,3d", action.Fold},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			rt, _ := HeadsUpSB(tt.depth)
			assert.Equal(t, tt.want, rt.Decide(HandFromString(tt.hand)))
		})
	}
}

func TestRangeTable_Describe(t *testing.T) {
	rt, _ := HeadsUpSB(10)
	assert.Equal(t,
		"Push all-in with A4s. At 10bb heads-up from the small blind, push any pair, any ace or king, Q5+, J7+, T8+ and 53s.",
		rt.Describe(HandFromString("As,4s"), action.Raise))
	assert.Equal(t,
		"Fold with Q4o. At 10bb heads-up from the small blind, only push any pair, any ace or king, Q5+, J7+, T8+ and 53s; everything else folds.",
		rt.Describe(HandFromString("Qs,4d"), action.Fold))

	rt, _ = HeadsUpSB(50)
	assert.Equal(t,
		"Limp with A4s. At 50bb heads-up from the small blind, limp with weak suited aces (A2s-A5s) and low suited connectors (54s, 65s).",
		rt.Describe(HandFromString("As,4s"), action.Call))
}

func TestRangeTable_DescribeCoversEveryDecision(t *testing.T) {
	for _, depth := range StackDepths() {
		rt, _ := HeadsUpSB(depth)
		for _, h := range Categories() {
			a := rt.Decide(h)
			_, ok := rt.prose[a]
			assert.True(t, ok, "%dbb %s %s", depth, h.Category(), a)
		}
	}
}
