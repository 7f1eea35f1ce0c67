package preflop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/snapshot"
)

func TestCategories(t *testing.T) {
	hands := Categories()
	assert.Len(t, hands, 169)
	assert.Equal(t, "AA", hands[0].Category())
	assert.Equal(t, "AKs", hands[1].Category())
	assert.Equal(t, "AKo", hands[2].Category())
	assert.Equal(t, "22", hands[168].Category())

	combos := 0
	seen := make(map[string]bool)
	for _, h := range hands {
		combos += h.Combos()
		seen[h.Category()] = true
	}

	assert.Equal(t, TotalCombos, combos)
	assert.Len(t, seen, 169)
}

func TestRangeTable_Chart(t *testing.T) {
	rt, _ := HeadsUpSB(100)
	chart := rt.Chart()

	assert.Equal(t, 100, chart.StackDepth)
	assert.Len(t, chart.Hands, 169)
	assert.Equal(t, 68.3, chart.Frequency[action.Raise])
	assert.Equal(t, 31.7, chart.Frequency[action.Fold])

	entry, ok := chart.Lookup("98s")
	assert.True(t, ok)
	assert.Equal(t, ChartEntry{Category: "98s", Action: action.Raise, Combos: 4}, entry)

	entry, ok = chart.Lookup("98o")
	assert.True(t, ok)
	assert.Equal(t, action.Fold, entry.Action)

	_, ok = chart.Lookup("XYz")
	assert.False(t, ok)
}

func TestChart_MatchesDecide(t *testing.T) {
	for _, depth := range StackDepths() {
		rt, _ := HeadsUpSB(depth)
		for _, entry := range rt.Chart().Hands {
			assert.Equal(t, rt.Decide(HandFromCategory(entry.Category)), entry.Action, "%dbb %s", depth, entry.Category)
		}
	}
}

func TestChart_Grid(t *testing.T) {
	rt, _ := HeadsUpSB(10)
	grid := rt.Chart().Grid()

	assert.Equal(t, "AA", grid[0][0].Category)
	assert.Equal(t, "AKs", grid[0][1].Category)
	assert.Equal(t, "AKo", grid[1][0].Category)
	assert.Equal(t, "22", grid[12][12].Category)
	assert.Equal(t, "32s", grid[11][12].Category)
	assert.Equal(t, "32o", grid[12][11].Category)
	assert.Equal(t, "53s", grid[9][11].Category)
	assert.Equal(t, action.Raise, grid[9][11].Action)
}

func TestHandFromCategory(t *testing.T) {
	assert.Equal(t, "AKs", HandFromCategory("AKs").Category())
	assert.Equal(t, "T9o", HandFromCategory("T9o").Category())
	assert.Equal(t, "77", HandFromCategory("77").Category())
	assert.Panics(t, func() { HandFromCategory("A") })
}

func TestRangeTable_ChartSnapshots(t *testing.T) {
	for _, depth := range StackDepths() {
		rt, _ := HeadsUpSB(depth)
		snapshot.Validate(t, fmt.Sprintf("chart-%dbb", depth), rt.Chart())
	}
}
