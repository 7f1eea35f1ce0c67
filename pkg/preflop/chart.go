package preflop

import (
	"math"

	"pokertrainer-server/pkg/action"
	"pokertrainer-server/pkg/deck"
)

// TotalCombos is the number of distinct two-card starting hands
const TotalCombos = 1326

// ChartEntry is the decision for one starting hand category
type ChartEntry struct {
	Category string        `json:"category"`
	Action   action.Action `json:"action"`
	Combos   int           `json:"combos"`
}

// Chart is a full 13x13 starting hand chart for a range table
type Chart struct {
	StackDepth int                       `json:"stackDepth"`
	Hands      []ChartEntry              `json:"hands"`
	Frequency  map[action.Action]float64 `json:"frequency"`
}

// Categories returns one representative hand for each of the 169 starting hand categories.
// Hands are ordered from AA down; suited before offsuit.
func Categories() []Hand {
	hands := make([]Hand, 0, 169)
	for high := deck.Ace; high >= 2; high-- {
		for low := high; low >= 2; low-- {
			if high == low {
				hands = append(hands, Hand{{Rank: high, Suit: deck.Spades}, {Rank: low, Suit: deck.Hearts}})
				continue
			}

			hands = append(hands,
				Hand{{Rank: high, Suit: deck.Spades}, {Rank: low, Suit: deck.Spades}},
				Hand{{Rank: high, Suit: deck.Spades}, {Rank: low, Suit: deck.Hearts}},
			)
		}
	}

	return hands
}

// Chart evaluates every starting hand category against the table
func (rt *RangeTable) Chart() *Chart {
	hands := Categories()
	chart := &Chart{
		StackDepth: rt.StackDepth,
		Hands:      make([]ChartEntry, len(hands)),
		Frequency:  make(map[action.Action]float64),
	}

	combos := make(map[action.Action]int)
	for i, h := range hands {
		a := rt.Decide(h)
		chart.Hands[i] = ChartEntry{
			Category: h.Category(),
			Action:   a,
			Combos:   h.Combos(),
		}

		combos[a] += h.Combos()
	}

	for a, n := range combos {
		chart.Frequency[a] = math.Round(float64(n)/TotalCombos*1000) / 10
	}

	return chart
}

// Lookup returns the entry for a category such as AKs
func (c *Chart) Lookup(category string) (ChartEntry, bool) {
	for _, entry := range c.Hands {
		if entry.Category == category {
			return entry, true
		}
	}

	return ChartEntry{}, false
}

// Grid lays the chart out as the conventional 13x13 matrix: rows and columns run A to 2,
// pairs on the diagonal, suited hands above it and offsuit hands below it.
func (c *Chart) Grid() [13][13]ChartEntry {
	var grid [13][13]ChartEntry
	for _, entry := range c.Hands {
		h := HandFromCategory(entry.Category)
		high, low := h.HighLow()
		row, col := deck.Ace-high, deck.Ace-low
		if !h.IsSuited() {
			row, col = col, row
		}

		grid[row][col] = entry
	}

	return grid
}

// HandFromCategory returns a representative hand for a category such as AKs, T9o or 77.
// It panics on invalid input.
func HandFromCategory(category string) Hand {
	if len(category) < 2 || len(category) > 3 {
		panic("invalid category: " + category)
	}

	high := deck.CardFromString(category[0:1] + "s")
	lowSuit := "h"
	if len(category) == 3 && category[2] == 's' {
		lowSuit = "s"
	}

	low := deck.CardFromString(category[1:2] + lowSuit)
	return Hand{high, low}
}
