package preflop

import (
	"fmt"
	"sort"

	"pokertrainer-server/pkg/action"
)

// RangeTable is the heads-up small blind strategy for one stack depth
type RangeTable struct {
	StackDepth int
	decide     func(Hand) action.Action
	raiseVerb  string
	prose      map[action.Action]string
}

// Decide returns the correct action for the hand
func (rt *RangeTable) Decide(h Hand) action.Action {
	return rt.decide(h)
}

// Describe explains the decision for the hand, naming the action and the qualifying range
func (rt *RangeTable) Describe(h Hand, a action.Action) string {
	verb := a.String()
	switch a {
	case action.Raise:
		verb = rt.raiseVerb
	case action.Call:
		verb = "Limp"
	}

	return fmt.Sprintf("%s with %s. %s", verb, h.Category(), rt.prose[a])
}

func pushOrFold(inRange func(Hand) bool) func(Hand) action.Action {
	return func(h Hand) action.Action {
		if inRange(h) {
			return action.Raise
		}

		return action.Fold
	}
}

var headsUpSB = map[int]*RangeTable{
	10: {
		StackDepth: 10,
		decide:     pushOrFold(IsInHeadsUpSB10bbRange),
		raiseVerb:  "Push all-in",
		prose: map[action.Action]string{
			action.Raise: "At 10bb heads-up from the small blind, push any pair, any ace or king, Q5+, J7+, T8+ and 53s.",
			action.Fold:  "At 10bb heads-up from the small blind, only push any pair, any ace or king, Q5+, J7+, T8+ and 53s; everything else folds.",
		},
	},
	20: {
		StackDepth: 20,
		decide:     pushOrFold(IsInHeadsUpSB20bbRange),
		raiseVerb:  "Push all-in",
		prose: map[action.Action]string{
			action.Raise: "At 20bb heads-up from the small blind, push any pair, any hand with a ten or better, any suited nine, 98o and 97o.",
			action.Fold:  "At 20bb heads-up from the small blind, only push any pair, any hand with a ten or better, any suited nine, 98o and 97o; everything else folds.",
		},
	},
	30: {
		StackDepth: 30,
		decide:     pushOrFold(IsInHeadsUpSB30bbRange),
		raiseVerb:  "Raise",
		prose: map[action.Action]string{
			action.Raise: "At 30bb heads-up from the small blind, raise any pair, any ace or king, Q5+, J7-JT, T8-T9, any suited nine, 98o and 97o.",
			action.Fold:  "At 30bb heads-up from the small blind, only raise any pair, any ace or king, Q5+, J7-JT, T8-T9, any suited nine, 98o and 97o; everything else folds.",
		},
	},
	50: {
		StackDepth: 50,
		decide: func(h Hand) action.Action {
			// the limping hands are carved out of the raising range
			if ShouldCallInHeadsUpSB50bbRange(h) {
				return action.Call
			}

			if ShouldRaiseInHeadsUpSB50bbRange(h) {
				return action.Raise
			}

			return action.Fold
		},
		raiseVerb: "Raise",
		prose: map[action.Action]string{
			action.Raise: "At 50bb heads-up from the small blind, raise almost every hand; only the weakest unsuited low hands fold and A2s-A5s, 54s and 65s limp.",
			action.Call:  "At 50bb heads-up from the small blind, limp with weak suited aces (A2s-A5s) and low suited connectors (54s, 65s).",
			action.Fold:  "At 50bb heads-up from the small blind, fold only the bottom of the range: unsuited ten-high or worse hands with a five or lower kicker.",
		},
	},
	100: {
		StackDepth: 100,
		decide:     pushOrFold(ShouldRaiseInHeadsUpSB100bbRange),
		raiseVerb:  "Raise",
		prose: map[action.Action]string{
			action.Raise: "At 100bb heads-up from the small blind, raise any pair, any hand with a ten or better and any suited nine.",
			action.Fold:  "At 100bb heads-up from the small blind, only raise any pair, any hand with a ten or better and any suited nine; everything else folds.",
		},
	},
}

// HeadsUpSB returns the small blind range table for the stack depth in big blinds
func HeadsUpSB(stackBB int) (*RangeTable, bool) {
	rt, ok := headsUpSB[stackBB]
	return rt, ok
}

// StackDepths returns the supported stack depths in ascending order
func StackDepths() []int {
	depths := make([]int, 0, len(headsUpSB))
	for depth := range headsUpSB {
		depths = append(depths, depth)
	}

	sort.Ints(depths)
	return depths
}
