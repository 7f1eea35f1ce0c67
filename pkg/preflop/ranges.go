package preflop

import "pokertrainer-server/pkg/deck"

// Each stack depth keeps its own rule set. Neighbouring tables are not derived
// from one another.

// IsInHeadsUpSB10bbRange returns true if the hand is a 10bb small blind push
func IsInHeadsUpSB10bbRange(h Hand) bool {
	high, low := h.HighLow()

	if h.IsPocketPair() {
		return true
	}

	if h.HasAce() || h.HasKing() {
		return true
	}

	// Q5+
	if high == deck.Queen && low >= 5 {
		return true
	}

	// J7+
	if high == deck.Jack && low >= 7 {
		return true
	}

	// T8+
	if high == deck.Ten && low >= 8 {
		return true
	}

	// 53s
	return h.IsSuited() && high == 5 && low == 3
}

// IsInHeadsUpSB20bbRange returns true if the hand is a 20bb small blind push
func IsInHeadsUpSB20bbRange(h Hand) bool {
	high, low := h.HighLow()

	if h.IsPocketPair() {
		return true
	}

	if h.HasAce() || h.HasKing() || h.HasQueen() || h.HasJack() || h.HasTen() {
		return true
	}

	if high == 9 {
		// any suited nine, 97o and 98o
		if h.IsSuited() {
			return true
		}

		return low >= 7
	}

	return false
}

// IsInHeadsUpSB30bbRange returns true if the hand is a 30bb small blind raise
func IsInHeadsUpSB30bbRange(h Hand) bool {
	high, low := h.HighLow()

	if h.IsPocketPair() {
		return true
	}

	if h.HasAce() || h.HasKing() {
		return true
	}

	switch high {
	case deck.Queen:
		return low >= 5
	case deck.Jack:
		return low >= 7 && low <= deck.Ten
	case deck.Ten:
		return low >= 8 && low <= 9
	case 9:
		if h.IsSuited() {
			return true
		}

		return low >= 7
	}

	return false
}

// ShouldRaiseInHeadsUpSB50bbRange returns true unless the hand is a bottom hand.
// Pairs, broadways, suited connectors and everything with a ten or better all
// fall inside this, the only exclusion is IsBottomHand.
func ShouldRaiseInHeadsUpSB50bbRange(h Hand) bool {
	return !h.IsBottomHand()
}

// ShouldCallInHeadsUpSB50bbRange returns true for the 50bb limping hands: A2s-A5s, 54s and 65s
func ShouldCallInHeadsUpSB50bbRange(h Hand) bool {
	if !h.IsSuited() {
		return false
	}

	high, low := h.HighLow()

	// weak suited aces
	if high == deck.Ace && low <= 5 {
		return true
	}

	// low suited connectors
	return high <= 6 && low >= 4 && high-low == 1
}

// ShouldRaiseInHeadsUpSB100bbRange returns true if the hand is a 100bb small blind raise
func ShouldRaiseInHeadsUpSB100bbRange(h Hand) bool {
	high, _ := h.HighLow()

	if h.IsPocketPair() {
		return true
	}

	if h.HasAce() || h.HasKing() || h.HasQueen() || h.HasJack() || h.HasTen() {
		return true
	}

	return high == 9 && h.IsSuited()
}
