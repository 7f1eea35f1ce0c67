// Package preflop classifies two-card starting hands and holds the
// heads-up small blind range tables used to grade preflop decisions.
package preflop

import (
	"fmt"

	"pokertrainer-server/pkg/deck"
)

// Hand is a two-card starting hand
type Hand [2]deck.Card

// NewHand returns a hand from two cards
func NewHand(a, b deck.Card) Hand {
	return Hand{a, b}
}

// HandFromString parses a hand such as "As,4s". It panics on invalid input.
func HandFromString(s string) Hand {
	cards := deck.CardsFromString(s)
	if len(cards) != 2 {
		panic(fmt.Sprintf("expected two cards, got %d: %s", len(cards), s))
	}

	return Hand{cards[0], cards[1]}
}

// HandFromCards returns a hand from a slice of exactly two cards
func HandFromCards(cards []deck.Card) (Hand, error) {
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("expected two cards, got %d", len(cards))
	}

	return Hand{cards[0], cards[1]}, nil
}

// IsPocketPair returns true if both cards share a rank
func (h Hand) IsPocketPair() bool {
	return h[0].Rank == h[1].Rank
}

// HasRank returns true if either card is of the given rank
func (h Hand) HasRank(rank int) bool {
	return h[0].Rank == rank || h[1].Rank == rank
}

// HasAce returns true if the hand contains an ace
func (h Hand) HasAce() bool {
	return h.HasRank(deck.Ace)
}

// HasKing returns true if the hand contains a king
func (h Hand) HasKing() bool {
	return h.HasRank(deck.King)
}

// HasQueen returns true if the hand contains a queen
func (h Hand) HasQueen() bool {
	return h.HasRank(deck.Queen)
}

// HasJack returns true if the hand contains a jack
func (h Hand) HasJack() bool {
	return h.HasRank(deck.Jack)
}

// HasTen returns true if the hand contains a ten
func (h Hand) HasTen() bool {
	return h.HasRank(deck.Ten)
}

// IsSuited returns true if both cards share a suit
func (h Hand) IsSuited() bool {
	return h[0].Suit == h[1].Suit
}

// HighLow returns the higher and the lower rank.
// Pocket pairs return the same rank twice.
func (h Hand) HighLow() (high int, low int) {
	if h[0].Rank >= h[1].Rank {
		return h[0].Rank, h[1].Rank
	}

	return h[1].Rank, h[0].Rank
}

// Gap returns the difference between the high and low rank
func (h Hand) Gap() int {
	high, low := h.HighLow()
	return high - low
}

// IsSuitedConnectorOrGapper returns true for suited hands with a gap of at most 3 and no deuce.
// A gap of zero is admitted.
func (h Hand) IsSuitedConnectorOrGapper() bool {
	if !h.IsSuited() {
		return false
	}

	_, low := h.HighLow()
	return h.Gap() <= 3 && low >= 3
}

// IsBroadway returns true if both cards are ten or higher
func (h Hand) IsBroadway() bool {
	_, low := h.HighLow()
	return low >= deck.Ten
}

// offsuit hands outside the gap cutoff that are still among the worst holdings
var namedBottomHands = map[string]bool{
	"72o": true,
	"83o": true,
	"94o": true,
	"T5o": true,
}

// IsBottomHand approximates the worst few percent of starting hands: unsuited,
// ten-high or lower with a kicker of five or lower, and either close in rank
// or one of 72o, 83o, 94o, T5o. It is only an exclusion filter, not a strength ranking.
func (h Hand) IsBottomHand() bool {
	if h.IsSuited() {
		return false
	}

	high, low := h.HighLow()
	if high > deck.Ten || low > 5 {
		return false
	}

	return h.Gap() <= 3 || namedBottomHands[h.Category()]
}

// Category returns the starting hand class, e.g., AA, AKs, AKo
func (h Hand) Category() string {
	high, low := h.HighLow()
	switch {
	case high == low:
		return deck.RankString(high) + deck.RankString(low)
	case h.IsSuited():
		return deck.RankString(high) + deck.RankString(low) + "s"
	default:
		return deck.RankString(high) + deck.RankString(low) + "o"
	}
}

// Combos returns how many of the 1326 two-card combinations share the hand's category
func (h Hand) Combos() int {
	switch {
	case h.IsPocketPair():
		return 6
	case h.IsSuited():
		return 4
	default:
		return 12
	}
}

func (h Hand) String() string {
	return h[0].String() + h[1].String()
}
