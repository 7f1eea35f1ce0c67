package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"pokertrainer-server/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Generate returns a new, unshuffled deck of cards.
// Cards are ordered by suit (clubs, diamonds, hearts, spades) and then by rank (2 through ace).
func Generate() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffler returns a permuted copy of the cards it is given
type Shuffler interface {
	Shuffle(cards []Card) []Card
}

// FisherYates is an unbiased Shuffler backed by a random generator
type FisherYates struct {
	rng rng.Generator
}

// NewShuffler returns a Fisher-Yates shuffler.
// If g is nil, a crypto-secure generator is used.
func NewShuffler(g rng.Generator) *FisherYates {
	if g == nil {
		g = rng.Crypto{}
	}

	return &FisherYates{rng: g}
}

// Shuffle returns a shuffled copy of cards. The input is never modified.
func (f *FisherYates) Shuffle(cards []Card) []Card {
	return Shuffle(cards, f.rng)
}

// Shuffle returns a copy of cards in a random order chosen by g
func Shuffle(cards []Card, g rng.Generator) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)

	for j := len(shuffled) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// HashCode returns a SHA1 hash code of the card order
func HashCode(cards []Card) string {
	hash := sha1.New() // nolint:gosec
	for _, card := range cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Dealer hands out cards from a deck left-to-right.
// Every position in the deck is dealt at most once.
type Dealer struct {
	cards []Card
	next  int
}

// NewDealer returns a dealer for the provided cards. The slice is copied.
func NewDealer(cards []Card) *Dealer {
	c := make([]Card, len(cards))
	copy(c, cards)

	return &Dealer{cards: c}
}

// Draw will draw the next card
// If there are no more cards, ErrEndOfDeck is returned
func (d *Dealer) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrEndOfDeck
	}

	card := d.cards[d.next]
	d.next++

	return card, nil
}

// DrawN draws n cards. If fewer than n cards remain, nothing is drawn and ErrEndOfDeck is returned.
func (d *Dealer) DrawN(n int) ([]Card, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Dealer) CanDraw(want int) bool {
	return d.CardsLeft() >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Dealer) CardsLeft() int {
	return len(d.cards) - d.next
}
