package game

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned by RemoveTop when no cards remain.
var ErrEmptyDeck = errors.New("deck is empty")

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is an ordered collection of the 52 standard cards, consumed
// from the front. It holds no duplicate (suit, rank) pairs.
type Deck struct {
	cards []Card
}

// NewDeck creates a full 52-card deck in freshly shuffled order.
func NewDeck() *Deck {
	d := &Deck{}
	d.Rebuild()
	return d
}

// Rebuild discards whatever cards remain and reconstructs the full
// 52-card set in a new shuffled order. Construction goes through a set
// so uniqueness holds regardless of how the enumeration is written.
func (d *Deck) Rebuild() {
	seen := make(map[Card]struct{}, DeckSize)
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			seen[Card{Suit: suit, Rank: rank}] = struct{}{}
		}
	}

	cards := make([]Card, 0, DeckSize)
	for card := range seen {
		cards = append(cards, card)
	}

	// Fisher-Yates shuffle
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	d.cards = cards
}

// RemoveTop removes and returns the card at the front of the deck.
func (d *Deck) RemoveTop() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}
