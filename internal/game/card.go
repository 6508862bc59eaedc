package game

import "strconv"

type Suit string
type Rank int

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// suits lists every suit in a fixed order, used when building a deck.
var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Symbol returns the suit's card-face glyph.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// String returns the rank as printed on a card face: "2".."10", then
// J, Q, K, A for the court cards and the ace.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an immutable suit and rank pair. Two cards are equal when
// both fields match, so Card is usable as a map key.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String returns the wire form of the card, rank followed by suit
// letter, e.g. "10S" or "AH".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}
