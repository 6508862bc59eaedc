package game

// HandSize is the number of cards in a Three Card Poker hand.
const HandSize = 3

// Dealer owns a deck and deals three-card hands from it. The deck
// persists across rounds; when fewer than three cards remain the
// dealer rebuilds it with a fresh shuffle before dealing.
type Dealer struct {
	deck *Deck
	hand []Card
}

// NewDealer creates a dealer with a freshly shuffled deck.
func NewDealer() *Dealer {
	return &Dealer{deck: NewDeck()}
}

// DealHand removes and returns the top three cards of the deck,
// rebuilding the deck first if it has run too low. It always returns
// exactly HandSize cards.
func (d *Dealer) DealHand() []Card {
	if d.deck.Size() < HandSize {
		d.deck.Rebuild()
	}

	hand := make([]Card, HandSize)
	for i := range hand {
		// the rebuild guard above keeps at least a full hand available
		card, _ := d.deck.RemoveTop()
		hand[i] = card
	}
	return hand
}

// SetDealersHand records the dealer's hand for the current round.
func (d *Dealer) SetDealersHand(hand []Card) {
	d.hand = hand
}

// DealersHand returns the dealer's most recently recorded hand.
func (d *Dealer) DealersHand() []Card {
	return d.hand
}

// DeckSize returns the number of cards left in the dealer's deck.
func (d *Dealer) DeckSize() int {
	return d.deck.Size()
}
