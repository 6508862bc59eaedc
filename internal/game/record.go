package game

import (
	"strings"
	"time"
)

// RoundRecord is the persisted summary of one settled round, whether
// played out or folded.
type RoundRecord struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"sessionId"`
	Ante           int       `json:"ante"`
	PairPlus       int       `json:"pairPlus"`
	Play           int       `json:"play"`
	PlayerHand     string    `json:"playerHand"`
	DealerHand     string    `json:"dealerHand"`
	PlayerHandName string    `json:"playerHandName"`
	DealerHandName string    `json:"dealerHandName"`
	Winner         int       `json:"winner"`
	Folded         bool      `json:"folded"`
	Winnings       int       `json:"winnings"`
	CashAfter      int       `json:"cashAfter"`
	CreatedAt      time.Time `json:"createdAt"`
}

// HandText renders a hand in wire card notation, e.g. "10S JH QD".
func HandText(hand []Card) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
