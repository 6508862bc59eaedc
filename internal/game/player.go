package game

// Player holds the per-session mutable state for one seat: the current
// hand, the three wagers, and the running cash total. A Player is
// created once per connection and only ever mutated by the session
// that owns it.
type Player struct {
	Hand          []Card `json:"hand"`
	AnteBet       int    `json:"anteBet"`
	PlayBet       int    `json:"playBet"`
	PairPlusBet   int    `json:"pairPlusBet"`
	TotalWinnings int    `json:"totalWinnings"`
}

// NewPlayer creates a player seeded with the table's starting cash.
func NewPlayer(startingCash int) *Player {
	return &Player{
		Hand:          []Card{},
		TotalWinnings: startingCash,
	}
}
