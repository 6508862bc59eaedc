package game

import "errors"

// Phase tracks where a session's current round stands.
type Phase int

const (
	PhaseAwaitingBets Phase = iota // waiting for a deal with valid wagers
	PhaseDealt                     // cards out, waiting on play or fold
	PhaseSettled                   // round resolved, next deal starts a new round
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingBets:
		return "awaitingBets"
	case PhaseDealt:
		return "dealt"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Table wager limits. House rules, not configuration.
const (
	MinBet = 5
	MaxBet = 25
)

var (
	ErrInvalidAnte     = errors.New("ante must be between 5 and 25")
	ErrInvalidPairPlus = errors.New("pair plus must be 0 or between 5 and 25")
	ErrWrongPhase      = errors.New("action not valid in current phase")
)

// ThreeCardGame drives one player's rounds against the house. It owns
// the player record and the dealer (and through it the deck), and
// advances through deal, then play or fold, then back to betting.
type ThreeCardGame struct {
	Player *Player
	Dealer *Dealer
	Phase  Phase
}

// NewThreeCardGame creates a game with a fresh player, dealer, and
// shuffled deck.
func NewThreeCardGame(startingCash int) *ThreeCardGame {
	return &ThreeCardGame{
		Player: NewPlayer(startingCash),
		Dealer: NewDealer(),
		Phase:  PhaseAwaitingBets,
	}
}

// DealResult describes a completed deal: both hands, their categories,
// and the player's cash after the wagers were taken.
type DealResult struct {
	PlayerHand     []Card
	DealerHand     []Card
	PlayerCategory HandCategory
	DealerCategory HandCategory
	Cash           int
}

// Settlement describes a resolved round.
type Settlement struct {
	DealerHand     []Card
	DealerCategory HandCategory
	Winner         int
	Winnings       int
	Cash           int
}

// Deal validates the wagers, takes them from the player's cash, and
// deals a hand to each side from the shared deck. It rejects a deal
// while a round is in progress.
func (g *ThreeCardGame) Deal(ante, pairPlus int) (*DealResult, error) {
	if g.Phase == PhaseDealt {
		return nil, ErrWrongPhase
	}
	if ante < MinBet || ante > MaxBet {
		return nil, ErrInvalidAnte
	}
	if pairPlus != 0 && (pairPlus < MinBet || pairPlus > MaxBet) {
		return nil, ErrInvalidPairPlus
	}

	p := g.Player
	p.AnteBet = ante
	p.PairPlusBet = pairPlus
	p.PlayBet = 0

	// Both hands come from the same shuffle, so they cannot overlap.
	playerHand := g.Dealer.DealHand()
	dealerHand := g.Dealer.DealHand()
	p.Hand = playerHand
	g.Dealer.SetDealersHand(dealerHand)

	p.TotalWinnings -= ante + pairPlus
	g.Phase = PhaseDealt

	return &DealResult{
		PlayerHand:     playerHand,
		DealerHand:     dealerHand,
		PlayerCategory: Classify(playerHand),
		DealerCategory: Classify(dealerHand),
		Cash:           p.TotalWinnings,
	}, nil
}

// Play places the play wager (always equal to the ante) and settles
// the round. Pair Plus resolves first and independently: it pays or
// forfeits on the player's hand alone, even when the dealer fails to
// qualify. If the dealer does not qualify, ante and play push with no
// change to the total. Otherwise a player win credits double the
// combined ante and play stake, a dealer win costs the combined stake,
// and a tie costs nothing.
func (g *ThreeCardGame) Play() (*Settlement, error) {
	if g.Phase != PhaseDealt {
		return nil, ErrWrongPhase
	}

	p := g.Player
	p.PlayBet = p.AnteBet

	winnings := 0
	if p.PairPlusBet > 0 {
		if payout := PairPlusPayout(p.Hand, p.PairPlusBet); payout > 0 {
			winnings += payout
		} else {
			winnings -= p.PairPlusBet
		}
	}

	winner := WinnerNone
	dealerHand := g.Dealer.DealersHand()
	if DealerQualifies(dealerHand) {
		winner = CompareHands(dealerHand, p.Hand)
		switch winner {
		case WinnerPlayer:
			winnings += 2 * (p.AnteBet + p.PlayBet)
		case WinnerDealer:
			winnings -= p.AnteBet + p.PlayBet
		}
	}

	p.TotalWinnings += winnings
	g.Phase = PhaseSettled

	return &Settlement{
		DealerHand:     dealerHand,
		DealerCategory: Classify(dealerHand),
		Winner:         winner,
		Winnings:       winnings,
		Cash:           p.TotalWinnings,
	}, nil
}

// Fold forfeits the ante and any pair plus wager. No play wager is
// ever placed on a fold.
func (g *ThreeCardGame) Fold() (*Settlement, error) {
	if g.Phase != PhaseDealt {
		return nil, ErrWrongPhase
	}

	p := g.Player
	loss := p.AnteBet + p.PairPlusBet
	p.TotalWinnings -= loss
	g.Phase = PhaseSettled

	dealerHand := g.Dealer.DealersHand()
	return &Settlement{
		DealerHand:     dealerHand,
		DealerCategory: Classify(dealerHand),
		Winner:         WinnerNone,
		Winnings:       -loss,
		Cash:           p.TotalWinnings,
	}, nil
}
