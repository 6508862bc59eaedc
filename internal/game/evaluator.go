package game

import "sort"

// HandCategory classifies a three-card hand. The order is specific to
// Three Card Poker: with only three cards a flush is easier to make
// than a straight, so Flush ranks below Straight.
type HandCategory int

const (
	HighCard HandCategory = iota
	Pair
	Flush
	Straight
	ThreeOfAKind
	StraightFlush
)

// String returns the display name of the category, as shown to players.
func (h HandCategory) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Round outcome codes, shared with the wire format.
const (
	WinnerNone   = 0 // push, or dealer failed to qualify
	WinnerPlayer = 1
	WinnerDealer = 2
)

// Pair Plus payout multipliers.
const (
	straightFlushPays = 40
	threeOfAKindPays  = 30
	straightPays      = 6
	flushPays         = 3
	pairPays          = 1
)

// Classify determines the category of a three-card hand.
func Classify(hand []Card) HandCategory {
	straight := isStraight(hand)
	flush := isFlush(hand)

	switch {
	case straight && flush:
		return StraightFlush
	case isThreeOfAKind(hand):
		return ThreeOfAKind
	case straight:
		return Straight
	case flush:
		return Flush
	case isPair(hand):
		return Pair
	default:
		return HighCard
	}
}

// CompareHands compares the dealer's hand against the player's and
// returns WinnerPlayer, WinnerDealer, or WinnerNone for a tie. Hands
// are compared by category first, then by highest single card. Ties on
// both are true ties; the second and third cards never break them.
func CompareHands(dealerHand, playerHand []Card) int {
	dealerCat := Classify(dealerHand)
	playerCat := Classify(playerHand)

	if playerCat != dealerCat {
		if playerCat > dealerCat {
			return WinnerPlayer
		}
		return WinnerDealer
	}

	dealerHigh := HighestCardVal(dealerHand)
	playerHigh := HighestCardVal(playerHand)

	switch {
	case playerHigh > dealerHigh:
		return WinnerPlayer
	case dealerHigh > playerHigh:
		return WinnerDealer
	default:
		return WinnerNone
	}
}

// DealerQualifies reports whether the dealer's hand is Queen high or
// better. Qualification is a pure highest-card threshold; the hand's
// category does not factor in.
func DealerQualifies(dealerHand []Card) bool {
	return HighestCardVal(dealerHand) >= int(Queen)
}

// PairPlusPayout returns the Pair Plus winnings for a hand and bet. A
// losing hand returns 0; forfeiting the bet itself is the caller's
// accounting.
func PairPlusPayout(hand []Card, bet int) int {
	switch Classify(hand) {
	case StraightFlush:
		return bet * straightFlushPays
	case ThreeOfAKind:
		return bet * threeOfAKindPays
	case Straight:
		return bet * straightPays
	case Flush:
		return bet * flushPays
	case Pair:
		return bet * pairPays
	default:
		return 0
	}
}

// HighestCardVal returns the highest rank value in the hand.
func HighestCardVal(hand []Card) int {
	highest := 0
	for _, card := range hand {
		if int(card.Rank) > highest {
			highest = int(card.Rank)
		}
	}
	return highest
}

// sortedRanks returns the hand's rank values in ascending order.
func sortedRanks(hand []Card) []int {
	ranks := make([]int, len(hand))
	for i, card := range hand {
		ranks[i] = int(card.Rank)
	}
	sort.Ints(ranks)
	return ranks
}

// isStraight reports whether the three ranks are consecutive. Q-K-A
// (12,13,14) counts by being consecutive; A-2-3 does not, because the
// ace only ranks high.
func isStraight(hand []Card) bool {
	ranks := sortedRanks(hand)
	return ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1
}

func isFlush(hand []Card) bool {
	return hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit
}

func isThreeOfAKind(hand []Card) bool {
	return hand[0].Rank == hand[1].Rank && hand[1].Rank == hand[2].Rank
}

// isPair reports whether exactly two ranks match.
func isPair(hand []Card) bool {
	if isThreeOfAKind(hand) {
		return false
	}
	return hand[0].Rank == hand[1].Rank ||
		hand[1].Rank == hand[2].Rank ||
		hand[0].Rank == hand[2].Rank
}
