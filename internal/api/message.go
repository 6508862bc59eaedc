package api

// RoundMessage is the wire envelope exchanged once per turn. The
// client fills in the wagers and a button code; the server annotates
// the same shape with cards, hand names, and the round outcome before
// writing it back. The trailing booleans exist for the client UI and
// keep their historical defaults.
type RoundMessage struct {
	Ante              int    `json:"ante"`
	PairPlus          int    `json:"pairPlus"`
	Play              int    `json:"play"`
	Cash              int    `json:"cash"`
	ButtonPressed     int    `json:"buttonPressed"`
	Card1             string `json:"card1"`
	Card2             string `json:"card2"`
	Card3             string `json:"card3"`
	DCard1            string `json:"dCard1"`
	DCard2            string `json:"dCard2"`
	DCard3            string `json:"dCard3"`
	PHandVal          string `json:"pHandVal"`
	DHandVal          string `json:"dHandVal"`
	Winner            int    `json:"winner"`
	WinningsThisRound int    `json:"winningsThisRound"`
	Hang              bool   `json:"hang"`
	PlayOver          bool   `json:"playOver"`
	PlayerWon         bool   `json:"playerWon"`
	NewRound          bool   `json:"newRound"`
}

// NewRoundMessage returns a message with the defaults the client
// expects: hang and newRound set, everything else zero.
func NewRoundMessage() *RoundMessage {
	return &RoundMessage{
		Hang:     true,
		NewRound: true,
	}
}

// Command is the decoded intent of an inbound message. The wire keeps
// the historical integer button codes; everything past the decode
// works with Command values only.
type Command int

const (
	CmdUnknown Command = iota
	CmdGreeting
	CmdDeal
	CmdPlay
	CmdFold
)

// Wire button codes. 0 doubles as the server's greeting tag.
const (
	codeGreeting = 0
	codeDeal     = 1
	codePlay     = 2
	codeFold     = 3
)

func commandFromCode(code int) Command {
	switch code {
	case codeGreeting:
		return CmdGreeting
	case codeDeal:
		return CmdDeal
	case codePlay:
		return CmdPlay
	case codeFold:
		return CmdFold
	default:
		return CmdUnknown
	}
}

func (c Command) String() string {
	switch c {
	case CmdGreeting:
		return "greeting"
	case CmdDeal:
		return "deal"
	case CmdPlay:
		return "play"
	case CmdFold:
		return "fold"
	default:
		return "unknown"
	}
}
