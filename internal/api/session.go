package api

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/calvinwijaya/three-card-poker-be/internal/game"
	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

// Session is the per-connection state machine. It owns one game (and
// with it one player, dealer, and deck), reads one RoundMessage at a
// time, and writes each response back before reading the next. No
// state is shared between sessions.
type Session struct {
	ID       string
	conn     *websocket.Conn
	game     *game.ThreeCardGame
	registry *Registry
	store    store.Store
	logger   *log.Logger
}

func newSession(conn *websocket.Conn, registry *Registry, st store.Store, startingCash int, logger *log.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		ID:       id,
		conn:     conn,
		game:     game.NewThreeCardGame(startingCash),
		registry: registry,
		store:    st,
		logger:   logger.WithPrefix("session").With("session", id[:8]),
	}
}

// run sends the greeting and then services the request loop until the
// connection fails. Read errors, including unparseable payloads, are
// terminal: the session deregisters and its socket closes.
func (s *Session) run() {
	defer func() {
		s.registry.remove(s)
		s.close()
	}()

	greeting := NewRoundMessage()
	greeting.ButtonPressed = codeGreeting
	greeting.Cash = s.game.Player.TotalWinnings
	if err := s.conn.WriteJSON(greeting); err != nil {
		s.logger.Error("failed to send greeting", "error", err)
		return
	}
	s.logger.Info("greeting sent", "cash", greeting.Cash)

	for {
		var msg RoundMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			s.logger.Info("client disconnected", "error", err)
			return
		}

		resp, ok := s.handle(&msg)
		if !ok {
			continue
		}
		if err := s.conn.WriteJSON(resp); err != nil {
			s.logger.Error("failed to write response", "error", err)
			return
		}
	}
}

func (s *Session) close() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

// handle dispatches one inbound message. A false return means the
// message is dropped without a reply: invalid wagers, actions outside
// the current phase, and unknown button codes all fail silently.
func (s *Session) handle(msg *RoundMessage) (*RoundMessage, bool) {
	switch commandFromCode(msg.ButtonPressed) {
	case CmdDeal:
		return s.handleDeal(msg)
	case CmdPlay:
		return s.handlePlay(msg)
	case CmdFold:
		return s.handleFold(msg)
	default:
		s.logger.Warn("ignoring message with unexpected button code", "code", msg.ButtonPressed)
		return nil, false
	}
}

func (s *Session) handleDeal(msg *RoundMessage) (*RoundMessage, bool) {
	result, err := s.game.Deal(msg.Ante, msg.PairPlus)
	if err != nil {
		s.logger.Warn("deal rejected", "ante", msg.Ante, "pairPlus", msg.PairPlus, "error", err)
		return nil, false
	}

	msg.Card1 = result.PlayerHand[0].String()
	msg.Card2 = result.PlayerHand[1].String()
	msg.Card3 = result.PlayerHand[2].String()
	msg.DCard1 = result.DealerHand[0].String()
	msg.DCard2 = result.DealerHand[1].String()
	msg.DCard3 = result.DealerHand[2].String()
	msg.PHandVal = result.PlayerCategory.String()
	msg.DHandVal = result.DealerCategory.String()
	msg.Cash = result.Cash

	s.logger.Info("cards dealt",
		"ante", msg.Ante, "pairPlus", msg.PairPlus,
		"playerHand", msg.PHandVal, "cash", msg.Cash)
	return msg, true
}

func (s *Session) handlePlay(msg *RoundMessage) (*RoundMessage, bool) {
	settlement, err := s.game.Play()
	if err != nil {
		s.logger.Warn("play rejected", "error", err)
		return nil, false
	}

	msg.Play = s.game.Player.PlayBet
	s.annotateSettlement(msg, settlement)
	s.saveRound(msg, false)

	s.logger.Info("round played",
		"winner", settlement.Winner,
		"winnings", settlement.Winnings, "cash", settlement.Cash)
	return msg, true
}

func (s *Session) handleFold(msg *RoundMessage) (*RoundMessage, bool) {
	settlement, err := s.game.Fold()
	if err != nil {
		s.logger.Warn("fold rejected", "error", err)
		return nil, false
	}

	s.annotateSettlement(msg, settlement)
	s.saveRound(msg, true)

	s.logger.Info("player folded",
		"loss", -settlement.Winnings, "cash", settlement.Cash)
	return msg, true
}

// annotateSettlement writes a settlement's outcome onto the response.
// The dealer card fields go out again so the reveal does not depend on
// the client echoing the deal response correctly.
func (s *Session) annotateSettlement(msg *RoundMessage, settlement *game.Settlement) {
	msg.DCard1 = settlement.DealerHand[0].String()
	msg.DCard2 = settlement.DealerHand[1].String()
	msg.DCard3 = settlement.DealerHand[2].String()
	msg.DHandVal = settlement.DealerCategory.String()
	msg.Winner = settlement.Winner
	msg.WinningsThisRound = settlement.Winnings
	msg.Cash = settlement.Cash
	msg.PlayerWon = settlement.Winner == game.WinnerPlayer
	msg.PlayOver = true
}

// saveRound records a settled round. Persistence failures are logged
// and otherwise ignored; the round already resolved for the player.
func (s *Session) saveRound(msg *RoundMessage, folded bool) {
	if s.store == nil {
		return
	}

	record := &game.RoundRecord{
		ID:             uuid.New().String(),
		SessionID:      s.ID,
		Ante:           s.game.Player.AnteBet,
		PairPlus:       s.game.Player.PairPlusBet,
		Play:           s.game.Player.PlayBet,
		PlayerHand:     game.HandText(s.game.Player.Hand),
		DealerHand:     game.HandText(s.game.Dealer.DealersHand()),
		PlayerHandName: game.Classify(s.game.Player.Hand).String(),
		DealerHandName: game.Classify(s.game.Dealer.DealersHand()).String(),
		Winner:         msg.Winner,
		Folded:         folded,
		Winnings:       msg.WinningsThisRound,
		CashAfter:      msg.Cash,
		CreatedAt:      time.Now(),
	}

	if err := s.store.SaveRound(record); err != nil {
		s.logger.Error("failed to save round record", "error", err)
	}
}
