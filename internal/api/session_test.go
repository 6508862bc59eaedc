package api

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinwijaya/three-card-poker-be/internal/game"
	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

// testSession builds a session without a network connection; handle
// works on messages directly.
func testSession(t *testing.T) (*Session, *store.MemoryStore) {
	t.Helper()
	logger := log.New(io.Discard)
	st := store.NewMemoryStore()
	registry := NewRegistry(st, 100, logger)
	return newSession(nil, registry, st, 100, logger), st
}

func dealMessage(ante, pairPlus int) *RoundMessage {
	msg := NewRoundMessage()
	msg.ButtonPressed = codeDeal
	msg.Ante = ante
	msg.PairPlus = pairPlus
	msg.Cash = 100
	return msg
}

func TestHandleDealPopulatesResponse(t *testing.T) {
	s, _ := testSession(t)

	resp, ok := s.handle(dealMessage(10, 5))
	require.True(t, ok)

	for _, card := range []string{resp.Card1, resp.Card2, resp.Card3, resp.DCard1, resp.DCard2, resp.DCard3} {
		assert.NotEmpty(t, card)
	}
	assert.NotEmpty(t, resp.PHandVal)
	assert.NotEmpty(t, resp.DHandVal)
	assert.Equal(t, 85, resp.Cash)
	assert.Equal(t, codeDeal, resp.ButtonPressed)
}

func TestHandleDealInvalidAnteIsDroppedSilently(t *testing.T) {
	s, _ := testSession(t)

	_, ok := s.handle(dealMessage(3, 0))
	assert.False(t, ok, "invalid wagers produce no reply")
	assert.Equal(t, game.PhaseAwaitingBets, s.game.Phase)
	assert.Equal(t, 100, s.game.Player.TotalWinnings)
}

func TestHandleDealInvalidPairPlusIsDroppedSilently(t *testing.T) {
	s, _ := testSession(t)

	_, ok := s.handle(dealMessage(10, 2))
	assert.False(t, ok)
	assert.Equal(t, 100, s.game.Player.TotalWinnings)
}

func TestHandleUnknownButtonIgnored(t *testing.T) {
	s, _ := testSession(t)

	msg := NewRoundMessage()
	msg.ButtonPressed = 7
	_, ok := s.handle(msg)
	assert.False(t, ok)

	// the greeting code is a server-side phase tag, not a command
	msg.ButtonPressed = codeGreeting
	_, ok = s.handle(msg)
	assert.False(t, ok)
}

func TestHandlePlayOutsideRoundIgnored(t *testing.T) {
	s, _ := testSession(t)

	msg := NewRoundMessage()
	msg.ButtonPressed = codePlay
	_, ok := s.handle(msg)
	assert.False(t, ok)
	assert.Equal(t, 100, s.game.Player.TotalWinnings)
}

func TestHandleFoldArithmetic(t *testing.T) {
	s, _ := testSession(t)

	resp, ok := s.handle(dealMessage(10, 5))
	require.True(t, ok)
	require.Equal(t, 85, resp.Cash)

	msg := NewRoundMessage()
	msg.ButtonPressed = codeFold
	resp, ok = s.handle(msg)
	require.True(t, ok)

	assert.Equal(t, -15, resp.WinningsThisRound)
	assert.Equal(t, 70, resp.Cash)
	assert.True(t, resp.PlayOver)
	assert.False(t, resp.PlayerWon)
}

func TestHandlePlaySettlesAndRecordsRound(t *testing.T) {
	s, st := testSession(t)

	_, ok := s.handle(dealMessage(10, 5))
	require.True(t, ok)

	msg := NewRoundMessage()
	msg.ButtonPressed = codePlay
	resp, ok := s.handle(msg)
	require.True(t, ok)

	assert.Contains(t, []int{game.WinnerNone, game.WinnerPlayer, game.WinnerDealer}, resp.Winner)
	assert.Equal(t, 10, resp.Play, "play wager always equals the ante")
	assert.Equal(t, 85+resp.WinningsThisRound, resp.Cash)
	assert.NotEmpty(t, resp.DHandVal)
	assert.True(t, resp.PlayOver)

	rounds, err := st.GetSessionRounds(s.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, s.ID, rounds[0].SessionID)
	assert.Equal(t, 10, rounds[0].Ante)
	assert.Equal(t, 5, rounds[0].PairPlus)
	assert.False(t, rounds[0].Folded)
	assert.Equal(t, resp.WinningsThisRound, rounds[0].Winnings)
}

func TestHandleFoldRecordsFoldedRound(t *testing.T) {
	s, st := testSession(t)

	_, ok := s.handle(dealMessage(10, 0))
	require.True(t, ok)

	msg := NewRoundMessage()
	msg.ButtonPressed = codeFold
	_, ok = s.handle(msg)
	require.True(t, ok)

	rounds, err := st.GetSessionRounds(s.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.True(t, rounds[0].Folded)
	assert.Equal(t, -10, rounds[0].Winnings)
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _ := testSession(t)
	b, _ := testSession(t)

	_, ok := a.handle(dealMessage(25, 25))
	require.True(t, ok)

	assert.Equal(t, game.PhaseAwaitingBets, b.game.Phase)
	assert.Equal(t, 100, b.game.Player.TotalWinnings)
}
