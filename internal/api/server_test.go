package api

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

// startTestServer runs the full HTTP surface and returns the registry
// plus a websocket URL to dial.
func startTestServer(t *testing.T) (*Registry, *store.MemoryStore, string) {
	t.Helper()

	logger := log.New(io.Discard)
	st := store.NewMemoryStore()
	registry := NewRegistry(st, 100, logger)
	handlers := NewHandlers(st, nil, registry)

	r := mux.NewRouter()
	handlers.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	t.Cleanup(registry.Stop)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	return registry, st, wsURL
}

func dial(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) *RoundMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg RoundMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return &msg
}

func TestServerSendsGreetingOnConnect(t *testing.T) {
	registry, _, wsURL := startTestServer(t)
	conn := dial(t, wsURL)

	greeting := readMessage(t, conn)
	assert.Equal(t, codeGreeting, greeting.ButtonPressed)
	assert.Equal(t, 100, greeting.Cash)
	assert.True(t, greeting.Hang)
	assert.True(t, greeting.NewRound)

	// registration may race the greeting slightly
	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestFullRoundOverTheWire(t *testing.T) {
	_, st, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn) // greeting

	// deal
	require.NoError(t, conn.WriteJSON(dealMessage(10, 5)))
	dealResp := readMessage(t, conn)
	assert.Equal(t, 85, dealResp.Cash)
	assert.NotEmpty(t, dealResp.Card1)
	assert.NotEmpty(t, dealResp.PHandVal)

	// play
	dealResp.ButtonPressed = codePlay
	require.NoError(t, conn.WriteJSON(dealResp))
	settle := readMessage(t, conn)
	assert.Contains(t, []int{0, 1, 2}, settle.Winner)
	assert.Equal(t, 10, settle.Play)
	assert.Equal(t, 85+settle.WinningsThisRound, settle.Cash)
	assert.NotEmpty(t, settle.DHandVal)

	// the next round continues on the same connection and balance
	next := dealMessage(5, 0)
	require.NoError(t, conn.WriteJSON(next))
	nextResp := readMessage(t, conn)
	assert.Equal(t, settle.Cash-5, nextResp.Cash)

	rounds, err := st.GetRecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
}

func TestFoldOverTheWire(t *testing.T) {
	_, st, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(dealMessage(10, 5)))
	dealResp := readMessage(t, conn)
	require.Equal(t, 85, dealResp.Cash)

	fold := NewRoundMessage()
	fold.ButtonPressed = codeFold
	require.NoError(t, conn.WriteJSON(fold))
	settle := readMessage(t, conn)

	assert.Equal(t, -15, settle.WinningsThisRound)
	assert.Equal(t, 70, settle.Cash)

	rounds, err := st.GetRecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.True(t, rounds[0].Folded)
}

func TestInvalidDealGetsNoReply(t *testing.T) {
	_, _, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(dealMessage(3, 0)))

	// the server stays silent; the read must time out
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	var msg RoundMessage
	err := conn.ReadJSON(&msg)
	require.Error(t, err)
}

func TestConcurrentSessionsDoNotInterfere(t *testing.T) {
	registry, _, wsURL := startTestServer(t)

	connA := dial(t, wsURL)
	connB := dial(t, wsURL)
	readMessage(t, connA)
	readMessage(t, connB)

	require.Eventually(t, func() bool { return registry.Count() == 2 },
		time.Second, 10*time.Millisecond)

	// A deals and folds; B only deals
	require.NoError(t, connA.WriteJSON(dealMessage(25, 0)))
	require.NoError(t, connB.WriteJSON(dealMessage(5, 5)))

	respA := readMessage(t, connA)
	respB := readMessage(t, connB)
	assert.Equal(t, 75, respA.Cash)
	assert.Equal(t, 90, respB.Cash)

	fold := NewRoundMessage()
	fold.ButtonPressed = codeFold
	require.NoError(t, connA.WriteJSON(fold))
	settleA := readMessage(t, connA)
	assert.Equal(t, 50, settleA.Cash)

	// B's round is untouched by A's settlement
	fold2 := NewRoundMessage()
	fold2.ButtonPressed = codeFold
	require.NoError(t, connB.WriteJSON(fold2))
	settleB := readMessage(t, connB)
	assert.Equal(t, 80, settleB.Cash)
}

func TestDisconnectDeregistersSession(t *testing.T) {
	registry, _, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn)

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return registry.Count() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestMalformedPayloadTerminatesSession(t *testing.T) {
	registry, _, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn)

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.Eventually(t, func() bool { return registry.Count() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestStopClosesLiveSessions(t *testing.T) {
	registry, _, wsURL := startTestServer(t)
	conn := dial(t, wsURL)
	readMessage(t, conn)

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 10*time.Millisecond)

	registry.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var msg RoundMessage
	assert.Error(t, conn.ReadJSON(&msg), "server close must fail the client read")
	require.Eventually(t, func() bool { return registry.Count() == 0 },
		time.Second, 10*time.Millisecond)
}
