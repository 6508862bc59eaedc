package api

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the CORS layer
	},
}

// WebSocketHandler upgrades the connection and starts a fresh session
// for it. Each session gets its own player, dealer, and deck.
func (r *Registry) WebSocketHandler(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	s := newSession(conn, r, r.store, r.startingCash, r.logger)
	if !r.add(s) {
		_ = conn.Close()
		return
	}
	go s.run()
}
