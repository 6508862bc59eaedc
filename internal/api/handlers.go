package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/calvinwijaya/three-card-poker-be/internal/db"
	"github.com/calvinwijaya/three-card-poker-be/internal/game"
	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

const defaultRoundsLimit = 50

// Handlers contains all the HTTP handlers. The websocket endpoint
// carries the game itself; the REST endpoints expose what the server
// console used to show: live session count and round history.
type Handlers struct {
	store    store.Store
	database *db.Database
	registry *Registry
}

// NewHandlers creates a new instance of Handlers. database may be nil
// when the server runs without persistence.
func NewHandlers(store store.Store, database *db.Database, registry *Registry) *Handlers {
	return &Handlers{
		store:    store,
		database: database,
		registry: registry,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/api/sessions", h.ListSessions).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/rounds", h.GetSessionRounds).Methods("GET")
	r.HandleFunc("/api/sessions/{id}/stats", h.GetSessionStats).Methods("GET")
	r.HandleFunc("/api/rounds", h.GetRecentRounds).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws", h.registry.WebSocketHandler)
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"error": message})
}

// Health reports server liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListSessions returns the live session count and IDs.
func (h *Handlers) ListSessions(w http.ResponseWriter, r *http.Request) {
	response(w, http.StatusOK, map[string]interface{}{
		"count":    h.registry.Count(),
		"sessions": h.registry.SessionIDs(),
	})
}

// GetSessionRounds returns a session's settled rounds, oldest first.
func (h *Handlers) GetSessionRounds(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	rounds, err := h.store.GetSessionRounds(sessionID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to load session rounds")
		return
	}

	response(w, http.StatusOK, rounds)
}

// GetSessionStats returns aggregate results for a session. The
// database computes them when available; otherwise they are derived
// from the store.
func (h *Handlers) GetSessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if h.database != nil {
		stats, err := h.database.GetSessionStats(sessionID)
		if err != nil {
			errorResponse(w, http.StatusInternalServerError, "Failed to load session stats")
			return
		}
		response(w, http.StatusOK, stats)
		return
	}

	rounds, err := h.store.GetSessionRounds(sessionID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to load session rounds")
		return
	}

	stats := db.SessionStats{SessionID: sessionID}
	for _, round := range rounds {
		stats.RoundsPlayed++
		stats.NetWinnings += round.Winnings
		if round.Winner == game.WinnerPlayer {
			stats.RoundsWon++
		}
		if round.Folded {
			stats.RoundsFolded++
		}
		if round.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = round.CreatedAt
		}
	}

	response(w, http.StatusOK, stats)
}

// GetRecentRounds returns the most recent settled rounds across all
// sessions, newest first. Limit defaults to 50.
func (h *Handlers) GetRecentRounds(w http.ResponseWriter, r *http.Request) {
	limit := defaultRoundsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	rounds, err := h.store.GetRecentRounds(limit)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to load rounds")
		return
	}

	response(w, http.StatusOK, rounds)
}
