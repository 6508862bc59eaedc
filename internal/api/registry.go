package api

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/calvinwijaya/three-card-poker-be/internal/store"
)

// Observer receives session lifecycle notifications along with the
// live session count at the time of the event. Calls are serialized by
// the registry; observers must not call back into it.
type Observer func(event string, sessionID string, sessions int)

// Registry tracks the set of live sessions. All structural changes and
// observer notifications happen under one lock, so registration,
// removal, and count queries never interleave even though sessions run
// on their own goroutines.
type Registry struct {
	mu           sync.Mutex
	sessions     map[*Session]struct{}
	stopped      bool
	observer     Observer
	store        store.Store
	startingCash int
	logger       *log.Logger
}

// NewRegistry creates a registry whose sessions record rounds to st
// and seed each player with startingCash.
func NewRegistry(st store.Store, startingCash int, logger *log.Logger) *Registry {
	return &Registry{
		sessions:     make(map[*Session]struct{}),
		store:        st,
		startingCash: startingCash,
		logger:       logger.WithPrefix("registry"),
	}
}

// SetObserver installs the lifecycle observer. Call before serving.
func (r *Registry) SetObserver(fn Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = fn
}

// add registers a session. It returns false when the registry has been
// stopped and no longer accepts sessions.
func (r *Registry) add(s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return false
	}
	r.sessions[s] = struct{}{}
	r.logger.Info("session connected", "session", s.ID[:8], "total", len(r.sessions))
	r.notify("connected", s.ID)
	return true
}

// remove deregisters a session. Safe to call more than once.
func (r *Registry) remove(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s]; !ok {
		return
	}
	delete(r.sessions, s)
	r.logger.Info("session disconnected", "session", s.ID[:8], "total", len(r.sessions))
	r.notify("disconnected", s.ID)
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SessionIDs returns the IDs of all live sessions.
func (r *Registry) SessionIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.sessions))
	for s := range r.sessions {
		ids = append(ids, s.ID)
	}
	return ids
}

// Stop closes every tracked session's connection and refuses new ones.
// Closing a socket fails that session's pending read, which drives its
// normal terminal transition; an in-flight round is simply abandoned.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	r.stopped = true
	for s := range r.sessions {
		s.close()
	}
	r.logger.Info("registry stopped", "closed", len(r.sessions))
}

// notify is called with the registry lock held.
func (r *Registry) notify(event, sessionID string) {
	if r.observer != nil {
		r.observer(event, sessionID, len(r.sessions))
	}
}
