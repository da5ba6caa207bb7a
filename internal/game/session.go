package game

import (
	"math/rand"
	"sync"
	"time"
)

/* ------------------------------ Sessions ------------------------------ */

// Session is one player's seat at the hub: the game being played plus the
// attachment bookkeeping that lets a dropped connection resume it later.
type Session struct {
	ID       string
	Mu       sync.Mutex
	game     *Game
	cfg      Config
	attached bool
	lastSeen time.Time
}

func newSession(id string, cfg Config) *Session {
	return &Session{
		ID:       id,
		game:     NewGame(cfg),
		cfg:      cfg,
		lastSeen: time.Now(),
	}
}

// Attach claims the session for a connection. A session holds at most one
// connection at a time; a second concurrent attach is refused.
func (s *Session) Attach() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.attached {
		return false
	}
	s.attached = true
	return true
}

// Detach releases the session and stamps it for the idle sweep.
func (s *Session) Detach() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.attached = false
	s.lastSeen = time.Now()
}

// Current returns the live game. Restart swaps the game out from under
// callers, so do not cache the pointer across messages.
func (s *Session) Current() *Game {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.game
}

// Restart abandons the current game and deals a fresh one with the config the
// session was created with. An explicit seed replays the same spawn timeline.
func (s *Session) Restart() *Game {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.game = NewGame(s.cfg)
	return s.game
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return !s.attached && s.lastSeen.Before(cutoff)
}

type Hub struct {
	Sessions map[string]*Session
	Base     Config
	Mu       sync.Mutex
}

// NewHub builds a session registry whose sessions default to base unless the
// caller supplies a config of their own.
func NewHub(base Config) *Hub {
	return &Hub{Sessions: map[string]*Session{}, Base: base}
}

// GetSession returns the session with the given id, creating it with cfg on
// first sight. A resumed session keeps the config it was created with.
func (h *Hub) GetSession(id string, cfg Config) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s, ok := h.Sessions[id]
	if !ok {
		s = newSession(id, cfg)
		h.Sessions[id] = s
	}
	return s
}

// CleanupIdleSessions drops sessions that have sat unattached for longer than
// maxIdle and reports how many were removed.
func (h *Hub) CleanupIdleSessions(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	h.Mu.Lock()
	defer h.Mu.Unlock()
	removed := 0
	for id, s := range h.Sessions {
		if s.idleSince(cutoff) {
			delete(h.Sessions, id)
			removed++
		}
	}
	return removed
}

func RandId(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return prefix + "-" + string(b)
}
