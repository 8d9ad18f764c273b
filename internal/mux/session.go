package mux

import (
	"sync"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/blackjack"
)

// session is a single blackjack game plus its websocket subscribers.
// The game serializes its own operations; the session only guards the
// subscriber set.
type session struct {
	ID   string
	Name string
	Game *blackjack.Game

	mu          sync.Mutex
	subscribers map[chan *blackjack.GameState]bool
}

func newSession(id string, game *blackjack.Game) *session {
	return &session{
		ID:          id,
		Name:        util.GetRandomName(),
		Game:        game,
		subscribers: make(map[chan *blackjack.GameState]bool),
	}
}

// subscribe registers a channel that receives a state snapshot after every
// mutation. The caller must unsubscribe when done.
func (s *session) subscribe() chan *blackjack.GameState {
	ch := make(chan *blackjack.GameState, 8)

	s.mu.Lock()
	s.subscribers[ch] = true
	s.mu.Unlock()

	return ch
}

func (s *session) unsubscribe(ch chan *blackjack.GameState) {
	s.mu.Lock()
	delete(s.subscribers, ch)
	s.mu.Unlock()
}

// broadcast pushes the current state to every subscriber. A subscriber that
// can't keep up misses the snapshot rather than blocking the game.
func (s *session) broadcast() {
	state := s.Game.GetState()

	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

// sessionRegistry is the in-memory set of active game sessions. Nothing is
// persisted; sessions live for the life of the process.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
	}
}

func (r *sessionRegistry) add(s *session) {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
}

func (r *sessionRegistry) get(id string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}
