package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrGameNotFound reports a lookup for an unknown game ID.
var ErrGameNotFound = errors.New("game: not found")

// Manager is an in-memory store of running games keyed by UUID. Safe for
// concurrent use.
type Manager struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[uuid.UUID]*Game)}
}

// Create starts a new game under a fresh ID.
func (m *Manager) Create(tc TimeControl) (uuid.UUID, *Game) {
	id := uuid.New()
	g := New(tc)

	m.mu.Lock()
	m.games[id] = g
	m.mu.Unlock()

	log.Info().
		Str("game_id", id.String()).
		Dur("base", tc.Base).
		Dur("increment", tc.Increment).
		Msg("game created")
	return id, g
}

// Get looks up a game by ID.
func (m *Manager) Get(id uuid.UUID) (*Game, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Remove drops a game from the store.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	_, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()

	if ok {
		log.Info().Str("game_id", id.String()).Msg("game removed")
	}
}

// Len is the number of stored games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
