// Package session keeps the live games served over HTTP, each behind its
// own lock.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is one live game. The controller is only reachable through Do, which
// serialises access.
type Game struct {
	ID string

	mu         sync.Mutex
	controller *engine.Controller
	deleted    bool
}

// Do runs fn with exclusive access to the game's controller and returns
// its error. Once the game has been deleted, fn is not run and Do returns
// ErrGameNotFound.
func (g *Game) Do(fn func(c *engine.Controller) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.deleted {
		return fmt.Errorf("game %s: %w", g.ID, errors.ErrGameNotFound)
	}
	return fn(g.controller)
}

// Manager owns the set of live games.
type Manager struct {
	cfg   *config.Config
	games map[string]*Game
	mu    sync.RWMutex
}

// NewManager creates an empty manager. Games it creates share cfg.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{
		cfg:   cfg,
		games: make(map[string]*Game),
	}
}

// Create starts a game from the standard initial position.
func (m *Manager) Create() *Game {
	return m.add(engine.NewController(m.cfg))
}

// CreateFromFEN starts a game from fen.
func (m *Manager) CreateFromFEN(fen string) (*Game, error) {
	c, err := engine.NewControllerFromFEN(m.cfg, fen)
	if err != nil {
		return nil, err
	}
	return m.add(c), nil
}

func (m *Manager) add(c *engine.Controller) *Game {
	g := &Game{ID: uuid.New().String(), controller: c}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.cfg.Logf(1, "game %s created", g.ID)
	return g
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	return g, nil
}

// Delete removes the game with the given id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	delete(m.games, id)

	g.mu.Lock()
	g.deleted = true
	g.mu.Unlock()
	m.cfg.Logf(1, "game %s deleted", id)
	return nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
