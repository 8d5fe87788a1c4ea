package api

import (
	"sync"

	"github.com/ericogr/guessdex/internal/config"
	"github.com/ericogr/guessdex/internal/game"
	"github.com/ericogr/guessdex/internal/storage"
	"github.com/ericogr/guessdex/internal/store"
)

// GameHandler groups all game-related HTTP handlers. The catalog and the
// repository are swapped atomically on reload, so handlers must read them
// through snapshot().
type GameHandler struct {
	sessions   *store.SessionStore
	configPath string
	// rebuild turns a freshly loaded config into a repository; the
	// composition root supplies it so this package stays unaware of
	// database wiring.
	rebuild func(cfg *config.LoadedConfig) storage.Repository

	mu      sync.RWMutex
	repo    storage.Repository
	catalog []game.Entity
}

// NewGameHandler creates a GameHandler serving games over the given catalog.
func NewGameHandler(sessions *store.SessionStore, repo storage.Repository, catalog []game.Entity, configPath string, rebuild func(*config.LoadedConfig) storage.Repository) *GameHandler {
	return &GameHandler{
		sessions:   sessions,
		configPath: configPath,
		rebuild:    rebuild,
		repo:       repo,
		catalog:    catalog,
	}
}

func (h *GameHandler) snapshot() (storage.Repository, []game.Entity) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.repo, h.catalog
}
