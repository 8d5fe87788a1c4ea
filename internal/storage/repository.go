package storage

import "github.com/ericogr/guessdex/internal/game"

// Repository persists catalog identity and aggregate play counters. The
// gameplay attributes themselves always come from the catalog config file;
// per-game state is never stored.
type Repository interface {
	// GetEntities returns the full catalog with config-sourced attributes
	// merged over the persisted rows, in catalog-id order.
	GetEntities() ([]game.Entity, error)
	// RecordGameResult bumps the play counter for the named entity, and the
	// guessed counter when the final guess was confirmed.
	RecordGameResult(entityName string, guessed bool) error
	// GetTopEntities returns up to limit entities ordered by times guessed.
	GetTopEntities(limit int) ([]game.Entity, error)
}
