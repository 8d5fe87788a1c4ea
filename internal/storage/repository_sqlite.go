package storage

import (
	"fmt"
	"strings"

	"github.com/ericogr/guessdex/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase entity name -> config definition. The
	// config is the source of truth for every gameplay attribute.
	configByName map[string]game.Entity
}

func NewSQLiteRepository(db *gorm.DB, configEntities []game.Entity) Repository {
	m := make(map[string]game.Entity, len(configEntities))
	for _, e := range configEntities {
		m[strings.ToLower(e.Name)] = e
	}
	return &sqliteRepository{db: db, configByName: m}
}

// mergeConfig overlays the config-sourced attributes onto a persisted row.
func (r *sqliteRepository) mergeConfig(e *game.Entity) {
	conf, ok := r.configByName[strings.ToLower(e.Name)]
	if !ok {
		return
	}
	e.Categories = conf.Categories
	e.Height = conf.Height
	e.Weight = conf.Weight
	e.Visual = conf.Visual
	e.Chain = conf.Chain
	e.SizeClass = conf.SizeClass
	e.MassClass = conf.MassClass
	e.PrimaryColor = conf.PrimaryColor
	e.CanAdvance = conf.CanAdvance
}

func (r *sqliteRepository) GetEntities() ([]game.Entity, error) {
	var entities []game.Entity
	if err := r.db.Order("catalog_id").Find(&entities).Error; err != nil {
		return nil, err
	}
	for i := range entities {
		r.mergeConfig(&entities[i])
	}
	return entities, nil
}

func (r *sqliteRepository) RecordGameResult(entityName string, guessed bool) error {
	updates := map[string]interface{}{
		"games_played": gorm.Expr("games_played + 1"),
	}
	if guessed {
		updates["games_guessed"] = gorm.Expr("games_guessed + 1")
	}
	tx := r.db.Model(&game.Entity{}).
		Where("LOWER(name) = ?", strings.ToLower(entityName)).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("unknown entity '%s'", entityName)
	}
	return nil
}

func (r *sqliteRepository) GetTopEntities(limit int) ([]game.Entity, error) {
	var entities []game.Entity
	err := r.db.
		Where("games_played > 0").
		Order("games_guessed DESC, games_played DESC, catalog_id").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	for i := range entities {
		r.mergeConfig(&entities[i])
	}
	return entities, nil
}
