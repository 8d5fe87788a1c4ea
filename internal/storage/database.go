package storage

import (
	"github.com/ericogr/guessdex/internal/game"
	"github.com/ericogr/guessdex/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, migrates the schema and seeds
// the catalog table from config on first run. Existing rows are kept so the
// aggregate counters survive restarts and config edits.
func OpenAndMigrate(dataSourceName string, entitiesFromConfig []game.Entity) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Entity{}); err != nil {
		return nil, err
	}
	SeedCatalog(db, entitiesFromConfig)
	return db, nil
}

// SeedCatalog inserts catalog rows that are not present yet. Rows are keyed
// by catalog id; attribute changes in the config never require reseeding
// because attributes are not persisted. Called again after a catalog reload
// so newly added creatures get their counter rows.
func SeedCatalog(db *gorm.DB, entitiesFromConfig []game.Entity) {
	var existing []game.Entity
	if err := db.Select("catalog_id").Find(&existing).Error; err != nil {
		logging.Error("failed to inspect catalog table", err, nil)
		return
	}
	present := make(map[int]struct{}, len(existing))
	for _, e := range existing {
		present[e.CatalogID] = struct{}{}
	}

	missing := make([]game.Entity, 0)
	for _, e := range entitiesFromConfig {
		if _, ok := present[e.CatalogID]; ok {
			continue
		}
		missing = append(missing, game.Entity{CatalogID: e.CatalogID, Name: e.Name})
	}
	if len(missing) == 0 {
		return
	}
	if err := db.Create(&missing).Error; err != nil {
		logging.Error("failed to seed catalog entities", err, nil)
		return
	}
	logging.Info("catalog entities seeded", logging.Fields{"count": len(missing)})
}
