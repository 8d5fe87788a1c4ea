package game

import (
	"gorm.io/gorm"
)

// Size and mass class values produced by Derive. "unknown" marks entities
// whose raw measurement is missing; unknown values never become questions.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"

	MassLight  = "light"
	MassMedium = "medium"
	MassHeavy  = "heavy"

	Unknown = "unknown"
)

// VisualAttributes is the optional nested block in the catalog file that
// holds appearance data extracted by the offline tagging tooling.
type VisualAttributes struct {
	PrimaryColor string `json:"primary_color"`
}

type Entity struct {
	gorm.Model
	// CatalogID is the stable identifier from the catalog file. It is the
	// id referenced by progression chains and must be unique.
	CatalogID int    `json:"id" gorm:"column:catalog_id;uniqueIndex"`
	Name      string `json:"name"`
	// The following fields come from the catalog config file and are the
	// single source of truth for gameplay. They are intentionally NOT
	// persisted (`gorm:"-"`); the database only tracks identity and
	// aggregate play counters.
	Categories []string          `json:"categories" gorm:"-"`
	Height     *float64          `json:"height,omitempty" gorm:"-"`
	Weight     *float64          `json:"weight,omitempty" gorm:"-"`
	Visual     *VisualAttributes `json:"visual_attributes,omitempty" gorm:"-"`
	// Chain is the ordered progression chain of catalog ids this entity
	// belongs to (first form to final form). Empty for standalone entities.
	Chain []int `json:"chain,omitempty" gorm:"-"`

	// Derived attributes, filled by Derive from the raw fields above.
	SizeClass    string `json:"size_class" gorm:"-"`
	MassClass    string `json:"mass_class" gorm:"-"`
	PrimaryColor string `json:"primary_color" gorm:"-"`
	CanAdvance   bool   `json:"can_advance" gorm:"-"`

	// Aggregate counters updated when a finished game reports its result.
	GamesPlayed  int `json:"games_played"`
	GamesGuessed int `json:"games_guessed"`
}

// TableName keeps the persisted table name explicit rather than relying on
// GORM pluralization.
func (Entity) TableName() string { return "catalog_entities" }
