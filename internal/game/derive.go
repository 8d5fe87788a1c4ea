package game

import "strings"

// Classification thresholds, chosen from a statistical analysis of the
// catalog so each bucket holds a useful share of entities. Boundaries are
// inclusive on the lower class.
const (
	SizeSmallMax  = 0.70 // meters
	SizeMediumMax = 1.50

	MassLightMax  = 9.90 // kilograms
	MassMediumMax = 56.25
)

// SizeClassFor buckets a linear measurement into small/medium/large.
func SizeClassFor(height float64) string {
	switch {
	case height <= SizeSmallMax:
		return SizeSmall
	case height <= SizeMediumMax:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// MassClassFor buckets a mass into light/medium/heavy.
func MassClassFor(weight float64) string {
	switch {
	case weight <= MassLightMax:
		return MassLight
	case weight <= MassMediumMax:
		return MassMedium
	default:
		return MassHeavy
	}
}

// CanAdvanceIn reports whether the entity identified by catalogID can still
// advance within the given progression chain, i.e. it appears in the chain
// and is not its last element. An id absent from its declared chain is
// treated as terminal rather than an error.
func CanAdvanceIn(chain []int, catalogID int) bool {
	for i, id := range chain {
		if id == catalogID {
			return i < len(chain)-1
		}
	}
	return false
}

// Derive computes the derived attributes of an entity from its raw fields.
// It is pure and total: missing or malformed raw data yields unknown/false
// instead of an error. Because only raw fields are read, re-deriving an
// already-derived entity produces the same result.
func Derive(e Entity) Entity {
	if e.Visual != nil && strings.TrimSpace(e.Visual.PrimaryColor) != "" {
		e.PrimaryColor = strings.ToLower(strings.TrimSpace(e.Visual.PrimaryColor))
	} else {
		e.PrimaryColor = Unknown
	}

	if e.Height != nil {
		e.SizeClass = SizeClassFor(*e.Height)
	} else {
		e.SizeClass = Unknown
	}

	if e.Weight != nil {
		e.MassClass = MassClassFor(*e.Weight)
	} else {
		e.MassClass = Unknown
	}

	e.CanAdvance = CanAdvanceIn(e.Chain, e.CatalogID)

	return e
}

// DeriveAll maps Derive over a full catalog, preserving order.
func DeriveAll(entities []Entity) []Entity {
	out := make([]Entity, len(entities))
	for i, e := range entities {
		out[i] = Derive(e)
	}
	return out
}

// HasCategory reports whether the entity holds the given category tag.
func (e *Entity) HasCategory(category string) bool {
	for _, c := range e.Categories {
		if c == category {
			return true
		}
	}
	return false
}
