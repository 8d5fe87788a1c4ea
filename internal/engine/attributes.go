package engine

import (
	"strconv"

	"github.com/ericogr/guessdex/internal/game"
)

// Attribute identifies one of the question dimensions the engine can ask
// about. Using a dedicated type instead of plain strings makes the registry
// closed and the filter rules exhaustiveness-checkable.
type Attribute string

const (
	AttributeCategory   Attribute = "category"
	AttributeColor      Attribute = "primary_color"
	AttributeSizeClass  Attribute = "size_class"
	AttributeMassClass  Attribute = "mass_class"
	AttributeCanAdvance Attribute = "can_advance"

	// Terminal markers returned in outcomes. They are not filters; applying
	// an answer against them is a no-op.
	AttributeFinalGuess Attribute = "final_guess"
	AttributeError      Attribute = "error"
)

// Boolean attribute values share the string value domain of the categorical
// attributes so asked-set keys and outcomes stay uniform.
const (
	ValueTrue  = "true"
	ValueFalse = "false"
)

// attributeSpec bundles everything the selector needs to know about one
// attribute: how to count its values over a candidate set, how an entity
// matches a concrete value, and which values are never worth asking about.
type attributeSpec struct {
	attr         Attribute
	distribution func([]game.Entity) *Distribution
	matches      func(*game.Entity, string) bool
	skipValue    func(string) bool
}

// registry lists the askable attributes in their fixed evaluation order.
// That order is the first-level tie-break when two questions score equally.
var registry = []attributeSpec{
	{
		attr:         AttributeCategory,
		distribution: categoryDistribution,
		matches: func(e *game.Entity, value string) bool {
			return e.HasCategory(value)
		},
	},
	{
		attr:         AttributeColor,
		distribution: colorDistribution,
		matches: func(e *game.Entity, value string) bool {
			return e.PrimaryColor == value
		},
	},
	{
		attr:         AttributeSizeClass,
		distribution: sizeDistribution,
		matches: func(e *game.Entity, value string) bool {
			return e.SizeClass == value
		},
		skipValue: func(value string) bool { return value == game.SizeMedium },
	},
	{
		attr:         AttributeMassClass,
		distribution: massDistribution,
		matches: func(e *game.Entity, value string) bool {
			return e.MassClass == value
		},
		skipValue: func(value string) bool { return value == game.MassMedium },
	},
	{
		attr:         AttributeCanAdvance,
		distribution: advanceDistribution,
		matches:      matchesAdvance,
	},
}

// matchesAdvance handles both framings of the progression question. The
// value encodes which framing was asked: "false" asks whether the entity is
// already in its final form, "true" whether it can still advance.
func matchesAdvance(e *game.Entity, value string) bool {
	isFinal := !e.CanAdvance
	if value == ValueFalse {
		return isFinal
	}
	return !isFinal
}

func specFor(attr Attribute) (attributeSpec, bool) {
	for _, spec := range registry {
		if spec.attr == attr {
			return spec, true
		}
	}
	return attributeSpec{}, false
}

func formatBool(b bool) string { return strconv.FormatBool(b) }
