package engine

import "github.com/ericogr/guessdex/internal/game"

// Distribution counts the occurrences of each observed attribute value over
// a candidate set. Values are remembered in first-seen order so that every
// iteration over a distribution is deterministic; map iteration alone would
// make the selector's tie-break unstable.
//
// Unknown values are never counted. For multi-valued attributes an entity
// contributes to every value it holds, so the sum of counts may exceed the
// candidate-set size.
type Distribution struct {
	counts map[string]int
	order  []string
}

func newDistribution() *Distribution {
	return &Distribution{counts: make(map[string]int)}
}

func (d *Distribution) add(value string) {
	if value == game.Unknown || value == "" {
		return
	}
	if _, seen := d.counts[value]; !seen {
		d.order = append(d.order, value)
	}
	d.counts[value]++
}

// Count returns the number of candidates holding the given value.
func (d *Distribution) Count(value string) int { return d.counts[value] }

// Values returns the distinct observed values in first-seen order.
func (d *Distribution) Values() []string { return d.order }

// Len returns the number of distinct observed values.
func (d *Distribution) Len() int { return len(d.order) }

func categoryDistribution(candidates []game.Entity) *Distribution {
	d := newDistribution()
	for i := range candidates {
		for _, c := range candidates[i].Categories {
			d.add(c)
		}
	}
	return d
}

func colorDistribution(candidates []game.Entity) *Distribution {
	d := newDistribution()
	for i := range candidates {
		d.add(candidates[i].PrimaryColor)
	}
	return d
}

func sizeDistribution(candidates []game.Entity) *Distribution {
	d := newDistribution()
	for i := range candidates {
		d.add(candidates[i].SizeClass)
	}
	return d
}

func massDistribution(candidates []game.Entity) *Distribution {
	d := newDistribution()
	for i := range candidates {
		d.add(candidates[i].MassClass)
	}
	return d
}

func advanceDistribution(candidates []game.Entity) *Distribution {
	d := newDistribution()
	for i := range candidates {
		d.add(formatBool(candidates[i].CanAdvance))
	}
	return d
}
