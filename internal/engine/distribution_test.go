package engine

import (
	"reflect"
	"testing"

	"github.com/ericogr/guessdex/internal/game"
)

func TestCategoryDistributionMultiValued(t *testing.T) {
	candidates := []game.Entity{
		{Name: "A", Categories: []string{"fire", "flying"}},
		{Name: "B", Categories: []string{"water"}},
		{Name: "C", Categories: []string{"water", "flying"}},
	}
	d := categoryDistribution(candidates)

	if got := d.Count("flying"); got != 2 {
		t.Errorf("Count(flying) = %d, want 2", got)
	}
	if got := d.Count("water"); got != 2 {
		t.Errorf("Count(water) = %d, want 2", got)
	}
	// An entity counts once per category it holds, so the sum of counts
	// exceeds the candidate-set size here.
	sum := 0
	for _, v := range d.Values() {
		sum += d.Count(v)
	}
	if sum != 5 {
		t.Errorf("sum of counts = %d, want 5", sum)
	}
	if want := []string{"fire", "flying", "water"}; !reflect.DeepEqual(d.Values(), want) {
		t.Errorf("Values() = %v, want first-seen order %v", d.Values(), want)
	}
}

func TestColorDistributionExcludesUnknown(t *testing.T) {
	candidates := []game.Entity{
		{Name: "A", PrimaryColor: "red"},
		{Name: "B", PrimaryColor: game.Unknown},
		{Name: "C", PrimaryColor: "red"},
		{Name: "D", PrimaryColor: "blue"},
	}
	d := colorDistribution(candidates)

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (unknown must not be counted)", d.Len())
	}
	if d.Count(game.Unknown) != 0 {
		t.Errorf("Count(unknown) = %d, want 0", d.Count(game.Unknown))
	}
	if d.Count("red") != 2 || d.Count("blue") != 1 {
		t.Errorf("counts = red:%d blue:%d, want red:2 blue:1", d.Count("red"), d.Count("blue"))
	}
}

func TestAdvanceDistribution(t *testing.T) {
	candidates := []game.Entity{
		{Name: "A", CanAdvance: true},
		{Name: "B", CanAdvance: false},
		{Name: "C", CanAdvance: true},
	}
	d := advanceDistribution(candidates)
	if d.Count(ValueTrue) != 2 || d.Count(ValueFalse) != 1 {
		t.Errorf("counts = true:%d false:%d, want true:2 false:1", d.Count(ValueTrue), d.Count(ValueFalse))
	}
}

func TestSizeDistributionOrderIsFirstSeen(t *testing.T) {
	candidates := []game.Entity{
		{Name: "A", SizeClass: game.SizeLarge},
		{Name: "B", SizeClass: game.SizeSmall},
		{Name: "C", SizeClass: game.SizeLarge},
	}
	d := sizeDistribution(candidates)
	if want := []string{game.SizeLarge, game.SizeSmall}; !reflect.DeepEqual(d.Values(), want) {
		t.Errorf("Values() = %v, want %v", d.Values(), want)
	}
}
