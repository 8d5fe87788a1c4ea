package game

import "testing"

func fp(v float64) *float64 { return &v }

func TestSizeClassBoundaries(t *testing.T) {
	cases := []struct {
		height float64
		want   string
	}{
		{0.3, SizeSmall},
		{0.70, SizeSmall}, // boundary belongs to the lower class
		{0.71, SizeMedium},
		{1.50, SizeMedium},
		{1.51, SizeLarge},
		{8.8, SizeLarge},
	}
	for _, c := range cases {
		if got := SizeClassFor(c.height); got != c.want {
			t.Errorf("SizeClassFor(%v) = %q, want %q", c.height, got, c.want)
		}
	}
}

func TestMassClassBoundaries(t *testing.T) {
	cases := []struct {
		weight float64
		want   string
	}{
		{1.0, MassLight},
		{9.90, MassLight},
		{9.91, MassMedium},
		{56.25, MassMedium},
		{56.26, MassHeavy},
		{460.0, MassHeavy},
	}
	for _, c := range cases {
		if got := MassClassFor(c.weight); got != c.want {
			t.Errorf("MassClassFor(%v) = %q, want %q", c.weight, got, c.want)
		}
	}
}

func TestCanAdvanceIn(t *testing.T) {
	chain := []int{1, 2, 3}
	cases := []struct {
		id    int
		chain []int
		want  bool
	}{
		{1, chain, true},
		{2, chain, true},
		{3, chain, false}, // last element is terminal
		{9, chain, false}, // id not in its declared chain
		{1, nil, false},
		{1, []int{}, false},
		{5, []int{5}, false}, // single-element chain is terminal
	}
	for _, c := range cases {
		if got := CanAdvanceIn(c.chain, c.id); got != c.want {
			t.Errorf("CanAdvanceIn(%v, %d) = %v, want %v", c.chain, c.id, got, c.want)
		}
	}
}

func TestDeriveDefaults(t *testing.T) {
	e := Derive(Entity{CatalogID: 1, Name: "Blank"})
	if e.PrimaryColor != Unknown {
		t.Errorf("missing visual block: PrimaryColor = %q, want %q", e.PrimaryColor, Unknown)
	}
	if e.SizeClass != Unknown {
		t.Errorf("missing height: SizeClass = %q, want %q", e.SizeClass, Unknown)
	}
	if e.MassClass != Unknown {
		t.Errorf("missing weight: MassClass = %q, want %q", e.MassClass, Unknown)
	}
	if e.CanAdvance {
		t.Error("missing chain: CanAdvance = true, want false")
	}

	blank := Derive(Entity{CatalogID: 2, Visual: &VisualAttributes{PrimaryColor: "  "}})
	if blank.PrimaryColor != Unknown {
		t.Errorf("blank color: PrimaryColor = %q, want %q", blank.PrimaryColor, Unknown)
	}
}

func TestDeriveNormalizesColor(t *testing.T) {
	e := Derive(Entity{CatalogID: 1, Visual: &VisualAttributes{PrimaryColor: " Red "}})
	if e.PrimaryColor != "red" {
		t.Errorf("PrimaryColor = %q, want %q", e.PrimaryColor, "red")
	}
}

func TestDeriveIdempotent(t *testing.T) {
	raw := Entity{
		CatalogID:  4,
		Name:       "Cindercub",
		Categories: []string{"fire"},
		Height:     fp(0.6),
		Weight:     fp(8.5),
		Visual:     &VisualAttributes{PrimaryColor: "orange"},
		Chain:      []int{4, 5, 6},
	}
	once := Derive(raw)
	twice := Derive(once)
	if once.SizeClass != twice.SizeClass || once.MassClass != twice.MassClass ||
		once.PrimaryColor != twice.PrimaryColor || once.CanAdvance != twice.CanAdvance {
		t.Errorf("Derive is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestHasCategory(t *testing.T) {
	e := Entity{Categories: []string{"water", "flying"}}
	if !e.HasCategory("flying") {
		t.Error("expected HasCategory(flying) to be true")
	}
	if e.HasCategory("fire") {
		t.Error("expected HasCategory(fire) to be false")
	}
}
