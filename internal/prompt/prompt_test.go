package prompt

import (
	"strings"
	"testing"

	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/game"
)

func TestQuestionWording(t *testing.T) {
	cases := []struct {
		attr  engine.Attribute
		value string
		want  string
	}{
		{engine.AttributeCategory, "fire", "Is your creature a fire type?"},
		{engine.AttributeColor, "red", "Is your creature mostly red?"},
		{engine.AttributeSizeClass, game.SizeSmall, "Is your creature small (under 0.70m)?"},
		{engine.AttributeSizeClass, game.SizeLarge, "Is your creature large (over 1.50m)?"},
		{engine.AttributeMassClass, game.MassLight, "Is your creature light (under 9.90kg)?"},
		{engine.AttributeMassClass, game.MassHeavy, "Is your creature heavy (over 56.25kg)?"},
		{engine.AttributeCanAdvance, engine.ValueFalse, "Is your creature already in its final form?"},
		{engine.AttributeCanAdvance, engine.ValueTrue, "Can your creature still evolve into something else?"},
	}
	for _, c := range cases {
		if got := Question(c.attr, c.value); got != c.want {
			t.Errorf("Question(%s, %s) = %q, want %q", c.attr, c.value, got, c.want)
		}
	}
}

func TestOutcomeRendering(t *testing.T) {
	guess := engine.Outcome{Kind: engine.OutcomeFinalGuess, EntityName: "Aquarion"}
	if got := Outcome(guess); got != "Is it Aquarion?" {
		t.Errorf("final guess text = %q", got)
	}
	errOut := engine.Outcome{Kind: engine.OutcomeError}
	if got := Outcome(errOut); !strings.Contains(got, "can't find") {
		t.Errorf("error text = %q", got)
	}
	q := engine.Outcome{Kind: engine.OutcomeQuestion, Attribute: engine.AttributeColor, Value: "blue"}
	if got := Outcome(q); got != "Is your creature mostly blue?" {
		t.Errorf("question text = %q", got)
	}
}
