// Package prompt turns engine question keys into the text shown to the
// player. The engine itself only deals in (attribute, value) pairs; all
// wording lives here so hosts can swap it without touching game logic.
package prompt

import (
	"fmt"

	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/game"
)

// Question renders the yes/no question for an (attribute, value) pair.
func Question(attr engine.Attribute, value string) string {
	switch attr {
	case engine.AttributeCategory:
		return fmt.Sprintf("Is your creature a %s type?", value)
	case engine.AttributeColor:
		return fmt.Sprintf("Is your creature mostly %s?", value)
	case engine.AttributeSizeClass:
		return sizeQuestion(value)
	case engine.AttributeMassClass:
		return massQuestion(value)
	case engine.AttributeCanAdvance:
		if value == engine.ValueFalse {
			return "Is your creature already in its final form?"
		}
		return "Can your creature still evolve into something else?"
	default:
		return fmt.Sprintf("Does your creature have %s = %s?", attr, value)
	}
}

// Threshold hints on the extreme buckets make the size and mass questions
// much easier to answer.
func sizeQuestion(value string) string {
	switch value {
	case game.SizeSmall:
		return fmt.Sprintf("Is your creature small (under %.2fm)?", game.SizeSmallMax)
	case game.SizeLarge:
		return fmt.Sprintf("Is your creature large (over %.2fm)?", game.SizeMediumMax)
	default:
		return fmt.Sprintf("Is your creature %s-sized?", value)
	}
}

func massQuestion(value string) string {
	switch value {
	case game.MassLight:
		return fmt.Sprintf("Is your creature light (under %.2fkg)?", game.MassLightMax)
	case game.MassHeavy:
		return fmt.Sprintf("Is your creature heavy (over %.2fkg)?", game.MassMediumMax)
	default:
		return fmt.Sprintf("Is your creature %s in weight?", value)
	}
}

// FinalGuess renders the closing guess.
func FinalGuess(entityName string) string {
	return fmt.Sprintf("Is it %s?", entityName)
}

// ErrorMessage is shown when no entity matches the answers given.
func ErrorMessage() string {
	return "I can't find any creature matching your answers!"
}

// Outcome renders whichever outcome the engine produced.
func Outcome(out engine.Outcome) string {
	switch out.Kind {
	case engine.OutcomeFinalGuess:
		return FinalGuess(out.EntityName)
	case engine.OutcomeError:
		return ErrorMessage()
	default:
		return Question(out.Attribute, out.Value)
	}
}
