package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ericogr/guessdex/internal/game"
)

// OutcomeKind discriminates the three possible results of a turn.
type OutcomeKind string

const (
	OutcomeQuestion   OutcomeKind = "question"
	OutcomeFinalGuess OutcomeKind = "final_guess"
	OutcomeError      OutcomeKind = "error"
)

// Outcome is what NextQuestion returns each turn: either the next question
// to ask (attribute + value), a final guess carrying the entity name, or an
// error when no candidate is left.
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	Attribute  Attribute   `json:"attribute,omitempty"`
	Value      string      `json:"value,omitempty"`
	EntityName string      `json:"entity_name,omitempty"`
}

var (
	ErrSessionTerminal   = errors.New("session already reached a terminal outcome")
	ErrQuestionNotIssued = errors.New("answer does not match a question issued by this session")
)

// TraceFunc receives engine decision events. It is purely observational:
// the engine behaves identically with or without a trace hook installed.
type TraceFunc func(event string, fields map[string]any)

// Session holds the state of one game: the shrinking candidate set and the
// questions already asked. Each game must own its own Session; there is no
// shared instance.
type Session struct {
	candidates []game.Entity
	asked      map[askedKey]struct{}
	terminal   bool
	trace      TraceFunc
}

type askedKey struct {
	attr  Attribute
	value string
}

// NewSession starts a game over the given catalog. The catalog slice is
// copied so later answers never mutate the caller's data.
func NewSession(catalog []game.Entity) *Session {
	candidates := make([]game.Entity, len(catalog))
	copy(candidates, catalog)
	return &Session{
		candidates: candidates,
		asked:      make(map[askedKey]struct{}),
	}
}

// SetTrace installs an observability hook for engine decisions.
func (s *Session) SetTrace(fn TraceFunc) { s.trace = fn }

func (s *Session) emit(event string, fields map[string]any) {
	if s.trace != nil {
		s.trace(event, fields)
	}
}

// RemainingCount returns the number of candidates still consistent with all
// answers given so far.
func (s *Session) RemainingCount() int { return len(s.candidates) }

// RemainingNames returns the names of the remaining candidates in catalog
// order.
func (s *Session) RemainingNames() []string {
	names := make([]string, len(s.candidates))
	for i := range s.candidates {
		names[i] = s.candidates[i].Name
	}
	return names
}

// Terminal reports whether the session has produced a final guess or an
// error outcome.
func (s *Session) Terminal() bool { return s.terminal }

type scoredQuestion struct {
	score float64
	attr  Attribute
	value string
}

// evaluateQuestions ranks every eligible (attribute, value) question over
// the current candidate set, best split first. Ties keep registry order,
// then first-seen value order.
func (s *Session) evaluateQuestions() []scoredQuestion {
	total := len(s.candidates)
	var questions []scoredQuestion
	for _, spec := range registry {
		dist := spec.distribution(s.candidates)
		if dist.Len() < 2 {
			s.emit("attribute_skipped", map[string]any{
				"attribute":       string(spec.attr),
				"distinct_values": dist.Len(),
			})
			continue
		}
		for _, value := range dist.Values() {
			if spec.skipValue != nil && spec.skipValue(value) {
				continue
			}
			if _, done := s.asked[askedKey{spec.attr, value}]; done {
				continue
			}
			questions = append(questions, scoredQuestion{
				score: Score(dist.Count(value), total),
				attr:  spec.attr,
				value: value,
			})
		}
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].score < questions[j].score
	})
	return questions
}

// NextQuestion runs one turn of the selector. It returns the single most
// discriminating unasked question, or a terminal outcome when the candidate
// set has shrunk to one (final guess) or zero (error). When no eligible
// question exists the engine falls back to guessing the first remaining
// candidate rather than failing.
func (s *Session) NextQuestion() Outcome {
	switch len(s.candidates) {
	case 0:
		s.terminal = true
		s.emit("no_candidates_left", nil)
		return Outcome{Kind: OutcomeError, Attribute: AttributeError}
	case 1:
		return s.finalGuess()
	}

	questions := s.evaluateQuestions()
	if len(questions) == 0 {
		s.emit("no_eligible_question", map[string]any{"remaining": len(s.candidates)})
		return s.finalGuess()
	}

	best := questions[0]
	s.asked[askedKey{best.attr, best.value}] = struct{}{}
	s.emit("question_selected", map[string]any{
		"attribute": string(best.attr),
		"value":     best.value,
		"score":     best.score,
		"remaining": len(s.candidates),
	})
	return Outcome{Kind: OutcomeQuestion, Attribute: best.attr, Value: best.value}
}

func (s *Session) finalGuess() Outcome {
	s.terminal = true
	name := s.candidates[0].Name
	s.emit("final_guess", map[string]any{"entity": name})
	return Outcome{Kind: OutcomeFinalGuess, Attribute: AttributeFinalGuess, Value: name, EntityName: name}
}

// ApplyAnswer narrows the candidate set with the player's answer to a
// previously issued question. Terminal markers are accepted and ignored.
// Calling it with a pair this session never asked, or after a real filter
// once the session is terminal, is a caller bug and returns an error.
func (s *Session) ApplyAnswer(attr Attribute, value string, answer bool) error {
	if attr == AttributeError || attr == AttributeFinalGuess {
		return nil
	}
	if s.terminal {
		return ErrSessionTerminal
	}
	if _, issued := s.asked[askedKey{attr, value}]; !issued {
		return fmt.Errorf("%w: %s=%s", ErrQuestionNotIssued, attr, value)
	}
	spec, ok := specFor(attr)
	if !ok {
		return fmt.Errorf("%w: %s=%s", ErrQuestionNotIssued, attr, value)
	}

	before := len(s.candidates)
	kept := make([]game.Entity, 0, before)
	for i := range s.candidates {
		if spec.matches(&s.candidates[i], value) == answer {
			kept = append(kept, s.candidates[i])
		}
	}
	s.candidates = kept
	s.emit("candidates_filtered", map[string]any{
		"attribute": string(attr),
		"value":     value,
		"answer":    answer,
		"before":    before,
		"after":     len(kept),
	})
	return nil
}
