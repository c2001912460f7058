// Package steps sequences the fixed phases of a night and day.
//
// Advance wraps from the last regular step back to the first and never lands
// on the terminal step unless the caller asks for it. Once on the terminal
// step, the next Advance wraps to index 0. Retreat wraps over the regular
// steps only; retreating from the terminal step lands on the last regular one.
package steps

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/tatianab/doll-chores/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed steps.yaml
var defaultSteps []byte

var (
	ErrNoSteps           = errors.New("no regular steps")
	ErrDuplicateStep     = errors.New("duplicate step key")
	ErrMisplacedTerminal = errors.New("terminal step must be the single last step")
)

// Sequencer tracks the current phase. The step list is immutable.
type Sequencer struct {
	steps   []models.GameStep
	regular int // steps[:regular] are the cyclic phases
	index   int
}

// New validates steps and starts at index 0.
func New(steps []models.GameStep) (*Sequencer, error) {
	seen := make(map[models.StepKey]bool, len(steps))
	regular := len(steps)
	for i, s := range steps {
		if seen[s.Key] {
			return nil, fmt.Errorf("step %q: %w", s.Key, ErrDuplicateStep)
		}
		seen[s.Key] = true
		if s.Terminal {
			if i != len(steps)-1 {
				return nil, fmt.Errorf("step %q: %w", s.Key, ErrMisplacedTerminal)
			}
			regular = i
		}
	}
	if regular == 0 {
		return nil, ErrNoSteps
	}
	return &Sequencer{
		steps:   append([]models.GameStep(nil), steps...),
		regular: regular,
	}, nil
}

// Load parses a YAML list of steps.
func Load(data []byte) (*Sequencer, error) {
	var list []models.GameStep
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse steps: %w", err)
	}
	return New(list)
}

// Default returns the embedded canonical phase list.
func Default() (*Sequencer, error) {
	return Load(defaultSteps)
}

// Current returns the active step.
func (s *Sequencer) Current() models.GameStep { return s.steps[s.index] }

// Index is the position of the active step in Steps.
func (s *Sequencer) Index() int { return s.index }

// Steps returns a copy of the full list, terminal step included.
func (s *Sequencer) Steps() []models.GameStep {
	return append([]models.GameStep(nil), s.steps...)
}

// HasTerminal reports whether a win step is configured.
func (s *Sequencer) HasTerminal() bool { return s.regular < len(s.steps) }

// AtTerminal reports whether the win step is active.
func (s *Sequencer) AtTerminal() bool { return s.index >= s.regular }

// Advance moves to the next phase. With toTerminal set and a terminal step
// configured, it moves straight to the terminal step instead.
func (s *Sequencer) Advance(toTerminal bool) {
	switch {
	case s.AtTerminal():
		s.index = 0
	case toTerminal && s.HasTerminal():
		s.index = s.regular
	default:
		s.index = (s.index + 1) % s.regular
	}
}

// Retreat moves to the previous regular phase, wrapping on underflow.
func (s *Sequencer) Retreat() {
	if s.AtTerminal() {
		s.index = s.regular - 1
		return
	}
	s.index = (s.index - 1 + s.regular) % s.regular
}
