package steps

import (
	"errors"
	"testing"

	"github.com/tatianab/doll-chores/internal/models"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	want := []models.StepKey{
		models.StepNightStart,
		models.StepGetTasks,
		models.StepListItems,
		models.StepGiveDollItems,
		models.StepNightEnd,
		models.StepDollAttemptsChores,
		models.StepPlayerMakesDinner,
		models.StepWitchGivesBoons,
		models.StepDayEnd,
		models.StepWin,
	}
	got := s.Steps()
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("step[%d] = %q, want %q", i, got[i].Key, key)
		}
		if got[i].Label == "" || got[i].ContinueText == "" || got[i].Narrative == "" {
			t.Errorf("step %q is missing display text", key)
		}
	}
	if !got[3].Interactive {
		t.Error("giveDollItems should be interactive")
	}
	if !s.HasTerminal() {
		t.Error("expected a terminal step")
	}
	if s.Current().Key != models.StepNightStart {
		t.Errorf("expected to start at nightStart, got %q", s.Current().Key)
	}
}

func TestAdvanceWrapsOverRegularSteps(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	for i := 0; i < 8; i++ {
		s.Advance(false)
	}
	if s.Current().Key != models.StepDayEnd {
		t.Fatalf("expected dayEnd, got %q", s.Current().Key)
	}

	s.Advance(false)
	if s.Index() != 0 {
		t.Errorf("expected wrap to index 0 skipping win, got %d (%q)", s.Index(), s.Current().Key)
	}
}

func TestAdvanceToTerminal(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	s.Advance(false)
	s.Advance(true)
	if !s.AtTerminal() || s.Current().Key != models.StepWin {
		t.Fatalf("expected win, got %q", s.Current().Key)
	}

	s.Advance(true)
	if s.Index() != 0 {
		t.Errorf("expected wrap to 0 after win, got %d", s.Index())
	}
}

func TestRetreat(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	s.Retreat()
	if s.Current().Key != models.StepDayEnd {
		t.Errorf("retreat from 0 should land on dayEnd, got %q", s.Current().Key)
	}

	s.Advance(true)
	s.Retreat()
	if s.Current().Key != models.StepDayEnd {
		t.Errorf("retreat from win should land on dayEnd, got %q", s.Current().Key)
	}

	s.Advance(false)
	s.Advance(false)
	s.Retreat()
	if s.Index() != 0 {
		t.Errorf("expected index 0, got %d", s.Index())
	}
}

func TestNoTerminal(t *testing.T) {
	s, err := New([]models.GameStep{{Key: "a"}, {Key: "b"}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	s.Advance(true)
	if s.Current().Key != "b" {
		t.Errorf("without a terminal step, advance should move on; got %q", s.Current().Key)
	}
	s.Advance(true)
	if s.Current().Key != "a" {
		t.Errorf("expected wrap to a, got %q", s.Current().Key)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		steps   []models.GameStep
		wantErr error
	}{
		{name: "empty", steps: nil, wantErr: ErrNoSteps},
		{name: "only terminal", steps: []models.GameStep{{Key: "win", Terminal: true}}, wantErr: ErrNoSteps},
		{name: "duplicate", steps: []models.GameStep{{Key: "a"}, {Key: "a"}}, wantErr: ErrDuplicateStep},
		{
			name:    "terminal not last",
			steps:   []models.GameStep{{Key: "win", Terminal: true}, {Key: "a"}},
			wantErr: ErrMisplacedTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.steps); !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
