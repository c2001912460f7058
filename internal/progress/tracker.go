// Package progress accumulates night scores toward victory.
package progress

import "github.com/tatianab/doll-chores/internal/models"

// DefaultVictoryPoints is the score at which the player wins.
const DefaultVictoryPoints = 70

// Points is the score an outcome contributes.
func Points(o models.Outcome) int {
	switch o {
	case models.OutcomeSuccess:
		return 2
	case models.OutcomePartial:
		return 1
	default:
		return 0
	}
}

// Tracker holds the running total. The total never decreases.
type Tracker struct {
	victoryPoints int
	totalPoints   int
}

// NewTracker returns a tracker with the given threshold, or
// DefaultVictoryPoints when it is not positive.
func NewTracker(victoryPoints int) *Tracker {
	if victoryPoints <= 0 {
		victoryPoints = DefaultVictoryPoints
	}
	return &Tracker{victoryPoints: victoryPoints}
}

// Apply adds the score of results to the total and returns the delta.
func (t *Tracker) Apply(results []models.TaskResult) int {
	delta := 0
	for _, r := range results {
		delta += Points(r.Outcome)
	}
	t.totalPoints += delta
	return delta
}

func (t *Tracker) TotalPoints() int   { return t.totalPoints }
func (t *Tracker) VictoryPoints() int { return t.victoryPoints }

// Progress is min(100, 100*total/victory).
func (t *Tracker) Progress() float64 {
	p := 100 * float64(t.totalPoints) / float64(t.victoryPoints)
	if p > 100 {
		return 100
	}
	return p
}

// Victory reports whether progress has saturated at 100.
func (t *Tracker) Victory() bool {
	return t.totalPoints >= t.victoryPoints
}
