package engine

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/dice"
	"github.com/tatianab/doll-chores/internal/models"
	"github.com/tatianab/doll-chores/internal/night"
	"github.com/tatianab/doll-chores/internal/progress"
	"github.com/tatianab/doll-chores/internal/resolve"
	"github.com/tatianab/doll-chores/internal/steps"
)

// Options tune a Game. Zero values fall back to the package defaults.
type Options struct {
	MaxDollItems  int
	NightItems    int
	NightTasks    int
	VictoryPoints int

	Logger   *log.Logger
	Narrator Narrator
}

// Game is one play session: every piece of mutable state lives here and is
// changed only through its methods. A Game is not safe for concurrent use.
type Game struct {
	id       string
	catalog  *catalog.Catalog
	steps    *steps.Sequencer
	night    *night.Session
	tracker  *progress.Tracker
	rng      dice.Source
	logger   *log.Logger
	narrator Narrator

	nightItems int
	nightTasks int

	nights int
	// nil until the current night is resolved
	lastResults []models.TaskResult
	lastDelta   int
	recap       string

	// entry effects already run for the current night; once resolved the
	// assignment is locked until the next night is drawn
	resolved bool
	applied  bool
	// the win step has been shown once
	celebrated bool
}

// NewGame creates a session positioned on the first step with a freshly
// drawn night.
func NewGame(c *catalog.Catalog, seq *steps.Sequencer, rng dice.Source, opts Options) *Game {
	if opts.NightItems <= 0 {
		opts.NightItems = night.DefaultMaxItems
	}
	if opts.NightTasks <= 0 {
		opts.NightTasks = night.DefaultMaxTasks
	}
	if opts.Narrator == nil {
		opts.Narrator = StaticNarrator{}
	}

	id := uuid.NewString()
	base := opts.Logger
	if base == nil {
		base = log.New(io.Discard, "", 0)
	}

	g := &Game{
		id:         id,
		catalog:    c,
		steps:      seq,
		night:      night.NewSession(opts.MaxDollItems),
		tracker:    progress.NewTracker(opts.VictoryPoints),
		rng:        rng,
		logger:     log.New(base.Writer(), fmt.Sprintf("game %s ", id[:8]), base.Flags()),
		narrator:   opts.Narrator,
		nightItems: opts.NightItems,
		nightTasks: opts.NightTasks,
	}
	g.StartNight(g.nightItems, g.nightTasks)
	return g
}

func (g *Game) ID() string { return g.id }
func (g *Game) Catalog() *catalog.Catalog { return g.catalog }

// Night is the 1-based number of the current night.
func (g *Game) Night() int { return g.nights }

func (g *Game) CurrentStep() models.GameStep { return g.steps.Current() }
func (g *Game) StepIndex() int { return g.steps.Index() }
func (g *Game) Steps() []models.GameStep { return g.steps.Steps() }

func (g *Game) AvailableItems() []models.Item { return g.night.AvailableItems() }
func (g *Game) NightlyTasks() []models.Task { return g.night.NightlyTasks() }
func (g *Game) DollItems() []models.Item { return g.night.Assigned() }
func (g *Game) MaxDollItems() int { return g.night.MaxDollItems() }
func (g *Game) AtCapacity() bool { return g.night.AtCapacity() }
func (g *Game) IsAssigned(itemID int) bool { return g.night.IsAssigned(itemID) }

// HighlightedTasks lists nightly tasks helped by at least one doll item.
func (g *Game) HighlightedTasks() []models.Task {
	return g.night.HighlightedTasks(g.catalog)
}

func (g *Game) SelectTask(taskID int) { g.night.SelectTask(taskID) }

func (g *Game) SelectedTask() (int, bool) { return g.night.SelectedTask() }

func (g *Game) ItemsForSelectedTask() []models.Item {
	return g.night.ItemsForSelectedTask(g.catalog)
}

// LastResults returns the latest resolution, or false when the current night
// has not been resolved.
func (g *Game) LastResults() ([]models.TaskResult, bool) {
	if g.lastResults == nil {
		return nil, false
	}
	return append([]models.TaskResult(nil), g.lastResults...), true
}

func (g *Game) LastDelta() int { return g.lastDelta }
func (g *Game) Recap() string { return g.recap }
func (g *Game) TotalPoints() int { return g.tracker.TotalPoints() }
func (g *Game) VictoryPoints() int { return g.tracker.VictoryPoints() }
func (g *Game) Progress() float64 { return g.tracker.Progress() }
func (g *Game) Victory() bool { return g.tracker.Victory() }

// Advance moves to the next step. The first advance after victory goes to
// the terminal step.
func (g *Game) Advance() {
	toWin := g.tracker.Victory() && !g.celebrated
	g.steps.Advance(toWin)
	if g.steps.AtTerminal() {
		g.celebrated = true
		g.logger.Printf("victory after %d nights with %d points", g.nights, g.tracker.TotalPoints())
	}
}

func (g *Game) Retreat() { g.steps.Retreat() }

// StartNight draws a new night and clears the assignment and last results.
func (g *Game) StartNight(maxItems, maxTasks int) {
	g.night.Start(g.rng, g.catalog, maxItems, maxTasks)
	g.nights++
	g.lastResults = nil
	g.lastDelta = 0
	g.recap = ""
	g.resolved = false
	g.applied = false
	g.logger.Printf("night %d: drew %d items and %d tasks",
		g.nights, len(g.night.AvailableItems()), len(g.night.NightlyTasks()))
}

// AssignmentLocked reports whether the current night has been resolved,
// after which the doll's items cannot change.
func (g *Game) AssignmentLocked() bool { return g.resolved }

// ToggleAssignment gives itemID to the doll or takes it back. It reports
// whether the assignment changed.
func (g *Game) ToggleAssignment(itemID int) bool {
	if g.resolved {
		g.logger.Printf("toggle item %d ignored: night %d already resolved", itemID, g.nights)
		return false
	}
	changed := g.night.Toggle(itemID)
	if !changed {
		g.logger.Printf("toggle item %d ignored (%d/%d assigned)",
			itemID, len(g.night.Assigned()), g.night.MaxDollItems())
	}
	return changed
}

// ResolveNightTasks rolls every nightly task and replaces the last results.
// The assignment stays locked until the next night starts.
func (g *Game) ResolveNightTasks() []models.TaskResult {
	g.lastResults = resolve.Resolve(g.rng, g.catalog, g.night.NightlyTasks(), g.night.Assigned())
	g.lastDelta = 0
	g.resolved = true
	g.logger.Printf("night %d: resolved %d tasks with %d doll items",
		g.nights, len(g.lastResults), len(g.night.Assigned()))
	return append([]models.TaskResult(nil), g.lastResults...)
}

// ApplyNightProgress scores the last results into the running total and
// returns the points added. Without results it does nothing.
func (g *Game) ApplyNightProgress() int {
	if g.lastResults == nil {
		return 0
	}
	delta := g.tracker.Apply(g.lastResults)
	g.lastDelta = delta
	g.applied = true
	g.logger.Printf("night %d: +%d points, total %d (%.2f%%)",
		g.nights, delta, g.tracker.TotalPoints(), g.tracker.Progress())
	return delta
}

// Continue advances one step and runs the effect of the step entered:
// a new night at nightStart, resolution at dollAttemptsChores, and scoring
// plus the morning recap at witchGivesBoons. Each effect runs at most once
// per night, so stepping back and forth never repeats one.
// A new night is drawn only after the current one has been scored.
func (g *Game) Continue(ctx context.Context) {
	g.Advance()

	switch g.steps.Current().Key {
	case models.StepNightStart:
		if g.applied {
			g.StartNight(g.nightItems, g.nightTasks)
		}
	case models.StepDollAttemptsChores:
		if !g.resolved {
			g.ResolveNightTasks()
		}
	case models.StepWitchGivesBoons:
		if g.resolved && !g.applied {
			g.ApplyNightProgress()
			g.recap = g.narrate(ctx)
		}
	}
}

func (g *Game) narrate(ctx context.Context) string {
	report := g.report()
	text, err := g.narrator.Recap(ctx, report)
	if err != nil {
		g.logger.Printf("Warning: narrator failed, using static recap: %v", err)
		text, _ = StaticNarrator{}.Recap(ctx, report)
	}
	return text
}

func (g *Game) report() NightReport {
	r := NightReport{
		Night:         g.nights,
		Delta:         g.lastDelta,
		TotalPoints:   g.tracker.TotalPoints(),
		VictoryPoints: g.tracker.VictoryPoints(),
		Progress:      g.tracker.Progress(),
		Victory:       g.tracker.Victory(),
	}
	for _, it := range g.night.Assigned() {
		r.DollItems = append(r.DollItems, it.Name)
	}
	for _, res := range g.lastResults {
		name := fmt.Sprintf("task %d", res.TaskID)
		if t, ok := g.catalog.Task(res.TaskID); ok {
			name = t.Name
		}
		r.Lines = append(r.Lines, RecapLine{Task: name, Result: res})
	}
	return r
}
