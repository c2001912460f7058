package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/config"
	"github.com/tatianab/doll-chores/internal/engine"
	"github.com/tatianab/doll-chores/internal/models"
	"github.com/tatianab/doll-chores/internal/random"
	"github.com/tatianab/doll-chores/internal/steps"
)

const maxNights = 60

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	seq, err := steps.Default()
	if err != nil {
		log.Fatalf("Failed to load steps: %v", err)
	}
	rng, err := random.NewRand(cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	opts := engine.Options{
		MaxDollItems:  cfg.MaxDollItems,
		NightItems:    cfg.NightItems,
		NightTasks:    cfg.NightTasks,
		VictoryPoints: cfg.VictoryPoints,
		Logger:        log.New(os.Stderr, "", log.LstdFlags),
	}
	if cfg.GeminiAPIKey != "" {
		narrator, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create narrator: %v", err)
		}
		defer narrator.Close()
		opts.Narrator = narrator
	}

	game := engine.NewGame(cat, seq, rng, opts)
	fmt.Printf("--- Session %s ---\n\n", game.ID())

	for game.Night() <= maxNights {
		step := game.CurrentStep()

		switch step.Key {
		case models.StepGiveDollItems:
			for _, it := range pickItems(game) {
				game.ToggleAssignment(it.ID)
			}
			fmt.Printf("--- Night %d ---\n", game.Night())
			for _, it := range game.DollItems() {
				fmt.Printf("Doll carries: %s\n", it.Name)
			}
			for _, t := range game.HighlightedTasks() {
				fmt.Printf("Ready for: %s\n", t.Name)
			}

		case models.StepDollAttemptsChores:
			results, _ := game.LastResults()
			for _, r := range results {
				t, _ := cat.Task(r.TaskID)
				fmt.Printf("%-8s %2d+%d vs %2d  %s\n", r.Outcome, r.Roll, r.Bonus, r.Difficulty, t.Name)
			}

		case models.StepWitchGivesBoons:
			fmt.Printf("Recap: %s\n", game.Recap())
			fmt.Printf("Progress: %.2f%% (%d/%d)\n\n", game.Progress(), game.TotalPoints(), game.VictoryPoints())

		case models.StepWin:
			fmt.Printf("Game Ended: the doll earned freedom after %d nights!\n", game.Night())
			return
		}

		game.Continue(ctx)
	}

	fmt.Printf("Game Ended: no victory after %d nights (%.2f%%).\n", maxNights, game.Progress())
}

// pickItems chooses the available items that link to the most nightly tasks.
func pickItems(game *engine.Game) []models.Item {
	tonight := map[int]bool{}
	for _, t := range game.NightlyTasks() {
		tonight[t.ID] = true
	}

	type scored struct {
		item  models.Item
		score int
	}
	var candidates []scored
	for _, it := range game.AvailableItems() {
		score := 0
		for _, t := range game.Catalog().TasksForItem(it.ID) {
			if tonight[t.ID] {
				score++
			}
		}
		candidates = append(candidates, scored{it, score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var picked []models.Item
	for _, c := range candidates {
		if len(picked) == game.MaxDollItems() || c.score == 0 {
			break
		}
		picked = append(picked, c.item)
	}
	return picked
}
