package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/config"
	"github.com/tatianab/doll-chores/internal/engine"
	"github.com/tatianab/doll-chores/internal/random"
	"github.com/tatianab/doll-chores/internal/steps"
	"github.com/tatianab/doll-chores/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "doll")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	seq, err := steps.Default()
	if err != nil {
		fmt.Printf("Error loading steps: %v\n", err)
		os.Exit(1)
	}

	rng, err := random.NewRand(cfg.Seed)
	if err != nil {
		fmt.Printf("Error seeding random source: %v\n", err)
		os.Exit(1)
	}

	opts := engine.Options{
		MaxDollItems:  cfg.MaxDollItems,
		NightItems:    cfg.NightItems,
		NightTasks:    cfg.NightTasks,
		VictoryPoints: cfg.VictoryPoints,
		Logger:        log.Default(),
	}

	if cfg.GeminiAPIKey != "" {
		narrator, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer narrator.Close()
		opts.Narrator = narrator
	}

	game := engine.NewGame(cat, seq, rng, opts)
	log.Printf("session %s started", game.ID())

	if err := tui.Run(game); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default()
}
