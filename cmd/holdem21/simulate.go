package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/BigSlickGames/21holdemmobile/internal/simulator"
)

// SimulateCmd plays bot-vs-bot hands in bulk and prints statistics for
// the tracked seat.
type SimulateCmd struct {
	Hands     int      `default:"10000" help:"Number of hands to simulate"`
	Hero      string   `default:"aggressive" enum:"conservative,aggressive,high-risk" help:"Style played by the tracked seat"`
	Opponents []string `default:"conservative,high-risk" help:"Styles of the two opponent seats"`
	Seed      int64    `default:"0" help:"RNG seed (0 for time-based)"`
	Workers   int      `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Verbose   bool     `help:"Log every bot decision"`
}

func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var opponents [2]string
	if len(c.Opponents) != 2 {
		logger.Fatal("exactly two opponent styles are required", "got", len(c.Opponents))
	}
	copy(opponents[:], c.Opponents)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation starting",
		"hands", c.Hands,
		"hero", c.Hero,
		"opponents", opponents,
		"seed", seed,
		"workers", workers)

	sim := simulator.New(simulator.Config{
		Hands:     c.Hands,
		HeroStyle: c.Hero,
		Opponents: opponents,
		Seed:      seed,
		Workers:   workers,
		Logger:    logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(stats, c.Hero)
	logger.Info("simulation complete",
		"hands", stats.Hands,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
