package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/BigSlickGames/21holdemmobile/internal/bot"
	"github.com/BigSlickGames/21holdemmobile/internal/game"
	"github.com/BigSlickGames/21holdemmobile/internal/randutil"
	"github.com/BigSlickGames/21holdemmobile/internal/rules"
	"github.com/BigSlickGames/21holdemmobile/internal/tui"
)

// PlayCmd starts an interactive game against the two bots.
type PlayCmd struct {
	Config  string `short:"c" default:"21holdem.hcl" help:"Path to an HCL config file"`
	Name    string `help:"Display name for your seat (overrides config)"`
	Blinds  string `default:"" enum:",low,mid,high" help:"Blind preset: low (1/2), mid (2/4), high (5/10)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	LogFile string `default:"holdem21.log" help:"Debug log destination (the terminal belongs to the table)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := rules.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.Table.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting table", "seed", seed, "config", c.Config)

	rng := randutil.New(seed)
	strategy := bot.New(rng, logger)
	engine := game.NewEngine(rng, logger, cfg, game.WithStrategist(strategy))

	if c.Blinds != "" {
		preset := rules.PresetByID(c.Blinds)
		if preset == nil {
			return fmt.Errorf("unknown blind preset %q", c.Blinds)
		}
		engine.SetBlindStructure(preset.SmallBlind, preset.BigBlind)
	}
	if c.Name != "" {
		engine.SetPlayerName(c.Name)
	}

	return tui.Run(engine, logger)
}
