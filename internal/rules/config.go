package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Bots  []BotSeat     `hcl:"bot,block"`
}

// TableSettings contains stakes-level configuration
type TableSettings struct {
	SmallBlind         int    `hcl:"small_blind,optional"`
	BigBlind           int    `hcl:"big_blind,optional"`
	StartingStack      int    `hcl:"starting_stack,optional"`
	MinBuyInMultiplier int    `hcl:"min_buyin_multiplier,optional"`
	PlayerName         string `hcl:"player_name,optional"`
	LogLevel           string `hcl:"log_level,optional"`
}

// BotSeat configures one bot opponent
type BotSeat struct {
	Name  string `hcl:"name,label"`
	Style string `hcl:"style"`
}

// DefaultConfig returns the stock three-seat game: the human plus a
// conservative and an aggressive bot, matching the original table.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			SmallBlind:         SmallBlind,
			BigBlind:           BigBlind,
			StartingStack:      StartingStack,
			MinBuyInMultiplier: MinBuyInMultiplier,
			PlayerName:         "You",
			LogLevel:           "info",
		},
		Bots: []BotSeat{
			{Name: "North Bot", Style: "conservative"},
			{Name: "East Bot", Style: "aggressive"},
		},
	}
}

// LoadConfig loads game configuration from an HCL file. A missing file
// yields the default configuration.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = defaults.Table.BigBlind
	}
	if config.Table.StartingStack == 0 {
		config.Table.StartingStack = defaults.Table.StartingStack
	}
	if config.Table.MinBuyInMultiplier == 0 {
		config.Table.MinBuyInMultiplier = defaults.Table.MinBuyInMultiplier
	}
	if config.Table.PlayerName == "" {
		config.Table.PlayerName = defaults.Table.PlayerName
	}
	if config.Table.LogLevel == "" {
		config.Table.LogLevel = defaults.Table.LogLevel
	}
	if len(config.Bots) == 0 {
		config.Bots = defaults.Bots
	}

	return &config, nil
}

// Validate validates the game configuration
func (c *Config) Validate() error {
	if c.Table.SmallBlind < 1 {
		return fmt.Errorf("small blind must be at least 1, got %d", c.Table.SmallBlind)
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must exceed small blind (%d/%d)", c.Table.SmallBlind, c.Table.BigBlind)
	}
	if c.Table.StartingStack < c.Table.BigBlind {
		return fmt.Errorf("starting stack %d cannot cover the big blind %d", c.Table.StartingStack, c.Table.BigBlind)
	}
	if c.Table.MinBuyInMultiplier < 1 {
		return fmt.Errorf("min buy-in multiplier must be positive, got %d", c.Table.MinBuyInMultiplier)
	}
	if len(c.Bots) != 2 {
		return fmt.Errorf("exactly 2 bot seats are required, got %d", len(c.Bots))
	}

	validStyles := map[string]bool{
		"conservative": true,
		"aggressive":   true,
		"high-risk":    true,
	}
	for _, bot := range c.Bots {
		if !validStyles[bot.Style] {
			return fmt.Errorf("bot %s: invalid style %s", bot.Name, bot.Style)
		}
	}

	return nil
}
