// Package simulator plays bot-vs-bot hands in bulk and reports
// per-style performance for the tracked seat.
package simulator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/BigSlickGames/21holdemmobile/internal/bot"
	"github.com/BigSlickGames/21holdemmobile/internal/game"
	"github.com/BigSlickGames/21holdemmobile/internal/randutil"
	"github.com/BigSlickGames/21holdemmobile/internal/rules"
	"github.com/BigSlickGames/21holdemmobile/internal/statistics"
)

// maxActionsPerHand guards against a stalled state machine. A full
// hand of three seats never needs more than a few dozen actions.
const maxActionsPerHand = 500

// Config holds the parameters of a simulation run.
type Config struct {
	Hands     int
	HeroStyle string    // style played by the tracked seat
	Opponents [2]string // styles of the two other seats
	Seed      int64
	Workers   int
	Logger    *log.Logger
}

// Simulator runs 21 Hold'em hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

func validStyle(style string) bool {
	switch game.BotStyle(style) {
	case game.StyleConservative, game.StyleAggressive, game.StyleHighRisk:
		return true
	}
	return false
}

// Run executes the configured number of hands, sharded across workers,
// and returns merged statistics for the tracked seat.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Hands < 1 {
		return nil, fmt.Errorf("at least one hand is required, got %d", s.config.Hands)
	}
	if s.config.HeroStyle != "" && !validStyle(s.config.HeroStyle) {
		return nil, fmt.Errorf("invalid hero style %q", s.config.HeroStyle)
	}
	for _, style := range s.config.Opponents {
		if !validStyle(style) {
			return nil, fmt.Errorf("invalid opponent style %q", style)
		}
	}

	workers := min(s.config.Workers, s.config.Hands)
	shards := make([]*statistics.Statistics, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		shards[w] = &statistics.Statistics{}
		g.Go(func() error {
			for hand := w; hand < s.config.Hands; hand += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Each hand gets an independent derived seed so any
				// single hand can be replayed in isolation.
				handSeed := s.config.Seed + int64(hand)
				record, offset, err := s.playHand(handSeed, hand%3)
				if err != nil {
					return fmt.Errorf("hand %d (seed %d): %w", hand+1, handSeed, err)
				}
				shards[w].Add(record, offset)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, shard := range shards {
		stats.Merge(shard)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playHand runs one complete hand with every seat played by the bot
// strategy and returns the tracked seat's result plus its dealer offset.
// The button rotates across hands to remove positional bias.
func (s *Simulator) playHand(handSeed int64, dealerSeat int) (statistics.HandRecord, int, error) {
	rng := randutil.New(handSeed)

	cfg := rules.DefaultConfig()
	cfg.Bots = []rules.BotSeat{
		{Name: "Opp 1", Style: s.config.Opponents[0]},
		{Name: "Opp 2", Style: s.config.Opponents[1]},
	}
	cfg.Table.PlayerName = "Hero"

	engine := game.NewEngine(rng, s.config.Logger, cfg, game.WithStartingDealer(dealerSeat))
	strategy := bot.New(rng, s.config.Logger)
	view := heroView{View: engine, style: game.BotStyle(s.config.HeroStyle)}

	engine.StartNewHand()

	snap := engine.VisibleState()
	initial := snap.Players[0].Chips + snap.Players[0].TotalBet
	tableChips := snap.Pot
	for _, p := range snap.Players {
		tableChips += p.Chips
	}
	dealerOffset := ((0 - snap.DealerIndex) + engine.NumSeats()) % engine.NumSeats()

	for steps := 0; !engine.HandComplete(); steps++ {
		if steps > maxActionsPerHand {
			return statistics.HandRecord{}, 0, fmt.Errorf("exceeded %d actions without resolving", maxActionsPerHand)
		}
		seat := engine.CurrentTurn()
		if seat < 0 {
			return statistics.HandRecord{}, 0, fmt.Errorf("no seat to act while hand incomplete")
		}

		decision := strategy.Decide(view, seat)
		source := game.SourceBot
		if engine.IsHumanSeat(seat) {
			source = game.SourceHuman
		}
		result := engine.PerformAction(decision.Action, game.Payload{Amount: decision.Amount}, source)
		if !result.OK {
			return statistics.HandRecord{}, 0, fmt.Errorf("seat %d %s rejected: %s", seat, decision.Action, result.Reason)
		}
	}

	final := engine.VisibleState()

	// Chips never leave the table: what the seats hold plus any dead
	// pot must equal the starting total.
	finalChips := 0
	for _, p := range final.Players {
		finalChips += p.Chips
	}
	outcome := classifyOutcome(final.HandResult)
	if outcome == statistics.OutcomeDeadPot {
		finalChips += final.Pot
	}
	if finalChips != tableChips {
		return statistics.HandRecord{}, 0, fmt.Errorf("chip conservation violated: %d != %d (result %q)",
			finalChips, tableChips, final.HandResult)
	}

	netChips := final.Players[0].Chips - initial
	return statistics.HandRecord{
		NetBB:        float64(netChips) / float64(final.BigBlindAmount),
		Seed:         handSeed,
		Outcome:      outcome,
		RoundsPlayed: final.RoundIndex + 1,
		FinalPot:     final.Pot,
	}, dealerOffset, nil
}

// classifyOutcome maps the engine's hand result line to an outcome
// bucket.
func classifyOutcome(result string) statistics.Outcome {
	switch {
	case strings.Contains(result, "instant 21"):
		return statistics.OutcomeInstant21
	case strings.Contains(result, "elimination"):
		return statistics.OutcomeElimination
	case strings.Contains(result, "showdown") || strings.Contains(result, "Split pot"):
		return statistics.OutcomeShowdown
	default:
		return statistics.OutcomeDeadPot
	}
}

// PrintSummary writes a human-readable report of a simulation run.
func PrintSummary(stats *statistics.Statistics, heroStyle string) {
	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS: %s hero ===\n", heroStyle)
	fmt.Printf("Hands played: %d\n", stats.Hands)

	fmt.Printf("\n=== STATISTICS ===\n")
	fmt.Printf("Mean: %.4f bb/hand\n", mean)
	fmt.Printf("Median: %.4f bb/hand\n", stats.Median())
	fmt.Printf("Std Dev: %.4f bb\n", stats.StdDev())
	fmt.Printf("Std Error: %.4f bb\n", stats.StdError())
	fmt.Printf("95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
	fmt.Printf("Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== OUTCOMES ===\n")
	fmt.Printf("Wins: %d showdown, %d elimination, %d instant 21\n",
		stats.ShowdownWins, stats.EliminationWins, stats.Instant21Wins)
	fmt.Printf("Dead pots: %d (%.1f%%)\n",
		stats.DeadPots, float64(stats.DeadPots)/float64(stats.Hands)*100)
	fmt.Printf("Showdown net: %.2f bb, other net: %.2f bb\n", stats.ShowdownBB, stats.NonShowdownBB)

	fmt.Printf("\n=== POTS ===\n")
	fmt.Printf("Max pot: %d chips\n", stats.MaxPotChips)
	fmt.Printf("Big pots (>=25bb): %d\n", stats.BigPots)

	fmt.Printf("\n=== DEALER OFFSET ===\n")
	for offset := 0; offset < 3; offset++ {
		ds := stats.DealerResults[offset]
		if ds.Hands > 0 {
			fmt.Printf("Offset %d: %d hands, %.3f bb/hand\n", offset, ds.Hands, stats.DealerMean(offset))
		}
	}
}

// heroView overrides the tracked seat's configured style so the hero
// can play any profile without the engine knowing.
type heroView struct {
	game.View
	style game.BotStyle
}

func (v heroView) BaseStyle(seat int) game.BotStyle {
	if seat == 0 && v.style != game.StyleNone {
		return v.style
	}
	return v.View.BaseStyle(seat)
}
