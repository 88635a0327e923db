// Package bot implements the rule-driven decision module that plays
// the same action surface as a human. Decisions are pure reads of the
// engine's query interface plus draws from an injectable random source.
package bot

import (
	"github.com/charmbracelet/log"

	"github.com/BigSlickGames/21holdemmobile/internal/game"
)

// Rand is the random source behind every probabilistic branch.
// *rand.Rand satisfies it; tests supply fixed sequences to pin exact
// decisions at threshold boundaries.
type Rand interface {
	Float64() float64
}

// wagerPreference selects which preset a style takes from the engine's
// wager options.
type wagerPreference int

const (
	preferMin wagerPreference = iota
	preferMedium
	preferMax
)

// Strategy decides actions for bot seats. One instance serves every
// bot at the table; all state lives in the engine.
type Strategy struct {
	rng    Rand
	logger *log.Logger
}

// New creates a strategy backed by the given random source
func New(rng Rand, logger *log.Logger) *Strategy {
	if rng == nil {
		panic("rng is required for bot strategy")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Strategy{rng: rng, logger: logger.WithPrefix("bot")}
}

// Decide maps engine state for a seat to a chosen action. It implements
// game.Strategist.
func (s *Strategy) Decide(v game.View, seat int) game.Decision {
	actions := v.AvailableActions(seat)
	if len(actions) == 0 {
		return game.Decision{Action: game.Check}
	}

	toCall := v.ToCall(seat)
	total := v.PlayerTotal(seat)
	pressure := float64(toCall) / float64(max(v.BigBlind(), v.Pot(), 1))
	style := resolveStyle(v, seat, pressure)

	var decision game.Decision
	switch style {
	case game.StyleConservative:
		decision = s.decideConservative(v, seat, actions, toCall, total, pressure)
	case game.StyleHighRisk:
		decision = s.decideHighRisk(v, seat, actions, toCall, total, pressure)
	default:
		decision = s.decideAggressive(v, seat, actions, toCall, total, pressure)
	}

	s.logger.Debug("decision",
		"seat", seat,
		"style", style,
		"total", total,
		"toCall", toCall,
		"pressure", pressure,
		"action", decision.Action)

	return decision
}

// resolveStyle picks the effective profile for this decision. Short
// stacks always gamble; deep stacks facing heavy pressure tighten up;
// otherwise the seat's configured style applies.
func resolveStyle(v game.View, seat int, pressure float64) game.BotStyle {
	chips := v.Chips(seat)
	shortStack := max(v.BigBlind()*15, v.StartingStack()*2/5)
	if chips <= shortStack {
		return game.StyleHighRisk
	}
	if pressure > 0.6 && chips > v.BigBlind()*30 {
		return game.StyleConservative
	}
	if style := v.BaseStyle(seat); style != game.StyleNone {
		return style
	}
	return game.StyleAggressive
}

// wagerChoice resolves a preset from the engine's deduplicated options
func wagerChoice(v game.View, action game.Action, seat int, pref wagerPreference) (game.WagerOption, bool) {
	options := v.WagerOptions(action, seat)
	if len(options) == 0 {
		return game.WagerOption{}, false
	}
	switch pref {
	case preferMin:
		return options[0], true
	case preferMax:
		return options[len(options)-1], true
	default:
		return options[min(len(options)-1, 1)], true
	}
}

// fallback is the deterministic order of preference when no
// probabilistic branch fires: call, then check, then fold, then
// whatever is first.
func fallback(actions []game.Action, toCall int) game.Decision {
	if toCall > 0 && has(actions, game.Call) {
		return game.Decision{Action: game.Call}
	}
	if has(actions, game.Check) {
		return game.Decision{Action: game.Check}
	}
	if has(actions, game.Fold) {
		return game.Decision{Action: game.Fold}
	}
	if len(actions) > 0 {
		return game.Decision{Action: actions[0]}
	}
	return game.Decision{Action: game.Check}
}

func has(actions []game.Action, action game.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
