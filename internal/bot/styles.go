package bot

import "github.com/BigSlickGames/21holdemmobile/internal/game"

// inPreAction reports whether the seat is still on its single opening
// card in round 0. Folding the opener is never worth the blind equity,
// so every style calls through it.
func inPreAction(v game.View, seat int) bool {
	return v.RoundIndex() == 0 && v.HandSize(seat) == 1
}

// decideConservative folds mediocre totals under pressure, stands early
// and bets rarely.
func (s *Strategy) decideConservative(v game.View, seat int, actions []game.Action, toCall, total int, pressure float64) game.Decision {
	opening := v.OpeningValue(seat)
	preAction := inPreAction(v, seat)

	if toCall > 0 {
		if has(actions, game.Call) {
			if preAction || total >= 16 || pressure <= 0.28 {
				return game.Decision{Action: game.Call}
			}
			if total >= 13 && pressure <= 0.45 {
				return game.Decision{Action: game.Call}
			}
		}
		if has(actions, game.Fold) && !preAction {
			if total <= 10 || (total <= 12 && pressure > 0.55) {
				return game.Decision{Action: game.Fold}
			}
		}
		if has(actions, game.Call) {
			return game.Decision{Action: game.Call}
		}
		return fallback(actions, toCall)
	}

	if has(actions, game.Stand) && total >= 17 {
		return game.Decision{Action: game.Stand}
	}

	if has(actions, game.Double) && opening >= 10 && s.rng.Float64() < 0.16 {
		return game.Decision{Action: game.Double}
	}

	if has(actions, game.Bet) && total >= 18 && s.rng.Float64() < 0.35 {
		pref := preferMin
		if total >= 19 {
			pref = preferMedium
		}
		if choice, ok := wagerChoice(v, game.Bet, seat, pref); ok {
			return game.Decision{Action: game.Bet, Amount: choice.Amount}
		}
	}

	return fallback(actions, toCall)
}

// decideAggressive raises and bets readily on decent totals
func (s *Strategy) decideAggressive(v game.View, seat int, actions []game.Action, toCall, total int, pressure float64) game.Decision {
	opening := v.OpeningValue(seat)
	preAction := inPreAction(v, seat)

	if toCall > 0 {
		if has(actions, game.Raise) && total >= 15 && pressure < 0.55 && s.rng.Float64() < 0.42 {
			pref := preferMedium
			if total >= 18 {
				pref = preferMax
			}
			if choice, ok := wagerChoice(v, game.Raise, seat, pref); ok {
				return game.Decision{Action: game.Raise, Amount: choice.Amount}
			}
		}
		if has(actions, game.Call) {
			if preAction || total >= 12 || pressure <= 0.62 {
				return game.Decision{Action: game.Call}
			}
		}
		if has(actions, game.Fold) && !preAction && total <= 9 && pressure > 0.72 {
			return game.Decision{Action: game.Fold}
		}
		if has(actions, game.Call) {
			return game.Decision{Action: game.Call}
		}
		return fallback(actions, toCall)
	}

	if has(actions, game.Stand) && total >= 18 {
		return game.Decision{Action: game.Stand}
	}

	if has(actions, game.Double) && opening >= 9 && s.rng.Float64() < 0.24 {
		return game.Decision{Action: game.Double}
	}

	if has(actions, game.Bet) && total >= 14 && s.rng.Float64() < 0.7 {
		pref := preferMedium
		if total >= 18 {
			pref = preferMax
		}
		if choice, ok := wagerChoice(v, game.Bet, seat, pref); ok {
			return game.Decision{Action: game.Bet, Amount: choice.Amount}
		}
	}

	return fallback(actions, toCall)
}

// decideHighRisk raises, bets and doubles with high probability and
// folds almost never.
func (s *Strategy) decideHighRisk(v game.View, seat int, actions []game.Action, toCall, total int, pressure float64) game.Decision {
	opening := v.OpeningValue(seat)
	preAction := inPreAction(v, seat)

	if toCall > 0 {
		if has(actions, game.Raise) && total >= 13 && pressure < 0.9 && s.rng.Float64() < 0.62 {
			if choice, ok := wagerChoice(v, game.Raise, seat, preferMax); ok {
				return game.Decision{Action: game.Raise, Amount: choice.Amount}
			}
		}
		if has(actions, game.Call) {
			if preAction || total >= 10 || pressure < 0.85 {
				return game.Decision{Action: game.Call}
			}
		}
		if has(actions, game.Fold) && !preAction && total <= 8 && pressure > 0.9 {
			return game.Decision{Action: game.Fold}
		}
		if has(actions, game.Call) {
			return game.Decision{Action: game.Call}
		}
		return fallback(actions, toCall)
	}

	if has(actions, game.Stand) && total >= 18 && s.rng.Float64() < 0.74 {
		return game.Decision{Action: game.Stand}
	}

	if has(actions, game.Double) && opening >= 8 && s.rng.Float64() < 0.35 {
		return game.Decision{Action: game.Double}
	}

	if has(actions, game.Bet) && total >= 12 && s.rng.Float64() < 0.82 {
		pref := preferMedium
		if total >= 17 {
			pref = preferMax
		}
		if choice, ok := wagerChoice(v, game.Bet, seat, pref); ok {
			return game.Decision{Action: game.Bet, Amount: choice.Amount}
		}
	}

	return fallback(actions, toCall)
}
