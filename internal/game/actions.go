package game

import (
	"fmt"

	"github.com/BigSlickGames/21holdemmobile/internal/rules"
)

// AvailableActions computes the legal action set for a seat. It is a
// pure function of state with no side effects. Folded, busted or
// invalid seats get an empty set; a standing seat is reduced to
// fold/check/call.
func (e *Engine) AvailableActions(seat int) []Action {
	if !e.seatValid(seat) || e.handComplete {
		return nil
	}
	p := e.players[seat]
	if p.Folded || p.Busted {
		return nil
	}

	var actions []Action
	toCall := e.toCall(p)

	// Fold stays legal while at least two contenders remain, so folding
	// down to a single survivor triggers an elimination payout.
	if len(e.activeContenders()) > 1 {
		actions = append(actions, Fold)
	}

	if toCall > 0 {
		actions = append(actions, Call)
	} else {
		actions = append(actions, Check)
	}

	if p.Standing {
		return actions
	}

	if e.roundIndex < rules.FinalRound {
		actions = append(actions, Stand)
	}
	if toCall == 0 && p.Chips > 0 {
		actions = append(actions, Bet)
	}
	if toCall > 0 && p.Chips > toCall && !p.RaiseLock {
		actions = append(actions, Raise)
	}
	if e.roundIndex == 0 && len(p.Hand) == 1 && !p.DoubleDown && p.Chips > 0 {
		actions = append(actions, Double)
	}

	return actions
}

// WagerOptions produces up to three deduplicated presets for a bet or
// raise: Min (big blind), half pot and full pot, each floored at the
// big blind and clipped to the seat's chips.
func (e *Engine) WagerOptions(action Action, seat int) []WagerOption {
	if !e.seatValid(seat) {
		return nil
	}
	p := e.players[seat]
	if p.Chips <= 0 {
		return nil
	}

	presets := []struct {
		label string
		base  int
	}{
		{"Min", e.bigBlindAmount},
		{"1/2 Pot", max(e.bigBlindAmount, (e.pot+1)/2)},
		{"Pot", max(e.bigBlindAmount, e.pot)},
	}

	var options []WagerOption
	seen := make(map[int]bool)
	toCall := e.toCall(p)

	for _, preset := range presets {
		switch action {
		case Bet:
			amount := min(p.Chips, preset.base)
			if amount <= 0 || seen[amount] {
				continue
			}
			seen[amount] = true
			options = append(options, WagerOption{Label: preset.label, Amount: amount, Cost: amount})

		case Raise:
			maxRaise := p.Chips - toCall
			if maxRaise <= 0 {
				continue
			}
			amount := min(maxRaise, max(e.bigBlindAmount, preset.base))
			if amount <= 0 || seen[amount] {
				continue
			}
			seen[amount] = true
			options = append(options, WagerOption{Label: preset.label, Amount: amount, Cost: toCall + amount})
		}
	}

	return options
}

// PerformAction is the single mutation entry point for play. It
// validates turn ownership, source and legality, applies the action's
// chip and state effects, then resolves busts, instant wins,
// eliminations and round progression. Rejections are no-ops.
func (e *Engine) PerformAction(action Action, payload Payload, source Source) Result {
	if e.handComplete || e.currentTurn == noTurn {
		return reject("Hand is not active.")
	}

	p := e.players[e.currentTurn]
	if source == SourceHuman && !p.IsHuman {
		return reject("Not the human turn.")
	}
	if source == SourceBot && p.IsHuman {
		return reject("Not the bot turn.")
	}

	if !containsAction(e.AvailableActions(e.currentTurn), action) {
		return reject("Action not allowed.")
	}

	toCall := e.toCall(p)
	actingIndex := e.currentTurn
	standAfter := payload.StandAfter &&
		(action == Call || action == Bet || action == Raise) &&
		!p.Standing &&
		e.roundIndex < rules.FinalRound

	switch action {
	case Fold:
		p.Folded = true
		p.lockedCommunity = len(e.community)
		p.HasActed = true
		p.LastAction = "Fold"
		e.logEvent(fmt.Sprintf("%s folds.", p.Name))

	case Check:
		p.HasActed = true
		p.LastAction = "Check"
		e.logEvent(fmt.Sprintf("%s checks.", p.Name))

	case Call:
		paid := e.applyContribution(p, toCall)
		p.HasActed = true
		if paid < toCall {
			p.LastAction = fmt.Sprintf("Call %d (all-in)", paid)
		} else {
			p.LastAction = fmt.Sprintf("Call %d", paid)
		}
		e.logEvent(fmt.Sprintf("%s calls %d.", p.Name, paid))

	case Stand:
		p.HasActed = true
		e.lockStanding(p, action, false)

	case Bet:
		wager := max(e.bigBlindAmount, payload.Amount)
		paid := e.applyContribution(p, wager)
		if paid <= 0 {
			return reject("Invalid bet amount.")
		}
		p.HasActed = true
		p.LastAction = fmt.Sprintf("Bet %d", paid)
		if p.RoundBet > e.currentBet {
			e.currentBet = p.RoundBet
		}
		e.resetRoundActed(p.ID)
		e.logEvent(fmt.Sprintf("%s bets %d.", p.Name, paid))

	case Raise:
		raiseBy := max(e.bigBlindAmount, payload.Amount)
		paid := e.applyContribution(p, toCall+raiseBy)
		p.HasActed = true

		if p.RoundBet > e.currentBet {
			e.currentBet = p.RoundBet
			e.resetRoundActed(p.ID)
		}

		// A raise whose payment is swallowed by the call amount (all-in
		// cap) is reported as a call.
		if paid <= toCall {
			p.LastAction = fmt.Sprintf("Call %d", paid)
			e.logEvent(fmt.Sprintf("%s calls %d.", p.Name, paid))
		} else {
			by := paid - toCall
			p.LastAction = fmt.Sprintf("Raise %d", by)
			e.logEvent(fmt.Sprintf("%s raises by %d.", p.Name, by))
		}

	case Double:
		stake := max(1, e.pot)
		paid := e.applyContribution(p, stake)
		if paid <= 0 {
			return reject("Double Down is not available.")
		}
		p.DoubleDown = true
		p.RaiseLock = true
		p.Standing = true
		p.lockedCommunity = 0
		p.HasActed = true
		if p.RoundBet > e.currentBet {
			e.currentBet = p.RoundBet
			e.resetRoundActed(p.ID)
		}
		drawn, ok := e.dealPrivateCard(p)
		p.LastAction = fmt.Sprintf("Double %d", paid)
		drawnName := "a card"
		if ok {
			drawnName = drawn.DisplayName()
		}
		e.logEvent(fmt.Sprintf("%s Double Downs for %d and draws %s.", p.Name, paid, drawnName))
	}

	e.logger.Debug("action applied",
		"player", p.Name,
		"action", action,
		"pot", e.pot,
		"currentBet", e.currentBet)

	if standAfter && !p.Folded && !p.Busted {
		e.lockStanding(p, action, true)
	}

	e.refreshBusts()

	if e.resolveInstantWins() {
		return Result{OK: true}
	}
	if e.maybeEndByLastPlayer() {
		return Result{OK: true}
	}

	if e.isRoundComplete() {
		e.finishRound()
		return Result{OK: true}
	}

	e.currentTurn = e.findNextPlayerToAct(e.nextIndex(actingIndex))
	if e.currentTurn == noTurn {
		e.finishRound()
	}

	return Result{OK: true}
}

// PerformHumanAction submits an action on behalf of the human seat
func (e *Engine) PerformHumanAction(action Action, payload Payload) Result {
	return e.PerformAction(action, payload, SourceHuman)
}

// PlayBotTurn asks the strategist to decide for the current actor if it
// is a bot seat, then applies the decision. Human turns are ignored.
func (e *Engine) PlayBotTurn() {
	if e.handComplete || e.currentTurn == noTurn {
		return
	}
	p := e.players[e.currentTurn]
	if p.IsHuman || e.strategist == nil {
		return
	}
	decision := e.strategist.Decide(e, e.currentTurn)
	result := e.PerformAction(decision.Action, Payload{Amount: decision.Amount}, SourceBot)
	if !result.OK {
		e.logger.Warn("bot decision rejected",
			"player", p.Name,
			"action", decision.Action,
			"reason", result.Reason)
	}
}

// lockStanding freezes a player's visible community count and marks
// them standing. followUp distinguishes "stand" from "stand after" a
// call, bet or raise.
func (e *Engine) lockStanding(p *Player, action Action, followUp bool) {
	if p.Standing {
		return
	}
	p.Standing = true
	p.lockedCommunity = len(e.community)
	total := e.playerTotal(p)
	if followUp {
		p.LastAction = p.LastAction + " + Stand"
		e.logEvent(fmt.Sprintf("%s stands after %s and locks %d.", p.Name, action, total))
		return
	}
	p.LastAction = fmt.Sprintf("Stand (%d)", total)
	e.logEvent(fmt.Sprintf("%s stands on %d.", p.Name, total))
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
