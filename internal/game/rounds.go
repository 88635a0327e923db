package game

import (
	"fmt"

	"github.com/BigSlickGames/21holdemmobile/internal/deck"
	"github.com/BigSlickGames/21holdemmobile/internal/rules"
)

// resolveInstantWins ends the hand in round 0 when a contender holds a
// two-card 21: a natural blackjack, or a double-down hand totalling
// exactly 21. Multiple qualifiers split the pot.
func (e *Engine) resolveInstantWins() bool {
	if e.roundIndex != 0 {
		return false
	}

	var winners []*Player
	for _, p := range e.activeContenders() {
		cards := e.cardsForPlayer(p)
		if len(cards) != 2 {
			continue
		}
		if (p.DoubleDown && deck.BestTotal(cards) == 21) || deck.IsBlackjack(cards) {
			winners = append(winners, p)
		}
	}

	if len(winners) == 0 {
		return false
	}

	summary := "Multiple instant 21 hands split the pot."
	if len(winners) == 1 {
		summary = fmt.Sprintf("%s hits instant 21.", winners[0].Name)
	}
	e.payoutWinners(winners, summary)
	return true
}

// maybeEndByLastPlayer resolves the hand when a single contender is
// left (elimination win) or none are (dead pot).
func (e *Engine) maybeEndByLastPlayer() bool {
	contenders := e.activeContenders()
	if len(contenders) == 1 {
		e.payoutWinners(contenders, fmt.Sprintf("%s wins by elimination.", contenders[0].Name))
		return true
	}
	if len(contenders) == 0 {
		e.concludeHand("All players busted. Pot has no winner.")
		return true
	}
	return false
}

// finishRound advances the betting state machine: resolve eliminations,
// skip to showdown when everyone stands or the final round is done,
// otherwise reveal one community card and open the next betting round.
// The loop replaces the recursive cascade when no seat can act; it is
// bounded by the fixed number of rounds.
func (e *Engine) finishRound() {
	for pass := 0; pass <= rules.NumRounds; pass++ {
		if e.handComplete {
			return
		}
		if e.maybeEndByLastPlayer() {
			return
		}
		if e.allActiveStanding() {
			e.logEvent("All remaining players are standing. Skipping to showdown.")
			e.goToShowdown()
			return
		}
		if e.roundIndex >= rules.FinalRound {
			e.goToShowdown()
			return
		}

		if card, ok := e.drawCard(); ok {
			e.community = append(e.community, card)
			e.roundIndex++
			e.logEvent(fmt.Sprintf("%s card: %s.", rules.RoundName(e.roundIndex), card.DisplayName()))
			e.logger.Debug("community card dealt",
				"round", rules.RoundName(e.roundIndex),
				"card", card.String())
		}

		e.refreshBusts()
		if e.maybeEndByLastPlayer() {
			return
		}

		for _, p := range e.players {
			p.RoundBet = 0
			if p.IsContender() {
				p.HasActed = false
			}
		}
		e.currentBet = 0
		e.currentTurn = e.findNextPlayerToAct(e.nextIndex(e.dealerIndex))

		if e.currentTurn == noTurn {
			e.logEvent("No betting decisions available. Advancing.")
			continue
		}

		e.logEvent(fmt.Sprintf("%s betting begins.", rules.RoundName(e.roundIndex)))
		return
	}

	e.goToShowdown()
}

// goToShowdown compares the non-bust contenders' totals. The highest
// total not exceeding 21 wins; ties split.
func (e *Engine) goToShowdown() {
	var finalists []*Player
	for _, p := range e.activeContenders() {
		if e.playerTotal(p) <= 21 {
			finalists = append(finalists, p)
		}
	}

	if len(finalists) == 0 {
		e.concludeHand("Showdown: all remaining players are bust.")
		return
	}

	best := 0
	for _, p := range finalists {
		if total := e.playerTotal(p); total > best {
			best = total
		}
	}

	var winners []*Player
	for _, p := range finalists {
		if e.playerTotal(p) == best {
			winners = append(winners, p)
		}
	}

	result := fmt.Sprintf("Split pot with %d.", best)
	if len(winners) == 1 {
		result = fmt.Sprintf("%s wins showdown with %d.", winners[0].Name, best)
	}
	e.payoutWinners(winners, result)
}

// payoutWinners splits the pot by floor division and hands the
// remainder out one chip at a time, cycling from the first winner.
func (e *Engine) payoutWinners(winners []*Player, reason string) {
	if len(winners) == 0 {
		e.concludeHand(reason)
		return
	}

	split := e.pot / len(winners)
	remainder := e.pot - split*len(winners)

	for _, p := range winners {
		p.Chips += split
		p.LastAction = "Winner"
	}
	for i := 0; remainder > 0; i++ {
		winners[i%len(winners)].Chips++
		remainder--
	}

	e.logger.Info("hand complete",
		"hand", e.handNumber,
		"pot", e.pot,
		"winners", len(winners),
		"result", reason)
	e.concludeHand(reason)
}

func (e *Engine) concludeHand(result string) {
	e.handComplete = true
	e.handResult = result
	e.currentTurn = noTurn
	e.currentBet = 0
	e.logEvent(result)
}
