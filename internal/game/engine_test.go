package game

import (
	"testing"

	"github.com/BigSlickGames/21holdemmobile/internal/deck"
	"github.com/BigSlickGames/21holdemmobile/internal/randutil"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(randutil.New(seed), nil, nil)
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

func totalChips(e *Engine) int {
	sum := 0
	for _, p := range e.players {
		sum += p.Chips
	}
	return sum
}

func totalBets(e *Engine) int {
	sum := 0
	for _, p := range e.players {
		sum += p.TotalBet
	}
	return sum
}

func TestStartNewHandPostsBlindsAndDeals(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// First hand: dealer seat 0, blinds seats 1 and 2
	if e.dealerIndex != 0 || e.smallBlindIndex != 1 || e.bigBlindIndex != 2 {
		t.Fatalf("seat rotation wrong: dealer=%d sb=%d bb=%d",
			e.dealerIndex, e.smallBlindIndex, e.bigBlindIndex)
	}

	if e.players[1].TotalBet != 1 {
		t.Errorf("small blind not posted: %d", e.players[1].TotalBet)
	}
	if e.players[2].TotalBet != 2 {
		t.Errorf("big blind not posted: %d", e.players[2].TotalBet)
	}
	if e.pot != 3 {
		t.Errorf("pot should be 3, got %d", e.pot)
	}
	if e.currentBet != 2 {
		t.Errorf("current bet should be 2, got %d", e.currentBet)
	}

	for _, p := range e.players {
		if len(p.Hand) != 1 {
			t.Errorf("player %s has %d private cards, expected 1", p.Name, len(p.Hand))
		}
	}

	// First actor is the seat after the big blind
	if e.currentTurn != 0 {
		t.Errorf("first actor should be seat 0, got %d", e.currentTurn)
	}
}

func TestDealerRotatesAcrossHands(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()
	first := e.dealerIndex
	// Resolve the hand by folding it out so the next can start cleanly
	e.concludeHand("test")
	e.StartNewHand()
	if e.dealerIndex != (first+1)%3 {
		t.Errorf("dealer should rotate from %d to %d, got %d", first, (first+1)%3, e.dealerIndex)
	}
	if e.handNumber != 2 {
		t.Errorf("hand number should be 2, got %d", e.handNumber)
	}
}

func TestFirstBettingRoundAdvances(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Seat 0 owes the full big blind
	if got := e.ToCall(0); got != 2 {
		t.Fatalf("seat 0 toCall = %d, want 2", got)
	}
	if res := e.PerformHumanAction(Call, Payload{}); !res.OK {
		t.Fatalf("human call rejected: %s", res.Reason)
	}
	if e.pot != 5 {
		t.Fatalf("pot after human call = %d, want 5", e.pot)
	}

	// Small blind completes for 1, big blind checks
	if got := e.ToCall(1); got != 1 {
		t.Fatalf("seat 1 toCall = %d, want 1", got)
	}
	if res := e.PerformAction(Call, Payload{}, SourceBot); !res.OK {
		t.Fatalf("seat 1 call rejected: %s", res.Reason)
	}
	if res := e.PerformAction(Check, Payload{}, SourceBot); !res.OK {
		t.Fatalf("seat 2 check rejected: %s", res.Reason)
	}

	snap := e.VisibleState()
	if snap.RoundIndex != 1 {
		t.Errorf("round index = %d, want 1", snap.RoundIndex)
	}
	if snap.RoundName != "Action" {
		t.Errorf("round name = %q, want Action", snap.RoundName)
	}
	if len(snap.Community) != 1 {
		t.Errorf("community length = %d, want 1", len(snap.Community))
	}
	if snap.Pot != 6 {
		t.Errorf("pot = %d, want 6", snap.Pot)
	}
	if snap.CurrentBet != 0 {
		t.Errorf("current bet should reset to 0, got %d", snap.CurrentBet)
	}
	for _, p := range snap.Players {
		if p.RoundBet != 0 {
			t.Errorf("player %s round bet should reset, got %d", p.Name, p.RoundBet)
		}
	}
	// First actor of the new round is the seat after the dealer
	if snap.CurrentTurnIndex != 1 {
		t.Errorf("first actor of round 1 should be seat 1, got %d", snap.CurrentTurnIndex)
	}
}

func TestChipConservationThroughFullHands(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{1, 7, 42, 99, 1234} {
		e := newTestEngine(seed)
		initial := totalChips(e)

		for hand := 0; hand < 20; hand++ {
			e.StartNewHand()
			// Top-ups may mint chips at hand start; re-baseline
			initial = totalChips(e) + e.pot

			for steps := 0; !e.handComplete; steps++ {
				if steps > 200 {
					t.Fatalf("seed %d hand %d did not terminate", seed, hand)
				}
				if e.pot != totalBets(e) {
					t.Fatalf("seed %d: pot %d != sum of total bets %d", seed, e.pot, totalBets(e))
				}
				if totalChips(e)+e.pot != initial {
					t.Fatalf("seed %d: chips %d + pot %d != initial %d",
						seed, totalChips(e), e.pot, initial)
				}
				if e.currentTurn != noTurn && e.isRoundComplete() {
					t.Fatalf("seed %d: round complete but still awaiting seat %d", seed, e.currentTurn)
				}

				// Drive every seat with the deterministic fallback
				p := e.currentPlayer()
				if p == nil {
					t.Fatalf("seed %d: hand incomplete with no pending turn", seed)
				}
				source := SourceBot
				if p.IsHuman {
					source = SourceHuman
				}
				var res Result
				if e.toCall(p) > 0 {
					res = e.PerformAction(Call, Payload{}, source)
				} else {
					res = e.PerformAction(Check, Payload{}, source)
				}
				if !res.OK {
					t.Fatalf("seed %d: action rejected: %s", seed, res.Reason)
				}
			}

			// A dead pot is never paid out, so its chips stay out of play
			deadPot := e.handResult == "All players busted. Pot has no winner." ||
				e.handResult == "Showdown: all remaining players are bust."
			want := initial
			if deadPot {
				want = initial - e.pot
			}
			if totalChips(e) != want {
				t.Fatalf("seed %d: after hand chips %d != %d (result %q)",
					seed, totalChips(e), want, e.handResult)
			}
			for _, p := range e.players {
				if p.Chips < 0 {
					t.Fatalf("seed %d: player %s has negative chips", seed, p.Name)
				}
			}
		}
	}
}

func TestAvailableActionsForFoldedAndBusted(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.players[0].Folded = true
	if actions := e.AvailableActions(0); len(actions) != 0 {
		t.Errorf("folded player should have no actions, got %v", actions)
	}

	e.players[0].Folded = false
	e.players[0].Busted = true
	if actions := e.AvailableActions(0); len(actions) != 0 {
		t.Errorf("busted player should have no actions, got %v", actions)
	}

	if actions := e.AvailableActions(99); actions != nil {
		t.Errorf("invalid seat should have no actions, got %v", actions)
	}
}

func TestStandingPlayerActionSubset(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.players[0].Standing = true
	for _, a := range e.AvailableActions(0) {
		if a != Fold && a != Check && a != Call {
			t.Errorf("standing player offered %s", a)
		}
	}
}

func TestDoubleOfferedOnlyOnOpeningCard(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	if !containsAction(e.AvailableActions(0), Double) {
		t.Error("double should be offered in round 0 with one private card")
	}

	e.players[0].Hand = append(e.players[0].Hand, card(deck.Clubs, deck.Two))
	if containsAction(e.AvailableActions(0), Double) {
		t.Error("double should not be offered with two private cards")
	}
}

func TestRaiseRequiresExcessChips(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Exactly the call amount: no raise
	e.players[0].Chips = e.ToCall(0)
	if containsAction(e.AvailableActions(0), Raise) {
		t.Error("raise should need chips beyond the call amount")
	}

	e.players[0].Chips = e.ToCall(0) + 1
	if !containsAction(e.AvailableActions(0), Raise) {
		t.Error("raise should be offered with chips beyond the call")
	}

	e.players[0].RaiseLock = true
	if containsAction(e.AvailableActions(0), Raise) {
		t.Error("raise should be blocked by the raise lock")
	}
}

func TestWagerOptionsPresets(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()
	// pot=3, big blind=2: Min=2, 1/2 Pot=ceil(3/2)=2 (duplicate), Pot=3
	opts := e.WagerOptions(Bet, 0)
	if len(opts) != 2 {
		t.Fatalf("expected 2 deduplicated options, got %d: %v", len(opts), opts)
	}
	if opts[0].Label != "Min" || opts[0].Amount != 2 || opts[0].Cost != 2 {
		t.Errorf("min option wrong: %+v", opts[0])
	}
	if opts[1].Label != "Pot" || opts[1].Amount != 3 || opts[1].Cost != 3 {
		t.Errorf("pot option wrong: %+v", opts[1])
	}
}

func TestWagerOptionsClippedToChips(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.players[0].Chips = 2
	opts := e.WagerOptions(Bet, 0)
	if len(opts) != 1 {
		t.Fatalf("expected all presets to collapse to the stack, got %v", opts)
	}
	if opts[0].Amount != 2 {
		t.Errorf("option should be clipped to 2 chips, got %d", opts[0].Amount)
	}

	e.players[0].Chips = 0
	if opts := e.WagerOptions(Bet, 0); len(opts) != 0 {
		t.Errorf("no options with zero chips, got %v", opts)
	}
}

func TestWagerOptionsRaiseCost(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	toCall := e.ToCall(0)
	if toCall != 2 {
		t.Fatalf("expected seat 0 to owe 2, got %d", toCall)
	}
	for _, opt := range e.WagerOptions(Raise, 0) {
		if opt.Cost != toCall+opt.Amount {
			t.Errorf("raise option %q cost %d != toCall %d + amount %d",
				opt.Label, opt.Cost, toCall, opt.Amount)
		}
	}
}

func TestPerformActionRejections(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Bot source while human is up
	if res := e.PerformAction(Call, Payload{}, SourceBot); res.OK || res.Reason != "Not the bot turn." {
		t.Errorf("expected bot-turn rejection, got %+v", res)
	}

	// Illegal action: check while owing a call
	if res := e.PerformHumanAction(Check, Payload{}); res.OK || res.Reason != "Action not allowed." {
		t.Errorf("expected action-not-allowed rejection, got %+v", res)
	}

	// Rejections are no-ops
	before := e.VisibleState()
	e.PerformHumanAction(Check, Payload{})
	after := e.VisibleState()
	if before.Pot != after.Pot || before.CurrentTurnIndex != after.CurrentTurnIndex {
		t.Error("rejected action mutated state")
	}

	// Completed hand rejects everything
	e.concludeHand("test")
	if res := e.PerformHumanAction(Call, Payload{}); res.OK || res.Reason != "Hand is not active." {
		t.Errorf("expected hand-not-active rejection, got %+v", res)
	}
}

func TestPayoutRemainderRoundRobin(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	for _, p := range e.players {
		p.Chips = 100
	}
	e.pot = 10

	winners := []*Player{e.players[0], e.players[1], e.players[2]}
	e.payoutWinners(winners, "three-way split")

	deltas := []int{e.players[0].Chips - 100, e.players[1].Chips - 100, e.players[2].Chips - 100}
	want := []int{4, 3, 3}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("winner %d delta = %d, want %d", i, deltas[i], want[i])
		}
	}
	if !e.handComplete {
		t.Error("payout should complete the hand")
	}
	if e.currentTurn != noTurn || e.currentBet != 0 {
		t.Error("payout should clear the pending turn and current bet")
	}
}

func TestDoubleDownInstantWin(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Human opens with an Ace and the deck serves a King on the double
	e.players[0].Hand = []deck.Card{card(deck.Spades, deck.Ace)}
	e.deck = deck.FromCards([]deck.Card{card(deck.Hearts, deck.King)})

	chipsBefore := e.players[0].Chips
	pot := e.pot

	res := e.PerformHumanAction(Double, Payload{})
	if !res.OK {
		t.Fatalf("double rejected: %s", res.Reason)
	}

	if !e.handComplete {
		t.Fatal("double-down 21 should end the hand immediately")
	}
	if !e.players[0].DoubleDown || !e.players[0].Standing || !e.players[0].RaiseLock {
		t.Error("double should set doubleDown, standing and raiseLock")
	}
	// Stake was max(1, pot)=3; winner takes the 6-chip pot
	wantChips := chipsBefore - pot + (pot + pot)
	if e.players[0].Chips != wantChips {
		t.Errorf("winner chips = %d, want %d", e.players[0].Chips, wantChips)
	}
	if e.handResult == "" {
		t.Error("hand result should be recorded")
	}
}

func TestDoubleDownLocksOutCommunity(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// A double that does not reach 21: 5 opener draws a 2
	e.players[0].Hand = []deck.Card{card(deck.Spades, deck.Five)}
	e.deck = deck.FromCards([]deck.Card{
		card(deck.Clubs, deck.Three), // future community card
		card(deck.Hearts, deck.Two),  // drawn by the double
	})

	if res := e.PerformHumanAction(Double, Payload{}); !res.OK {
		t.Fatalf("double rejected: %s", res.Reason)
	}
	if e.handComplete {
		t.Fatal("a 7 total should not end the hand")
	}
	if e.players[0].lockedCommunity != 0 {
		t.Errorf("double should lock community count to 0, got %d", e.players[0].lockedCommunity)
	}

	// Even after community cards appear, the doubled hand stays frozen
	e.community = append(e.community, card(deck.Clubs, deck.Ten))
	if got := e.PlayerTotal(0); got != 7 {
		t.Errorf("doubled player total = %d, want 7 (frozen)", got)
	}
}

func TestFoldToEliminationPayout(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	if res := e.PerformHumanAction(Fold, Payload{}); !res.OK {
		t.Fatalf("human fold rejected: %s", res.Reason)
	}
	if e.handComplete {
		t.Fatal("hand should continue with two contenders")
	}

	// Seat 1 folds, leaving seat 2 as the last contender
	pot := e.pot
	chipsBefore := e.players[2].Chips
	if res := e.PerformAction(Fold, Payload{}, SourceBot); !res.OK {
		t.Fatalf("bot fold rejected: %s", res.Reason)
	}
	if !e.handComplete {
		t.Fatal("last contender should win by elimination")
	}
	if e.players[2].Chips != chipsBefore+pot {
		t.Errorf("eliminator chips = %d, want %d", e.players[2].Chips, chipsBefore+pot)
	}
	if e.players[2].LastAction != "Winner" {
		t.Errorf("winner label = %q", e.players[2].LastAction)
	}
}

func TestFoldLocksCommunityAtZeroBeforeReveal(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.PerformHumanAction(Fold, Payload{})
	if e.players[0].lockedCommunity != 0 {
		t.Errorf("fold in round 0 should lock community at 0, got %d", e.players[0].lockedCommunity)
	}
}

func TestStandFreezesTotalAgainstLaterCards(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Advance to round 1 so a community card is on the table
	e.PerformHumanAction(Call, Payload{})
	e.PerformAction(Call, Payload{}, SourceBot)
	e.PerformAction(Check, Payload{}, SourceBot)
	if e.roundIndex != 1 || len(e.community) != 1 {
		t.Fatalf("setup failed: round %d community %d", e.roundIndex, len(e.community))
	}

	// Round 1 opens after the dealer: seat 1
	p := e.players[1]
	e.currentTurn = 1
	if res := e.PerformAction(Stand, Payload{}, SourceBot); !res.OK {
		t.Fatalf("stand rejected: %s", res.Reason)
	}
	if p.lockedCommunity != 1 {
		t.Fatalf("stand should lock community at 1, got %d", p.lockedCommunity)
	}

	frozen := e.playerTotal(p)
	e.community = append(e.community, card(deck.Clubs, deck.Ten))
	if e.playerTotal(p) != frozen {
		t.Errorf("standing player's total moved from %d to %d", frozen, e.playerTotal(p))
	}
}

func TestStandAfterCallLocksStanding(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	res := e.PerformHumanAction(Call, Payload{StandAfter: true})
	if !res.OK {
		t.Fatalf("call+stand rejected: %s", res.Reason)
	}
	if !e.players[0].Standing {
		t.Error("standAfter should lock standing")
	}
	if e.players[0].lockedCommunity != 0 {
		t.Errorf("standAfter in round 0 should lock community at 0, got %d", e.players[0].lockedCommunity)
	}
}

func TestBetReopensBetting(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Advance to round 1 where betting opens at 0
	e.PerformHumanAction(Call, Payload{})
	e.PerformAction(Call, Payload{}, SourceBot)
	e.PerformAction(Check, Payload{}, SourceBot)

	// Seat 1 opens, seat 2 checks behind, then... seat 2 has acted.
	if res := e.PerformAction(Check, Payload{}, SourceBot); !res.OK {
		t.Fatalf("seat 1 check rejected: %s", res.Reason)
	}
	if res := e.PerformAction(Check, Payload{}, SourceBot); !res.OK {
		t.Fatalf("seat 2 check rejected: %s", res.Reason)
	}

	// Human bets: everyone else must act again
	if e.currentTurn != 0 {
		t.Fatalf("expected human turn, got seat %d", e.currentTurn)
	}
	if res := e.PerformHumanAction(Bet, Payload{Amount: 4}); !res.OK {
		t.Fatalf("bet rejected: %s", res.Reason)
	}
	if e.currentBet != 4 {
		t.Errorf("current bet = %d, want 4", e.currentBet)
	}
	if e.players[1].HasActed || e.players[2].HasActed {
		t.Error("bet should reopen the round for the other seats")
	}
	if !e.players[0].HasActed {
		t.Error("the bettor stays acted")
	}
}

func TestBetBelowBigBlindIsRaisedToMinimum(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.PerformHumanAction(Call, Payload{})
	e.PerformAction(Call, Payload{}, SourceBot)
	e.PerformAction(Check, Payload{}, SourceBot)

	// Round 1, seat 1 to act with no bet outstanding
	if res := e.PerformAction(Bet, Payload{Amount: 1}, SourceBot); !res.OK {
		t.Fatalf("bet rejected: %s", res.Reason)
	}
	if e.players[1].RoundBet != e.bigBlindAmount {
		t.Errorf("bet should be floored at the big blind, got %d", e.players[1].RoundBet)
	}
}

func TestPartialAllInCall(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.players[0].Chips = 1 // owes 2, can only pay 1
	res := e.PerformHumanAction(Call, Payload{})
	if !res.OK {
		t.Fatalf("short call rejected: %s", res.Reason)
	}
	if e.players[0].Chips != 0 {
		t.Errorf("short caller should be all-in, chips = %d", e.players[0].Chips)
	}
	if e.players[0].LastAction != "Call 1 (all-in)" {
		t.Errorf("all-in call label = %q", e.players[0].LastAction)
	}
}

func TestAllStandingSkipsToShowdown(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	// Give each seat a known hand so the showdown order is fixed
	e.players[0].Hand = []deck.Card{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}
	e.players[1].Hand = []deck.Card{card(deck.Clubs, deck.Ten), card(deck.Diamonds, deck.Seven)}
	e.players[2].Hand = []deck.Card{card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Seven)}

	if res := e.PerformHumanAction(Call, Payload{StandAfter: true}); !res.OK {
		t.Fatalf("call+stand rejected: %s", res.Reason)
	}
	if res := e.PerformAction(Call, Payload{StandAfter: true}, SourceBot); !res.OK {
		t.Fatalf("call+stand rejected: %s", res.Reason)
	}
	if e.handComplete {
		t.Fatal("hand ended too early")
	}
	if res := e.PerformAction(Stand, Payload{}, SourceBot); !res.OK {
		t.Fatalf("stand rejected: %s", res.Reason)
	}

	if !e.handComplete {
		t.Fatal("all standing should cascade straight to showdown")
	}
	if len(e.community) != 0 {
		t.Errorf("no community card should be revealed, got %d", len(e.community))
	}
	// Seat 0 locked 19 before any community card: 100 - 2 call + 6 pot
	if e.players[0].Chips != 104 {
		t.Errorf("seat 0 chips = %d, want 104", e.players[0].Chips)
	}
}

func TestShowdownTieSplitsPot(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	e.players[0].Hand = []deck.Card{card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine)}
	e.players[1].Hand = []deck.Card{card(deck.Clubs, deck.Ten), card(deck.Diamonds, deck.Nine)}
	e.players[2].Hand = []deck.Card{card(deck.Spades, deck.Two), card(deck.Hearts, deck.Three)}
	for _, p := range e.players {
		p.Standing = true
		p.lockedCommunity = 0
	}
	e.pot = 9
	e.players[0].TotalBet = 3
	e.players[1].TotalBet = 3
	e.players[2].TotalBet = 3
	chips := []int{e.players[0].Chips, e.players[1].Chips, e.players[2].Chips}

	e.goToShowdown()

	if !e.handComplete {
		t.Fatal("showdown should complete the hand")
	}
	// 9 chips split two ways: 5 to the first winner, 4 to the second
	if d := e.players[0].Chips - chips[0]; d != 5 {
		t.Errorf("first winner delta = %d, want 5", d)
	}
	if d := e.players[1].Chips - chips[1]; d != 4 {
		t.Errorf("second winner delta = %d, want 4", d)
	}
	if d := e.players[2].Chips - chips[2]; d != 0 {
		t.Errorf("loser delta = %d, want 0", d)
	}
}

func TestShowdownAllBustIsDeadPot(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	for _, p := range e.players {
		p.Hand = []deck.Card{
			card(deck.Spades, deck.Ten),
			card(deck.Hearts, deck.Nine),
			card(deck.Clubs, deck.Five),
		}
		p.Standing = true
		p.lockedCommunity = 0
	}
	e.goToShowdown()

	if !e.handComplete {
		t.Fatal("showdown should complete the hand")
	}
	if e.handResult != "Showdown: all remaining players are bust." {
		t.Errorf("unexpected result: %q", e.handResult)
	}
}

func TestMinBuyInTopUpAtHandStart(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()
	e.concludeHand("test")

	e.players[1].Chips = 5 // below min buy-in of 20
	e.StartNewHand()
	if e.players[1].Chips+e.players[1].TotalBet != 100 {
		t.Errorf("short stack should top up to the starting stack, got %d (+%d posted)",
			e.players[1].Chips, e.players[1].TotalBet)
	}
}

func TestSetPlayerName(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)

	e.SetPlayerName("  Alice  ")
	if e.players[0].Name != "Alice" {
		t.Errorf("name = %q, want Alice", e.players[0].Name)
	}

	e.SetPlayerName("AVeryLongPlayerName")
	if e.players[0].Name != "AVeryLongPla" {
		t.Errorf("name should truncate to 12 chars, got %q", e.players[0].Name)
	}

	e.SetPlayerName("   ")
	if e.players[0].Name != "PLAYER" {
		t.Errorf("blank name should fall back to PLAYER, got %q", e.players[0].Name)
	}
}

func TestSetBlindStructure(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)

	e.SetBlindStructure(5, 10)
	if e.smallBlindAmount != 5 || e.bigBlindAmount != 10 {
		t.Errorf("blinds = %d/%d, want 5/10", e.smallBlindAmount, e.bigBlindAmount)
	}

	// Big blind is forced above the small blind
	e.SetBlindStructure(4, 2)
	if e.bigBlindAmount <= e.smallBlindAmount {
		t.Errorf("big blind %d should exceed small blind %d", e.bigBlindAmount, e.smallBlindAmount)
	}

	// Zero and negative inputs fall back to sane minimums
	e.SetBlindStructure(0, 0)
	if e.smallBlindAmount < 1 || e.bigBlindAmount <= e.smallBlindAmount {
		t.Errorf("degenerate blinds accepted: %d/%d", e.smallBlindAmount, e.bigBlindAmount)
	}
}

func TestSnapshotIsDeepCopied(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.StartNewHand()

	snap := e.VisibleState()
	if len(snap.Players[0].Hand) == 0 {
		t.Fatal("snapshot should include dealt hands")
	}
	original := e.players[0].Hand[0]
	snap.Players[0].Hand[0] = card(deck.Clubs, deck.Two)
	if e.players[0].Hand[0] != original {
		t.Error("mutating the snapshot must not touch engine state")
	}

	snap.Log[0] = "tampered"
	if e.log[0] == "tampered" {
		t.Error("mutating the snapshot log must not touch the engine log")
	}
}

func TestEventLogBounded(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	for i := 0; i < 50; i++ {
		e.logEvent("event")
	}
	if len(e.log) != maxLogEntries {
		t.Errorf("log length = %d, want %d", len(e.log), maxLogEntries)
	}
}

func TestLogIsMostRecentFirst(t *testing.T) {
	t.Parallel()
	e := newTestEngine(42)
	e.logEvent("first")
	e.logEvent("second")
	if e.log[0] != "second" || e.log[1] != "first" {
		t.Errorf("log order wrong: %v", e.log)
	}
}
