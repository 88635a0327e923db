package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/BigSlickGames/21holdemmobile/internal/deck"
	"github.com/BigSlickGames/21holdemmobile/internal/rules"
)

// noTurn means no decision is pending
const noTurn = -1

// maxLogEntries bounds the human-readable event log
const maxLogEntries = 24

// Engine is the single authoritative owner of hand and table state.
// It is mutated only through StartNewHand, SetBlindStructure,
// SetPlayerName and PerformAction, invoked one at a time by a single
// driver loop. Bot strategies and renderers read through View and
// VisibleState only.
type Engine struct {
	rng        *rand.Rand
	logger     *log.Logger
	strategist Strategist

	smallBlindAmount int
	bigBlindAmount   int
	startingStack    int
	minBuyInMult     int

	players []*Player

	handNumber      int
	dealerIndex     int
	smallBlindIndex int
	bigBlindIndex   int
	roundIndex      int
	community       []deck.Card
	deck            *deck.Deck
	currentBet      int
	pot             int
	currentTurn     int
	handComplete    bool
	handResult      string
	log             []string
}

// Option configures an Engine during creation
type Option func(*Engine)

// WithStrategist sets the decision module used by PlayBotTurn
func WithStrategist(s Strategist) Option {
	return func(e *Engine) { e.strategist = s }
}

// WithBlinds overrides the starting blind structure
func WithBlinds(smallBlind, bigBlind int) Option {
	return func(e *Engine) {
		e.smallBlindAmount = smallBlind
		e.bigBlindAmount = bigBlind
	}
}

// WithStartingDealer sets which seat takes the button on the first hand
func WithStartingDealer(seat int) Option {
	return func(e *Engine) { e.dealerIndex = seat - 1 }
}

// NewEngine creates an engine for the configured three-seat table.
// The RNG is required so deals are reproducible in tests. The first
// hand is not started; callers drive the lifecycle via StartNewHand.
func NewEngine(rng *rand.Rand, logger *log.Logger, cfg *rules.Config, opts ...Option) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}
	if cfg == nil {
		cfg = rules.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid game config: %v", err))
	}
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		rng:              rng,
		logger:           logger.WithPrefix("game"),
		smallBlindAmount: cfg.Table.SmallBlind,
		bigBlindAmount:   cfg.Table.BigBlind,
		startingStack:    cfg.Table.StartingStack,
		minBuyInMult:     cfg.Table.MinBuyInMultiplier,
		dealerIndex:      -1,
		smallBlindIndex:  0,
		bigBlindIndex:    1,
		currentTurn:      noTurn,
	}

	e.players = []*Player{
		newPlayer(0, cfg.Table.PlayerName, true, StyleNone, e.startingStack),
	}
	for i, seat := range cfg.Bots {
		e.players = append(e.players, newPlayer(i+1, seat.Name, false, BotStyle(seat.Style), e.startingStack))
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.bigBlindAmount <= e.smallBlindAmount {
		e.bigBlindAmount = e.smallBlindAmount * 2
	}

	return e
}

// SetBlindStructure validates and updates blind sizes. The big blind is
// forced above the small blind; both are floored at 1.
func (e *Engine) SetBlindStructure(smallBlind, bigBlind int) {
	sb := smallBlind
	if sb < 1 {
		sb = rules.SmallBlind
	}
	bb := bigBlind
	if bb < sb+1 {
		bb = sb + 1
	}
	if bb <= sb {
		bb = sb * 2
	}
	e.smallBlindAmount = sb
	e.bigBlindAmount = bb
	e.logEvent(fmt.Sprintf("Blind level updated to %d/%d.", sb, bb))
	e.logger.Info("blind structure updated", "smallBlind", sb, "bigBlind", bb)
}

// SetPlayerName sanitizes and truncates the human player's display name
func (e *Engine) SetPlayerName(name string) {
	clean := strings.TrimSpace(name)
	if len(clean) > 12 {
		clean = clean[:12]
	}
	if clean == "" {
		clean = "PLAYER"
	}
	e.players[0].Name = clean
}

// MinBuyIn is the chip floor applied at the start of each hand
func (e *Engine) MinBuyIn() int {
	return e.bigBlindAmount * e.minBuyInMult
}

// StartNewHand rotates the dealer and blind seats, reshuffles, resets
// per-hand player state, posts blinds, deals one private card per seat
// and selects the first actor.
func (e *Engine) StartNewHand() {
	e.handNumber++
	e.dealerIndex = e.nextIndex(e.dealerIndex)
	e.smallBlindIndex = e.nextIndex(e.dealerIndex)
	e.bigBlindIndex = e.nextIndex(e.smallBlindIndex)
	e.deck = deck.NewShuffled(e.rng)
	e.community = nil
	e.roundIndex = 0
	e.currentBet = 0
	e.pot = 0
	e.currentTurn = noTurn
	e.handComplete = false
	e.handResult = ""
	e.log = nil

	minBuyIn := e.MinBuyIn()
	for _, p := range e.players {
		if p.Chips < minBuyIn {
			topped := max(e.startingStack, minBuyIn)
			e.logger.Debug("top-up applied", "player", p.Name, "chips", p.Chips, "newChips", topped)
			p.Chips = topped
		}
		p.resetForHand()
	}

	e.logEvent(fmt.Sprintf("Hand %d begins. Dealer: %s. Blinds %d/%d.",
		e.handNumber, e.players[e.dealerIndex].Name, e.smallBlindAmount, e.bigBlindAmount))
	e.logger.Info("hand started",
		"hand", e.handNumber,
		"dealer", e.players[e.dealerIndex].Name,
		"blinds", fmt.Sprintf("%d/%d", e.smallBlindAmount, e.bigBlindAmount))

	e.postBlind(e.smallBlindIndex, e.smallBlindAmount, "SB")
	e.postBlind(e.bigBlindIndex, e.bigBlindAmount, "BB")
	for _, p := range e.players {
		if p.RoundBet > e.currentBet {
			e.currentBet = p.RoundBet
		}
	}

	dealIndex := e.nextIndex(e.bigBlindIndex)
	for range e.players {
		e.dealPrivateCard(e.players[dealIndex])
		dealIndex = e.nextIndex(dealIndex)
	}

	e.currentTurn = e.findNextPlayerToAct(e.nextIndex(e.bigBlindIndex))
	e.logEvent(fmt.Sprintf("%s round starts.", rules.RoundName(e.roundIndex)))

	if e.currentTurn == noTurn {
		e.finishRound()
	}
}

func (e *Engine) nextIndex(index int) int {
	return (index + 1) % len(e.players)
}

func (e *Engine) logEvent(message string) {
	e.log = append([]string{message}, e.log...)
	if len(e.log) > maxLogEntries {
		e.log = e.log[:maxLogEntries]
	}
}

func (e *Engine) drawCard() (deck.Card, bool) {
	return e.deck.Draw()
}

func (e *Engine) dealPrivateCard(p *Player) (deck.Card, bool) {
	card, ok := e.drawCard()
	if ok {
		p.Hand = append(p.Hand, card)
	}
	return card, ok
}

// Posting a blind is a capped contribution, so a short stack may post
// an all-in blind below the nominal amount.
func (e *Engine) postBlind(playerIndex, amount int, label string) {
	p := e.players[playerIndex]
	posted := e.applyContribution(p, amount)
	p.LastAction = fmt.Sprintf("%s %d", label, posted)
	e.logEvent(fmt.Sprintf("%s posts %s (%d).", p.Name, label, posted))
}

// cardsForPlayer returns the cards that count toward a player's total:
// their private cards plus the community cards visible to them. Folded
// players with no locked count froze before seeing any community card.
func (e *Engine) cardsForPlayer(p *Player) []deck.Card {
	visible := len(e.community)
	if p.lockedCommunity != communityUnlocked {
		visible = min(p.lockedCommunity, visible)
	} else if p.Folded {
		visible = 0
	}

	cards := make([]deck.Card, 0, len(p.Hand)+visible)
	cards = append(cards, p.Hand...)
	cards = append(cards, e.community[:visible]...)
	return cards
}

func (e *Engine) playerTotal(p *Player) int {
	return deck.BestTotal(e.cardsForPlayer(p))
}

func (e *Engine) toCall(p *Player) int {
	return max(0, e.currentBet-p.RoundBet)
}

// applyContribution moves up to amount chips from the player to the
// pot, capped at the player's stack, and returns what was paid.
func (e *Engine) applyContribution(p *Player, amount int) int {
	paid := min(p.Chips, max(0, amount))
	if paid <= 0 {
		return 0
	}
	p.Chips -= paid
	p.RoundBet += paid
	p.TotalBet += paid
	e.pot += paid
	return paid
}

func (e *Engine) activeContenders() []*Player {
	var contenders []*Player
	for _, p := range e.players {
		if p.IsContender() {
			contenders = append(contenders, p)
		}
	}
	return contenders
}

func (e *Engine) allActiveStanding() bool {
	contenders := e.activeContenders()
	if len(contenders) == 0 {
		return false
	}
	for _, p := range contenders {
		if !p.Standing {
			return false
		}
	}
	return true
}

func (e *Engine) markBust(p *Player) bool {
	if p.Folded || p.Busted {
		return false
	}
	total := e.playerTotal(p)
	if total <= 21 {
		return false
	}
	p.Busted = true
	p.LastAction = fmt.Sprintf("Bust (%d)", total)
	e.logEvent(fmt.Sprintf("%s busts with %d.", p.Name, total))
	e.logger.Debug("player busted", "player", p.Name, "total", total)
	return true
}

func (e *Engine) refreshBusts() bool {
	changed := false
	for _, p := range e.players {
		if e.markBust(p) {
			changed = true
		}
	}
	return changed
}

// resetRoundActed re-opens the betting round for everyone except the
// raiser and players who can no longer act.
func (e *Engine) resetRoundActed(exemptID int) {
	for _, p := range e.players {
		if p.ID == exemptID {
			continue
		}
		if p.Folded || p.Busted || p.Chips <= 0 {
			continue
		}
		p.HasActed = false
	}
}

func (e *Engine) playerNeedsAction(p *Player) bool {
	if p.Folded || p.Busted || p.Chips <= 0 {
		return false
	}
	if e.toCall(p) > 0 {
		return true
	}
	return !p.HasActed
}

func (e *Engine) findNextPlayerToAct(startIndex int) int {
	index := startIndex
	for range e.players {
		if e.playerNeedsAction(e.players[index]) {
			return index
		}
		index = e.nextIndex(index)
	}
	return noTurn
}

// A betting round is complete when every contender with chips has
// matched the current bet and acted, or at most one contender remains.
func (e *Engine) isRoundComplete() bool {
	contenders := e.activeContenders()
	if len(contenders) <= 1 {
		return true
	}
	for _, p := range contenders {
		if p.Chips <= 0 {
			continue
		}
		if e.toCall(p) > 0 || !p.HasActed {
			return false
		}
	}
	return true
}

func (e *Engine) currentPlayer() *Player {
	if e.currentTurn == noTurn {
		return nil
	}
	return e.players[e.currentTurn]
}

func (e *Engine) seatValid(seat int) bool {
	return seat >= 0 && seat < len(e.players)
}

// Seat-based read accessors. Together these form the View interface
// consumed by bot strategies and the renderer.

// ToCall returns the chips a seat owes to match the current bet
func (e *Engine) ToCall(seat int) int {
	if !e.seatValid(seat) {
		return 0
	}
	return e.toCall(e.players[seat])
}

// PlayerTotal returns the best blackjack total of a seat's visible cards
func (e *Engine) PlayerTotal(seat int) int {
	if !e.seatValid(seat) {
		return 0
	}
	return e.playerTotal(e.players[seat])
}

// OpeningValue is the value of the seat's first private card alone:
// 11 for an Ace, 10 for ten-valued cards, face value otherwise.
func (e *Engine) OpeningValue(seat int) int {
	if !e.seatValid(seat) || len(e.players[seat].Hand) == 0 {
		return 0
	}
	return e.players[seat].Hand[0].HardValue()
}

// HandSize returns how many private cards a seat holds
func (e *Engine) HandSize(seat int) int {
	if !e.seatValid(seat) {
		return 0
	}
	return len(e.players[seat].Hand)
}

// Chips returns a seat's remaining stack
func (e *Engine) Chips(seat int) int {
	if !e.seatValid(seat) {
		return 0
	}
	return e.players[seat].Chips
}

// BaseStyle returns the style a bot seat was configured with
func (e *Engine) BaseStyle(seat int) BotStyle {
	if !e.seatValid(seat) {
		return StyleNone
	}
	return e.players[seat].BotStyle
}

// BigBlind returns the current big blind amount
func (e *Engine) BigBlind() int { return e.bigBlindAmount }

// SmallBlind returns the current small blind amount
func (e *Engine) SmallBlind() int { return e.smallBlindAmount }

// Pot returns the chips contributed this hand
func (e *Engine) Pot() int { return e.pot }

// RoundIndex returns the current betting stage (0..4)
func (e *Engine) RoundIndex() int { return e.roundIndex }

// StartingStack returns the configured starting stack
func (e *Engine) StartingStack() int { return e.startingStack }

// HandComplete reports whether the current hand has been resolved
func (e *Engine) HandComplete() bool { return e.handComplete }

// CurrentTurn returns the seat awaiting a decision, or -1 if none
func (e *Engine) CurrentTurn() int { return e.currentTurn }

// NumSeats returns the number of players at the table
func (e *Engine) NumSeats() int { return len(e.players) }

// IsHumanSeat reports whether a seat is played by the human
func (e *Engine) IsHumanSeat(seat int) bool {
	return e.seatValid(seat) && e.players[seat].IsHuman
}
