package game

import (
	"github.com/BigSlickGames/21holdemmobile/internal/deck"
	"github.com/BigSlickGames/21holdemmobile/internal/rules"
)

// PlayerSnapshot is the per-seat view a renderer may depend on
type PlayerSnapshot struct {
	ID         int
	Name       string
	IsHuman    bool
	Chips      int
	Hand       []deck.Card
	Folded     bool
	Busted     bool
	Standing   bool
	DoubleDown bool
	RaiseLock  bool

	// LockedCommunityCount is the number of community cards visible to
	// this seat, or -1 while unlocked.
	LockedCommunityCount int

	RoundBet   int
	TotalBet   int
	Total      int
	LastAction string
}

// Snapshot is an immutable copy of everything a renderer needs. It is
// the only state contract the presentation layer may depend on; every
// slice is deep-copied so no internal reference escapes the engine.
type Snapshot struct {
	HandNumber       int
	RoundIndex       int
	RoundName        string
	StartingStack    int
	MinBuyIn         int
	SmallBlindAmount int
	BigBlindAmount   int
	DealerIndex      int
	SmallBlindIndex  int
	BigBlindIndex    int

	// CurrentTurnIndex is the seat awaiting a decision, or -1
	CurrentTurnIndex int

	CurrentBet   int
	Pot          int
	Community    []deck.Card
	HandComplete bool
	HandResult   string
	Players      []PlayerSnapshot

	// Log holds up to 24 human-readable events, most recent first
	Log []string
}

// VisibleState builds the renderer snapshot for the current state
func (e *Engine) VisibleState() Snapshot {
	players := make([]PlayerSnapshot, len(e.players))
	for i, p := range e.players {
		hand := make([]deck.Card, len(p.Hand))
		copy(hand, p.Hand)
		players[i] = PlayerSnapshot{
			ID:                   p.ID,
			Name:                 p.Name,
			IsHuman:              p.IsHuman,
			Chips:                p.Chips,
			Hand:                 hand,
			Folded:               p.Folded,
			Busted:               p.Busted,
			Standing:             p.Standing,
			DoubleDown:           p.DoubleDown,
			RaiseLock:            p.RaiseLock,
			LockedCommunityCount: p.lockedCommunity,
			RoundBet:             p.RoundBet,
			TotalBet:             p.TotalBet,
			Total:                e.playerTotal(p),
			LastAction:           p.LastAction,
		}
	}

	community := make([]deck.Card, len(e.community))
	copy(community, e.community)

	log := make([]string, len(e.log))
	copy(log, e.log)

	return Snapshot{
		HandNumber:       e.handNumber,
		RoundIndex:       e.roundIndex,
		RoundName:        rules.RoundName(e.roundIndex),
		StartingStack:    e.startingStack,
		MinBuyIn:         e.MinBuyIn(),
		SmallBlindAmount: e.smallBlindAmount,
		BigBlindAmount:   e.bigBlindAmount,
		DealerIndex:      e.dealerIndex,
		SmallBlindIndex:  e.smallBlindIndex,
		BigBlindIndex:    e.bigBlindIndex,
		CurrentTurnIndex: e.currentTurn,
		CurrentBet:       e.currentBet,
		Pot:              e.pot,
		Community:        community,
		HandComplete:     e.handComplete,
		HandResult:       e.handResult,
		Players:          players,
		Log:              log,
	}
}
