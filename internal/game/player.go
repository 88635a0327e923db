package game

import "github.com/BigSlickGames/21holdemmobile/internal/deck"

// communityUnlocked marks a player who still sees every community card.
// Folding, standing or doubling locks the count at that moment.
const communityUnlocked = -1

// Player represents one seat at the table. Players persist across
// hands; chips carry over while the per-hand fields reset each deal.
type Player struct {
	ID       int
	Name     string
	IsHuman  bool
	BotStyle BotStyle

	Chips int
	Hand  []deck.Card

	Folded     bool
	Busted     bool
	Standing   bool
	DoubleDown bool
	RaiseLock  bool

	// lockedCommunity is how many community cards this player can see,
	// or communityUnlocked while the hand is still live for them.
	lockedCommunity int

	RoundBet   int
	TotalBet   int
	HasActed   bool
	LastAction string
}

func newPlayer(id int, name string, isHuman bool, style BotStyle, chips int) *Player {
	p := &Player{
		ID:       id,
		Name:     name,
		IsHuman:  isHuman,
		BotStyle: style,
		Chips:    chips,
	}
	p.resetForHand()
	return p
}

func (p *Player) resetForHand() {
	p.Hand = nil
	p.Folded = false
	p.Busted = false
	p.Standing = false
	p.DoubleDown = false
	p.RaiseLock = false
	p.lockedCommunity = communityUnlocked
	p.RoundBet = 0
	p.TotalBet = 0
	p.HasActed = false
	p.LastAction = "Waiting"
}

// IsContender returns true while the player is neither folded nor busted
func (p *Player) IsContender() bool {
	return !p.Folded && !p.Busted
}
