package game

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	Stand
	Double
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "stand", "double"}[a]
}

// ParseAction maps an action name back to its Action. The second return
// is false for unknown names.
func ParseAction(s string) (Action, bool) {
	for a := Fold; a <= Double; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return Fold, false
}

// Source identifies who is submitting an action. The engine rejects
// submissions whose source does not match the current actor's seat type.
type Source int

const (
	SourceHuman Source = iota
	SourceBot
)

func (s Source) String() string {
	if s == SourceBot {
		return "bot"
	}
	return "human"
}

// Payload carries the optional parameters of an action. Amount is the
// additional wager for bet/raise; StandAfter locks standing in the same
// turn as a call, bet or raise.
type Payload struct {
	Amount     int
	StandAfter bool
}

// Result reports whether an action was applied. Rejections carry a
// human-readable reason and leave the engine state untouched.
type Result struct {
	OK     bool
	Reason string
}

func reject(reason string) Result {
	return Result{OK: false, Reason: reason}
}

// WagerOption is a preset wager offered for a bet or raise. Amount is
// the chips beyond any call; Cost is the total chips the action takes.
type WagerOption struct {
	Label  string
	Amount int
	Cost   int
}

// BotStyle selects a bot decision profile
type BotStyle string

const (
	StyleNone         BotStyle = ""
	StyleConservative BotStyle = "conservative"
	StyleAggressive   BotStyle = "aggressive"
	StyleHighRisk     BotStyle = "high-risk"
)

// Decision is a bot's chosen action with an optional wager amount
type Decision struct {
	Action Action
	Amount int
}

// Strategist decides an action for the seat whose turn it is. It must
// only read state through the View it is given.
type Strategist interface {
	Decide(v View, seat int) Decision
}

// View is the read-only query surface the engine exposes to bot
// strategies and renderers. The engine is the only writer of game
// state; consumers hold this capability type instead of *Engine.
type View interface {
	AvailableActions(seat int) []Action
	WagerOptions(action Action, seat int) []WagerOption
	ToCall(seat int) int
	PlayerTotal(seat int) int
	OpeningValue(seat int) int
	HandSize(seat int) int
	Chips(seat int) int
	BaseStyle(seat int) BotStyle
	BigBlind() int
	Pot() int
	RoundIndex() int
	StartingStack() int
}
