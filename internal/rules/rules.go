// Package rules holds the table stakes and round structure for 21 Hold'em.
package rules

// Default table stakes
const (
	SmallBlind         = 1
	BigBlind           = 2
	StartingStack      = 100
	MinBuyInMultiplier = 10
)

// RoundSequence names the five betting stages of a hand. One community
// card is revealed between stages, so a full hand sees four.
var RoundSequence = [5]string{
	"Pre-Action",
	"Action",
	"Stage",
	"Show",
	"Caboose",
}

// NumRounds is the number of betting stages per hand.
const NumRounds = len(RoundSequence)

// FinalRound is the index of the last betting stage.
const FinalRound = NumRounds - 1

// RoundName returns the display name for a round index, clamping
// out-of-range indices to the nearest stage.
func RoundName(index int) string {
	if index < 0 {
		index = 0
	}
	if index > FinalRound {
		index = FinalRound
	}
	return RoundSequence[index]
}

// BlindPreset is a selectable blind level
type BlindPreset struct {
	ID         string
	Label      string
	SmallBlind int
	BigBlind   int
}

// BlindPresets are the blind levels offered by the shell UI
var BlindPresets = []BlindPreset{
	{ID: "low", Label: "1 / 2", SmallBlind: 1, BigBlind: 2},
	{ID: "mid", Label: "2 / 4", SmallBlind: 2, BigBlind: 4},
	{ID: "high", Label: "5 / 10", SmallBlind: 5, BigBlind: 10},
}

// PresetByID returns the blind preset with the given id, or nil.
func PresetByID(id string) *BlindPreset {
	for i := range BlindPresets {
		if BlindPresets[i].ID == id {
			return &BlindPresets[i]
		}
	}
	return nil
}
