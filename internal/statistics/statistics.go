// Package statistics aggregates simulated hand results for strategy
// comparison.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Outcome classifies how a hand ended.
type Outcome string

const (
	OutcomeShowdown    Outcome = "showdown"
	OutcomeElimination Outcome = "elimination"
	OutcomeInstant21   Outcome = "instant-21"
	OutcomeDeadPot     Outcome = "dead-pot"
)

// HandRecord is the outcome of a single hand from the tracked seat's
// perspective.
type HandRecord struct {
	NetBB        float64 // net big blinds won or lost
	Seed         int64   // RNG seed for this hand, for replay
	Outcome      Outcome // how the hand resolved
	RoundsPlayed int     // betting rounds reached (1-5)
	FinalPot     int     // pot size in chips when the hand ended
}

// SeatStats tracks per-dealer-position aggregates.
type SeatStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics accumulates results across a simulation run.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // all values, for median and percentiles

	ShowdownWins    int
	EliminationWins int
	Instant21Wins   int
	DeadPots        int

	ShowdownBB    float64 // net from hands that reached showdown
	NonShowdownBB float64 // net from every other resolution
	AllBB         float64 // total, for the ledger check

	// DealerResults indexes by the tracked seat's offset from the
	// dealer button (0 = on the button).
	DealerResults [3]SeatStats

	MaxPotChips int
	BigPots     int // pots of at least 25 big blinds
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandRecord, dealerOffset int) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)
	s.AllBB += netBB

	switch result.Outcome {
	case OutcomeShowdown:
		s.ShowdownBB += netBB
		if netBB > 0 {
			s.ShowdownWins++
		}
	case OutcomeElimination:
		s.NonShowdownBB += netBB
		if netBB > 0 {
			s.EliminationWins++
		}
	case OutcomeInstant21:
		s.NonShowdownBB += netBB
		if netBB > 0 {
			s.Instant21Wins++
		}
	default:
		s.NonShowdownBB += netBB
		s.DeadPots++
	}

	if dealerOffset >= 0 && dealerOffset < len(s.DealerResults) {
		s.DealerResults[dealerOffset].Hands++
		s.DealerResults[dealerOffset].SumBB += netBB
		s.DealerResults[dealerOffset].SumBB2 += netBB * netBB
	}

	if result.FinalPot > s.MaxPotChips {
		s.MaxPotChips = result.FinalPot
	}
	if float64(result.FinalPot) >= 25*2 {
		s.BigPots++
	}
}

// Merge folds another statistics block into this one. Workers each
// accumulate locally and merge at the end of a run.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.EliminationWins += other.EliminationWins
	s.Instant21Wins += other.Instant21Wins
	s.DeadPots += other.DeadPots
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB
	for i := range s.DealerResults {
		s.DealerResults[i].Hands += other.DealerResults[i].Hands
		s.DealerResults[i].SumBB += other.DealerResults[i].SumBB
		s.DealerResults[i].SumBB2 += other.DealerResults[i].SumBB2
	}
	if other.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = other.MaxPotChips
	}
	s.BigPots += other.BigPots
}

// Mean returns the arithmetic mean in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of all results.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the interpolated value at p (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// DealerMean returns the mean result for a dealer offset (0-2).
func (s *Statistics) DealerMean(offset int) float64 {
	if offset < 0 || offset >= len(s.DealerResults) {
		return 0
	}
	ds := s.DealerResults[offset]
	if ds.Hands == 0 {
		return 0
	}
	return ds.SumBB / float64(ds.Hands)
}

// IsLedgerBalanced checks that the outcome buckets sum to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks internal consistency of the accumulated data.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	totalWins := s.ShowdownWins + s.EliminationWins + s.Instant21Wins
	if totalWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", totalWins, s.Hands)
	}

	dealerHands := 0
	for _, ds := range s.DealerResults {
		dealerHands += ds.Hands
	}
	if dealerHands != s.Hands {
		return fmt.Errorf("dealer offset hands total (%d) does not match total hands (%d)",
			dealerHands, s.Hands)
	}

	return nil
}
