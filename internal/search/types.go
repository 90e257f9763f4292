package search

import (
	"time"

	"VanityGen/internal/crypto"
	"VanityGen/pkg/config"
)

// Match is a candidate that satisfied the predicate.
type Match struct {
	crypto.KeyPair
	Index   int // 1-based position in the run, set by the coordinator
	Worker  int
	FoundAt time.Time
}

// ProgressSample is derived on a display tick and never persisted.
type ProgressSample struct {
	Elapsed       time.Duration
	RoundAttempts uint64
	TotalAttempts uint64
	Rate          float64 // attempts per second over the last sampling interval
	Percent       float64 // capped at 99.99
	ETA           time.Duration
	Imminent      bool // attempts already past the expectation, or no usable rate
	Found         int
	Target        int
}

// MatchStats accompanies a persisted match.
type MatchStats struct {
	Elapsed       time.Duration
	RoundAttempts uint64
	TotalAttempts uint64
	Combinations  float64
	Found         int
	Target        int
}

// Luck is attempts spent over the expected attempts; below 1 is faster than average.
func (s MatchStats) Luck() float64 {
	if s.Combinations <= 0 {
		return 1
	}
	return float64(s.RoundAttempts) / s.Combinations
}

type Summary struct {
	Elapsed   time.Duration
	Attempts  uint64
	AvgRate   float64
	Found     int
	Target    int
	Cancelled bool
}

// Sink durably records matches. A failing Record aborts the run.
type Sink interface {
	Record(m Match) error
}

// Observer consumes the event stream of a run. Implementations must not block
// for long; the coordinator calls them from its polling loop.
type Observer interface {
	Started(spec config.SearchSpec, combinations float64)
	Progress(p ProgressSample)
	Found(m Match, st MatchStats)
	Finished(s Summary)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Started(config.SearchSpec, float64) {}
func (NopObserver) Progress(ProgressSample)            {}
func (NopObserver) Found(Match, MatchStats)            {}
func (NopObserver) Finished(Summary)                   {}
