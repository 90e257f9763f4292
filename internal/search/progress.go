package search

import (
	"math"
	"time"
)

const (
	// SampleInterval is the minimum spacing of rate samples. Shorter windows
	// make the instantaneous rate jump around with batch flushes.
	SampleInterval = time.Second
	// MinDisplayRate hides samples taken while workers are still warming up.
	MinDisplayRate = 100.0
	// MaxPercent keeps the bar short of 100% until a match actually arrives.
	MaxPercent = 99.99
)

// sampler turns counter readings into progress samples.
type sampler struct {
	combinations float64
	interval     time.Duration
	minRate      float64

	prevAttempts uint64
	prevAt       time.Time
}

func newSampler(combinations float64) *sampler {
	return &sampler{
		combinations: combinations,
		interval:     SampleInterval,
		minRate:      MinDisplayRate,
	}
}

// reset sets the baseline for a fresh round counter.
func (s *sampler) reset(now time.Time) {
	s.prevAttempts = 0
	s.prevAt = now
}

// observe returns a sample when a full interval has passed and the rate is
// worth displaying.
func (s *sampler) observe(now time.Time, attempts uint64) (ProgressSample, bool) {
	dt := now.Sub(s.prevAt)
	if dt < s.interval {
		return ProgressSample{}, false
	}

	var rate float64
	if attempts > s.prevAttempts {
		rate = float64(attempts-s.prevAttempts) / dt.Seconds()
	}
	s.prevAttempts = attempts
	s.prevAt = now

	if rate <= s.minRate {
		return ProgressSample{}, false
	}

	p := ProgressSample{
		RoundAttempts: attempts,
		Rate:          rate,
		Percent:       Percent(attempts, s.combinations),
	}
	p.ETA, p.Imminent = ETA(attempts, s.combinations, rate)
	return p, true
}

// Percent is attempts as a share of the expected attempts, capped at MaxPercent.
func Percent(attempts uint64, combinations float64) float64 {
	if combinations <= 0 {
		return 0
	}
	return math.Min(MaxPercent, float64(attempts)/combinations*100)
}

// ETA estimates the time left to the expected attempt count. imminent is set
// when the expectation is already exceeded or the rate is effectively zero.
func ETA(attempts uint64, combinations, rate float64) (eta time.Duration, imminent bool) {
	remaining := combinations - float64(attempts)
	if remaining <= 0 || rate < 1e-9 {
		return 0, true
	}
	secs := remaining / rate
	if secs >= math.MaxInt64/float64(time.Second) {
		return time.Duration(math.MaxInt64), false
	}
	return time.Duration(secs * float64(time.Second)), false
}
