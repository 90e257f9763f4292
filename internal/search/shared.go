package search

import "sync/atomic"

// Counter is the attempt counter shared by the workers of one round.
// Workers add in batches, so reads between flushes lag behind.
type Counter struct {
	n atomic.Uint64
}

func (c *Counter) Add(delta uint64) {
	if delta != 0 {
		c.n.Add(delta)
	}
}

func (c *Counter) Load() uint64 { return c.n.Load() }

// StopSignal is the cooperative stop flag of one round.
type StopSignal struct {
	stopped atomic.Bool
}

func (s *StopSignal) Stop()         { s.stopped.Store(true) }
func (s *StopSignal) Stopped() bool { return s.stopped.Load() }
