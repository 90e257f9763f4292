package stream

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"VanityGen/pkg/logx"
)

const (
	// DefaultBuffer is the number of queued lines before progress lines are dropped.
	DefaultBuffer = 256
	// CriticalTimeout bounds the wait for room when queueing match and summary lines.
	CriticalTimeout = 2 * time.Second
	// DrainTimeout bounds Close when the destination stopped reading.
	DrainTimeout = 5 * time.Second
)

// Relay decouples the search loop from a destination that may be slow or
// stuck: one goroutine drains a bounded queue into the writer.
type Relay struct {
	w     io.Writer
	lines chan string
	done  chan struct{}

	criticalTimeout time.Duration
	drainTimeout    time.Duration

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

func NewRelay(w io.Writer, buffer int) *Relay {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	r := &Relay{
		w:     w,
		lines: make(chan string, buffer),
		done:  make(chan struct{}),

		criticalTimeout: CriticalTimeout,
		drainTimeout:    DrainTimeout,
	}
	go r.drain()
	return r
}

func (r *Relay) drain() {
	defer close(r.done)
	for line := range r.lines {
		if _, err := io.WriteString(r.w, line); err != nil {
			logx.S().Warnw("output stream write failed", "err", err)
		}
	}
}

// Send queues line. A non-critical line is dropped at once when the queue is
// full; a critical one waits at most CriticalTimeout. It reports whether the
// line was queued.
func (r *Relay) Send(line string, critical bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.dropped.Add(1)
		return false
	}

	if !critical {
		select {
		case r.lines <- line:
			return true
		default:
			r.dropped.Add(1)
			return false
		}
	}

	t := time.NewTimer(r.criticalTimeout)
	defer t.Stop()
	select {
	case r.lines <- line:
		return true
	case <-t.C:
		r.dropped.Add(1)
		logx.S().Warnw("output stream blocked, dropping line", "timeout", r.criticalTimeout)
		return false
	}
}

// Dropped is the number of lines discarded so far.
func (r *Relay) Dropped() uint64 { return r.dropped.Load() }

// Close stops accepting lines and waits up to DrainTimeout for the queue to flush.
func (r *Relay) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.lines)
	}
	r.mu.Unlock()

	t := time.NewTimer(r.drainTimeout)
	defer t.Stop()
	select {
	case <-r.done:
	case <-t.C:
		logx.S().Warnw("output stream did not drain before close", "timeout", r.drainTimeout)
	}
	return nil
}
