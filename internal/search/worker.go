package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"VanityGen/internal/crypto"
	"VanityGen/internal/patterns"
	"VanityGen/pkg/logx"
)

// DefaultBatchSize is how many attempts a worker counts locally before
// flushing them into the shared counter.
const DefaultBatchSize = 2000

type WorkerState int32

const (
	Running WorkerState = iota
	Stopped
)

func (s WorkerState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Worker loops generate → match until it finds one match or sees the stop signal.
type Worker struct {
	id      int
	gen     crypto.Generator
	pred    *patterns.Predicate
	counter *Counter
	stop    *StopSignal
	batch   uint64

	state    atomic.Int32
	attempts atomic.Uint64 // total made by this worker, for reporting
}

func NewWorker(id int, gen crypto.Generator, pred *patterns.Predicate, counter *Counter, stop *StopSignal, batch int) *Worker {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Worker{
		id:      id,
		gen:     gen,
		pred:    pred,
		counter: counter,
		stop:    stop,
		batch:   uint64(batch),
	}
}

func (w *Worker) State() WorkerState { return WorkerState(w.state.Load()) }

// Attempts is the exact number of candidates this worker generated. Valid once stopped.
func (w *Worker) Attempts() uint64 { return w.attempts.Load() }

// Run executes the hot loop. The results channel must have room for this
// worker's single send; the coordinator sizes it to one slot per worker.
// A generation error ends this worker only.
func (w *Worker) Run(results chan<- Match) error {
	var local, total uint64
	defer func() {
		w.counter.Add(local)
		w.attempts.Store(total)
		w.state.Store(int32(Stopped))
	}()

	for !w.stop.Stopped() {
		kp, err := w.gen.Next()
		if err != nil {
			logx.S().Errorw("worker generation failed", "worker", w.id, "attempts", total, "err", err)
			return fmt.Errorf("worker %d: %w", w.id, err)
		}
		local++
		total++

		if w.pred.Match(kp.Address) {
			w.counter.Add(local)
			local = 0
			results <- Match{KeyPair: kp, Worker: w.id, FoundAt: time.Now()}
			return nil
		}

		if local >= w.batch {
			w.counter.Add(local)
			local = 0
		}
	}
	return nil
}
