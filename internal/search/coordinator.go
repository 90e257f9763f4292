package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"VanityGen/internal/crypto"
	"VanityGen/internal/patterns"
	"VanityGen/pkg/logx"
)

var (
	// ErrStalled means every worker of a round exited with neither a match nor a stop request.
	ErrStalled = errors.New("search stalled")
	// ErrSink means a found match could not be recorded.
	ErrSink = errors.New("result sink failed")
)

// Coordinator runs rounds of workers until the target count of matches is
// persisted or the context is cancelled. Each round ends after one match.
type Coordinator struct {
	opt          Options
	pred         *patterns.Predicate
	combinations float64
	sampler      *sampler

	start time.Time
	found int
	total uint64 // attempts of completed rounds
	last  *round
}

// round holds the state shared by one generation of workers.
type round struct {
	counter Counter
	stop    StopSignal
	results chan Match
	workers []*Worker

	done chan struct{} // closed once every worker returned
	err  error         // first worker error, valid after done
}

// New validates the spec before anything is spawned.
func New(opt Options) (*Coordinator, error) {
	if err := opt.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("search spec: %w", err)
	}
	if opt.Sink == nil {
		return nil, errors.New("search: nil sink")
	}
	opt.setDefaults()

	combos := patterns.Combinations(opt.Spec)
	return &Coordinator{
		opt:          opt,
		pred:         patterns.NewPredicate(opt.Spec),
		combinations: combos,
		sampler:      newSampler(combos),
	}, nil
}

// Run blocks until the target is reached, ctx is cancelled or a fatal error
// occurs. Cancellation is reported through Summary.Cancelled, not as an error.
func (c *Coordinator) Run(ctx context.Context) (Summary, error) {
	spec := c.opt.Spec
	c.start = time.Now()

	logx.S().Infow("search started",
		"prefix", spec.Prefix,
		"suffix", spec.Suffix,
		"contains", spec.Contains,
		"case_sensitive", spec.CaseSensitive,
		"target", spec.TargetCount,
		"workers", spec.Workers,
		"source", spec.Source,
		"combinations", c.combinations,
	)
	c.opt.Observer.Started(spec, c.combinations)

	var (
		runErr    error
		cancelled bool
	)
	for c.found < spec.TargetCount {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		m, err := c.runRound(ctx)
		if err != nil {
			runErr = err
			break
		}
		if m == nil {
			cancelled = true
			break
		}
	}

	sum := c.summary(cancelled)
	c.opt.Observer.Finished(sum)

	if runErr != nil {
		logx.S().Errorw("search failed", "found", sum.Found, "attempts", sum.Attempts, "err", runErr)
		return sum, runErr
	}
	logx.S().Infow("search stopped",
		"found", sum.Found,
		"target", sum.Target,
		"cancelled", sum.Cancelled,
		"attempts", sum.Attempts,
		"elapsed", sum.Elapsed,
	)
	return sum, nil
}

// runRound returns the accepted match, or nil with a nil error on cancellation.
func (c *Coordinator) runRound(ctx context.Context) (*Match, error) {
	n := c.opt.Spec.Workers
	r := &round{
		results: make(chan Match, n),
		done:    make(chan struct{}),
	}
	c.last = r

	var g errgroup.Group
	for i := 0; i < n; i++ {
		gen, err := c.opt.NewGenerator(i)
		if err != nil {
			r.stop.Stop()
			_ = g.Wait()
			return nil, fmt.Errorf("%w: worker %d: %w", crypto.ErrGeneration, i, err)
		}
		w := NewWorker(i, gen, c.pred, &r.counter, &r.stop, c.opt.BatchSize)
		r.workers = append(r.workers, w)
		g.Go(func() error { return w.Run(r.results) })
	}
	go func() {
		r.err = g.Wait()
		close(r.done)
	}()

	c.sampler.reset(time.Now())
	ticker := time.NewTicker(c.opt.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case m := <-r.results:
			return c.accept(r, m)

		case <-r.done:
			// a worker sends its match before returning
			select {
			case m := <-r.results:
				return c.accept(r, m)
			default:
			}
			c.total += r.counter.Load()
			return nil, errors.Join(
				fmt.Errorf("%w: all %d workers exited without a match", ErrStalled, n),
				r.err,
			)

		case <-ctx.Done():
			r.stop.Stop()
			c.join(r)
			c.total += r.counter.Load()
			return nil, nil

		case now := <-ticker.C:
			c.tick(now, r)
		}
	}
}

func (c *Coordinator) accept(r *round, m Match) (*Match, error) {
	// one match per round: stop the others before the disk write
	r.stop.Stop()

	m.Index = c.found + 1
	if err := c.opt.Sink.Record(m); err != nil {
		c.join(r)
		c.total += r.counter.Load()
		return nil, fmt.Errorf("%w: match #%d %s: %w", ErrSink, m.Index, m.Address, err)
	}
	c.found++

	c.join(r)
	roundAttempts := r.counter.Load()
	c.total += roundAttempts

	stats := MatchStats{
		Elapsed:       time.Since(c.start),
		RoundAttempts: roundAttempts,
		TotalAttempts: c.total,
		Combinations:  c.combinations,
		Found:         c.found,
		Target:        c.opt.Spec.TargetCount,
	}
	logx.S().Infow("FOUND",
		"index", m.Index,
		"address", m.Address,
		"worker", m.Worker,
		"round_attempts", roundAttempts,
		"elapsed", stats.Elapsed,
	)
	c.opt.Observer.Found(m, stats)
	return &m, nil
}

// join waits for the round's workers at most JoinTimeout. Goroutines cannot
// be killed: a late worker is abandoned and exits on its next stop check.
func (c *Coordinator) join(r *round) bool {
	t := time.NewTimer(c.opt.JoinTimeout)
	defer t.Stop()

	select {
	case <-r.done:
		return true
	case <-t.C:
		alive := 0
		for _, w := range r.workers {
			if w.State() == Running {
				alive++
			}
		}
		logx.S().Warnw("workers still running after join timeout, abandoning them",
			"alive", alive,
			"timeout", c.opt.JoinTimeout,
		)
		return false
	}
}

func (c *Coordinator) tick(now time.Time, r *round) {
	attempts := r.counter.Load()
	p, ok := c.sampler.observe(now, attempts)
	if !ok {
		return
	}
	p.Elapsed = now.Sub(c.start)
	p.TotalAttempts = c.total + attempts
	p.Found = c.found
	p.Target = c.opt.Spec.TargetCount

	logx.S().Debugw("progress",
		"round_attempts", p.RoundAttempts,
		"rate", p.Rate,
		"percent", p.Percent,
		"eta", p.ETA,
	)
	c.opt.Observer.Progress(p)
}

func (c *Coordinator) summary(cancelled bool) Summary {
	elapsed := time.Since(c.start)
	s := Summary{
		Elapsed:   elapsed,
		Attempts:  c.total,
		Found:     c.found,
		Target:    c.opt.Spec.TargetCount,
		Cancelled: cancelled,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.AvgRate = float64(c.total) / secs
	}
	return s
}
