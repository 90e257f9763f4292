package search

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VanityGen/internal/crypto"
	"VanityGen/internal/patterns"
	"VanityGen/pkg/config"
)

const (
	missAddr = "0xffffffffffffffffffffffffffffffffffffffff"
	hitAddr  = "0x0000000000000000000000000000000000000000"
)

// fixedGen returns the same address forever.
type fixedGen struct{ addr string }

func (g fixedGen) Next() (crypto.KeyPair, error) {
	return crypto.KeyPair{Address: g.addr}, nil
}

// failGen fails after ok successful candidates.
type failGen struct{ ok int }

func (g *failGen) Next() (crypto.KeyPair, error) {
	if g.ok <= 0 {
		return crypto.KeyPair{}, crypto.ErrGeneration
	}
	g.ok--
	return crypto.KeyPair{Address: missAddr}, nil
}

func zeroPrefix() *patterns.Predicate {
	s := config.Default()
	s.Prefix = "0"
	return patterns.NewPredicate(s)
}

func TestCounterConsistency(t *testing.T) {
	const workers = 8
	var (
		counter Counter
		stop    StopSignal
		wg      sync.WaitGroup
	)
	results := make(chan Match, workers)
	ws := make([]*Worker, workers)
	for i := range ws {
		// odd batch so every worker ends with a pending remainder
		ws[i] = NewWorker(i, fixedGen{missAddr}, zeroPrefix(), &counter, &stop, 7)
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			assert.NoError(t, w.Run(results))
		}(ws[i])
	}

	time.Sleep(50 * time.Millisecond)
	stop.Stop()
	wg.Wait()

	var sum uint64
	for _, w := range ws {
		assert.Equal(t, Stopped, w.State())
		sum += w.Attempts()
	}
	assert.Positive(t, sum)
	assert.Equal(t, sum, counter.Load())
	assert.Empty(t, results)
}

func TestWorkerEmitsOneMatch(t *testing.T) {
	var (
		counter Counter
		stop    StopSignal
	)
	results := make(chan Match, 1)
	w := NewWorker(3, fixedGen{hitAddr}, zeroPrefix(), &counter, &stop, 0)

	require.NoError(t, w.Run(results))

	require.Len(t, results, 1)
	m := <-results
	assert.Equal(t, hitAddr, m.Address)
	assert.Equal(t, 3, m.Worker)
	assert.False(t, m.FoundAt.IsZero())
	assert.Equal(t, uint64(1), counter.Load())
	assert.Equal(t, Stopped, w.State())
}

func TestWorkerMatchFlushesPendingBatch(t *testing.T) {
	var (
		counter Counter
		stop    StopSignal
	)
	gen := &sequenceGen{addrs: []string{missAddr, missAddr, missAddr, hitAddr}}
	w := NewWorker(0, gen, zeroPrefix(), &counter, &stop, 1000)

	results := make(chan Match, 1)
	require.NoError(t, w.Run(results))
	assert.Equal(t, uint64(4), counter.Load())
	assert.Equal(t, uint64(4), w.Attempts())
}

type sequenceGen struct {
	addrs []string
	i     int
}

func (g *sequenceGen) Next() (crypto.KeyPair, error) {
	a := g.addrs[g.i%len(g.addrs)]
	g.i++
	return crypto.KeyPair{Address: a}, nil
}

func TestWorkerGenerationFailure(t *testing.T) {
	var (
		counter Counter
		stop    StopSignal
	)
	w := NewWorker(1, &failGen{ok: 5}, zeroPrefix(), &counter, &stop, 2)

	err := w.Run(make(chan Match, 1))
	assert.True(t, errors.Is(err, crypto.ErrGeneration))
	assert.Equal(t, uint64(5), counter.Load())
	assert.Equal(t, Stopped, w.State())
}

func TestWorkerHonoursEarlyStop(t *testing.T) {
	var (
		counter Counter
		stop    StopSignal
	)
	stop.Stop()
	w := NewWorker(0, fixedGen{hitAddr}, zeroPrefix(), &counter, &stop, 0)

	results := make(chan Match, 1)
	require.NoError(t, w.Run(results))
	assert.Empty(t, results)
	assert.Zero(t, counter.Load())
	assert.Equal(t, "stopped", w.State().String())
}
