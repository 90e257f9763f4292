package search

import (
	"time"

	"VanityGen/internal/crypto"
	"VanityGen/internal/mnemonic"
	"VanityGen/pkg/config"
)

const (
	// DefaultPollInterval bounds every wait of the coordinator on the result
	// channel. Between polls it refreshes progress and re-checks cancellation.
	DefaultPollInterval = 500 * time.Millisecond
	// DefaultJoinTimeout bounds how long a finished round waits for its workers.
	DefaultJoinTimeout = time.Second
)

// GeneratorFactory builds the generator owned by one worker.
type GeneratorFactory func(worker int) (crypto.Generator, error)

type Options struct {
	Spec     config.SearchSpec
	Sink     Sink
	Observer Observer // nil = NopObserver

	NewGenerator GeneratorFactory // nil = GeneratorFor(Spec)

	BatchSize    int
	PollInterval time.Duration
	JoinTimeout  time.Duration
}

func (o *Options) setDefaults() {
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.NewGenerator == nil {
		o.NewGenerator = GeneratorFor(o.Spec)
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.JoinTimeout <= 0 {
		o.JoinTimeout = DefaultJoinTimeout
	}
}

// GeneratorFor returns the factory matching spec.Source. Every call yields an
// independent generator.
func GeneratorFor(spec config.SearchSpec) GeneratorFactory {
	switch spec.Source {
	case config.SourceMnemonic:
		m := spec.Mnemonic
		return func(int) (crypto.Generator, error) {
			return mnemonic.NewKeys(m.Strength, m.Passphrase, m.Account), nil
		}
	default:
		return func(int) (crypto.Generator, error) {
			return crypto.NewRandomKeys(nil), nil
		}
	}
}
