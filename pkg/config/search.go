package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// AddressBodyLen is the number of hex characters after the 0x marker.
const AddressBodyLen = 40

var (
	// ErrNoConstraint is returned when prefix, suffix and contains are all empty.
	ErrNoConstraint = errors.New("at least one of prefix, suffix or contains must be set")
	// ErrInvalidPattern is returned for constraints no address could ever satisfy.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidCount is returned for a non-positive target_count or workers.
	ErrInvalidCount = errors.New("invalid count")
)

type Source string

const (
	SourcePrivKey  Source = "private"
	SourceMnemonic Source = "mnemonic"
)

// SearchSpec describes one vanity search run. Build it once and call Validate
// before handing it to the search engine.
type SearchSpec struct {
	Prefix        string `yaml:"prefix"`
	Suffix        string `yaml:"suffix"`
	Contains      string `yaml:"contains"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	TargetCount   int    `yaml:"target_count"`
	Workers       int    `yaml:"workers"`

	Source   Source       `yaml:"source"`
	Mnemonic MnemonicSpec `yaml:"mnemonic"`
}

type MnemonicSpec struct {
	Strength   int    `yaml:"strength"` // 128 = 12 words, 256 = 24 words
	Passphrase string `yaml:"passphrase"`
	Account    int    `yaml:"account"` // m/44'/60'/0'/0/<account>
}

// Default returns a spec with the engine defaults and no constraints.
func Default() SearchSpec {
	return SearchSpec{
		TargetCount: 1,
		Workers:     runtime.NumCPU(),
		Source:      SourcePrivKey,
		Mnemonic:    MnemonicSpec{Strength: 128},
	}
}

// Load reads a search spec from a YAML file on top of Default. A zero or
// missing workers field becomes defaultWorkers (all CPUs when <= 0).
// The result is normalized but not validated, so flags can still override it.
func Load(path string, defaultWorkers int) (SearchSpec, error) {
	spec := Default()

	f, err := os.Open(path)
	if err != nil {
		return spec, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&spec); err != nil {
		return spec, fmt.Errorf("decode yaml %q: %w", path, err)
	}
	spec.Normalize(defaultWorkers)
	return spec, nil
}

// Normalize trims whitespace, drops a 0x marker from the prefix and fills
// unset fields with defaults. workers 0 means defaultWorkers, or every CPU
// when that is not positive. target_count is left for Validate.
func (s *SearchSpec) Normalize(defaultWorkers int) {
	s.Prefix = strings.TrimSpace(s.Prefix)
	if len(s.Prefix) >= 2 && (s.Prefix[:2] == "0x" || s.Prefix[:2] == "0X") {
		s.Prefix = s.Prefix[2:]
	}
	s.Suffix = strings.TrimSpace(s.Suffix)
	s.Contains = strings.TrimSpace(s.Contains)

	if s.Workers == 0 {
		s.Workers = defaultWorkers
		if s.Workers <= 0 {
			s.Workers = runtime.NumCPU()
		}
	}
	if s.Source == "" {
		s.Source = SourcePrivKey
	}
	if s.Mnemonic.Strength == 0 {
		s.Mnemonic.Strength = 128
	}
}

// Validate reports the first reason the spec cannot run.
func (s *SearchSpec) Validate() error {
	if s == nil {
		return errors.New("nil search spec")
	}
	if s.Prefix == "" && s.Suffix == "" && s.Contains == "" {
		return ErrNoConstraint
	}
	for _, p := range []struct{ name, val string }{
		{"prefix", s.Prefix},
		{"suffix", s.Suffix},
		{"contains", s.Contains},
	} {
		if err := validateHex(p.val); err != nil {
			return fmt.Errorf("%s %q: %w", p.name, p.val, err)
		}
	}
	if n := s.PatternLen(); n > AddressBodyLen {
		return fmt.Errorf("%w: combined pattern length %d exceeds %d", ErrInvalidPattern, n, AddressBodyLen)
	}
	if s.TargetCount < 1 {
		return fmt.Errorf("%w: target_count must be >= 1, got %d", ErrInvalidCount, s.TargetCount)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidCount, s.Workers)
	}

	switch s.Source {
	case SourcePrivKey:
	case SourceMnemonic:
		switch s.Mnemonic.Strength {
		case 128, 160, 192, 224, 256:
		default:
			return errors.New("mnemonic.strength must be one of 128, 160, 192, 224, 256")
		}
		if s.Mnemonic.Account < 0 {
			return errors.New("mnemonic.account must be >= 0")
		}
	default:
		return fmt.Errorf("source must be one of: %s, %s", SourcePrivKey, SourceMnemonic)
	}
	return nil
}

// PatternLen is the number of constrained characters in the address body.
func (s *SearchSpec) PatternLen() int {
	return len(s.Prefix) + len(s.Suffix) + len(s.Contains)
}

func validateHex(v string) error {
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return fmt.Errorf("%w: %q is not a hex digit", ErrInvalidPattern, c)
		}
	}
	return nil
}
