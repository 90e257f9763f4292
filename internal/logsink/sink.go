package logsink

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"VanityGen/internal/search"
	"VanityGen/pkg/config"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	rule       = "======================================================================"
	separator  = "----------------------------------------------------------------------"
)

// File is the append-only plaintext result log. The first record of a run
// is preceded by a header echoing the configuration.
type File struct {
	path  string
	spec  config.SearchSpec
	start time.Time

	mu         sync.Mutex
	headerDone bool
}

func New(path string, spec config.SearchSpec, start time.Time) (*File, error) {
	if err := EnsureDir(path); err != nil {
		return nil, err
	}
	return &File{path: path, spec: spec, start: start}, nil
}

func (f *File) Path() string { return f.path }

// Record appends one match and fsyncs before returning, so a reported match
// is on disk.
func (f *File) Record(m search.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var b strings.Builder
	if !f.headerDone {
		f.writeHeader(&b)
	}
	writeMatch(&b, m, f.spec.Mnemonic.Passphrase)

	out, err := OpenAppend(f.path)
	if err != nil {
		return fmt.Errorf("open %q: %w", f.path, err)
	}
	if _, err := out.WriteString(b.String()); err != nil {
		_ = out.Close()
		return fmt.Errorf("append %q: %w", f.path, err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return fmt.Errorf("sync %q: %w", f.path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", f.path, err)
	}
	f.headerDone = true
	return nil
}

func (f *File) writeHeader(b *strings.Builder) {
	s := f.spec
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "started_at: %s\n", f.start.Format(timeLayout))
	fmt.Fprintf(b, "prefix: %s\n", orNone(s.Prefix))
	fmt.Fprintf(b, "suffix: %s\n", orNone(s.Suffix))
	fmt.Fprintf(b, "contains: %s\n", orNone(s.Contains))
	fmt.Fprintf(b, "case_sensitive: %t\n", s.CaseSensitive)
	fmt.Fprintf(b, "target_count: %d\n", s.TargetCount)
	fmt.Fprintf(b, "workers: %d\n", s.Workers)
	fmt.Fprintf(b, "source: %s\n", s.Source)
	if s.Source == config.SourceMnemonic {
		fmt.Fprintf(b, "mnemonic_strength: %d\n", s.Mnemonic.Strength)
		fmt.Fprintf(b, "mnemonic_account: %d\n", s.Mnemonic.Account)
	}
	fmt.Fprintln(b, rule)
	fmt.Fprintln(b)
}

func writeMatch(b *strings.Builder, m search.Match, passphrase string) {
	fmt.Fprintf(b, "wallet #%d\n", m.Index)
	fmt.Fprintf(b, "address: %s\n", m.Address)
	fmt.Fprintf(b, "private_key [SECRET]: %s\n", m.PrivateHex())
	if m.Mnemonic != "" {
		fmt.Fprintf(b, "mnemonic [SECRET]: %s\n", m.Mnemonic)
		if passphrase != "" {
			fmt.Fprintf(b, "passphrase [SECRET]: %s\n", passphrase)
		}
		fmt.Fprintf(b, "path: %s\n", m.Path)
	}
	fmt.Fprintf(b, "found_at: %s\n", m.FoundAt.Format(timeLayout))
	fmt.Fprintln(b)
	fmt.Fprintln(b, separator)
	fmt.Fprintln(b)
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
