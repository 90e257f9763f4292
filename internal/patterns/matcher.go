package patterns

import (
	"math"
	"strings"

	"VanityGen/pkg/config"
)

// Predicate decides whether an address satisfies a search spec.
// Constraints are case-folded once here, never per check.
type Predicate struct {
	prefix        string
	suffix        string
	contains      string
	caseSensitive bool
}

func NewPredicate(spec config.SearchSpec) *Predicate {
	p := &Predicate{
		prefix:        spec.Prefix,
		suffix:        spec.Suffix,
		contains:      spec.Contains,
		caseSensitive: spec.CaseSensitive,
	}
	if !p.caseSensitive {
		p.prefix = strings.ToLower(p.prefix)
		p.suffix = strings.ToLower(p.suffix)
		p.contains = strings.ToLower(p.contains)
	}
	return p
}

// Match reports whether addr (0x-prefixed or bare 40-hex body) matches.
// Checks run prefix, suffix, contains and stop at the first failure;
// the prefix rejects most candidates and is the cheapest.
func (p *Predicate) Match(addr string) bool {
	body := Body(addr)
	if !p.caseSensitive {
		body = strings.ToLower(body)
	}
	if p.prefix != "" && !strings.HasPrefix(body, p.prefix) {
		return false
	}
	if p.suffix != "" && !strings.HasSuffix(body, p.suffix) {
		return false
	}
	if p.contains != "" && !strings.Contains(body, p.contains) {
		return false
	}
	return true
}

// Body strips the 0x marker.
func Body(addr string) string {
	if len(addr) >= 2 && addr[0] == '0' && (addr[1] == 'x' || addr[1] == 'X') {
		return addr[2:]
	}
	return addr
}

// Combinations is the expected number of attempts per match, assuming a
// uniform hex alphabet over every constrained character. Powers of 16 are
// exact in float64 for any pattern that fits an address.
func Combinations(spec config.SearchSpec) float64 {
	return math.Pow(16, float64(spec.PatternLen()))
}

// Probability is the chance that a single candidate matches.
func Probability(spec config.SearchSpec) float64 {
	return 1 / Combinations(spec)
}
