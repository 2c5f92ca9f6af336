package acmatch

import "fmt"

// Matcher is an immutable, compiled multi-pattern search automaton. A
// constructed Matcher may be shared freely by independent readers: no
// query mutates shared state.
type Matcher struct {
	auto *automaton
}

// New compiles a Matcher from cfg. Patterns are a borrowed, ordered
// sequence; New copies what it needs from them and does not retain the
// slice itself.
//
// New rejects cfg.Algorithm values it does not implement and patterns
// carrying a zero-length value; every other pattern list, including an
// empty one or one containing duplicate values under distinct ids, is
// accepted.
func New(cfg Config) (*Matcher, error) {
	if cfg.Algorithm != LeftmostLongest {
		return nil, fmt.Errorf("acmatch: %w", ErrUnsupportedAlgorithm)
	}

	tr := newTrainer()
	if err := tr.build(cfg.Patterns); err != nil {
		return nil, err
	}

	return &Matcher{auto: &automaton{
		nodes:         tr.nodes,
		maxPatternLen: tr.maxPatternLen,
		patternCount:  len(cfg.Patterns),
		prefilter:     newStartBytePrefilter(cfg.Patterns),
	}}, nil
}

// Next returns the leftmost-longest match beginning at or after at, or
// false if there is none. text is borrowed; at must satisfy
// 0 <= at <= len(text).
func (m *Matcher) Next(text []byte, at int) (Location, bool) {
	return m.auto.find(text, at)
}

// All returns every non-overlapping leftmost-longest match from at
// forward, in left-to-right order. The returned slice is freshly
// allocated and owned by the caller.
func (m *Matcher) All(text []byte, at int) []Location {
	var out []Location
	pos := at
	for pos < len(text) {
		loc, ok := m.auto.find(text, pos)
		if !ok {
			break
		}
		out = append(out, loc)

		next := loc.End
		if next <= pos {
			// Defensive: only reachable for a zero-length pattern,
			// which New rejects today.
			next = pos + 1
		}
		pos = next
	}
	return out
}

// StartsAt reports whether some pattern begins exactly at at, returning
// its Match if so.
func (m *Matcher) StartsAt(text []byte, at int) (Match, bool) {
	loc, ok := m.Next(text, at)
	if !ok || loc.Beginning() != at {
		return Match{}, false
	}
	return loc.Match, true
}

// PatternCount returns the number of patterns the Matcher was built
// from.
func (m *Matcher) PatternCount() int { return m.auto.patternCount }

// MaxPatternLen returns the byte length of the longest pattern the
// Matcher was built from.
func (m *Matcher) MaxPatternLen() int { return m.auto.maxPatternLen }
