package acmatch

import (
	"bytes"
	"strings"
	"testing"
)

// bruteForceNext is a naive O(n*m) reference implementation of
// leftmost-longest search, used to cross-check the automaton's output
// against arbitrary pattern sets and text during fuzzing.
func bruteForceNext(patterns []Pattern, text []byte, at int) (Location, bool) {
	for begin := at; begin <= len(text); begin++ {
		bestIdx, bestLen := -1, -1
		for i, p := range patterns {
			if len(p.Value) == 0 {
				continue
			}
			end := begin + len(p.Value)
			if end > len(text) {
				continue
			}
			if !bytes.Equal(text[begin:end], p.Value) {
				continue
			}
			if len(p.Value) > bestLen {
				bestLen = len(p.Value)
				bestIdx = i
			}
		}
		if bestIdx >= 0 {
			p := patterns[bestIdx]
			return Location{Match: Match{ID: p.ID, Len: len(p.Value)}, End: begin + len(p.Value)}, true
		}
	}
	return Location{}, false
}

func FuzzMatcher_AgreesWithBruteForce(f *testing.F) {
	f.Add("bc|ghi|o p|qr", "abc def ghi jkl mno pqr abc")
	f.Add("a", "aa")
	f.Add("qwerty|werty|erty", "qwerty")
	f.Add("ab|ab", "abcd")
	f.Add("abcd|bce|b", "abce")
	f.Add("a|abcdef|abc|abcdefg", "abcdefghz")
	f.Add("", "")
	f.Add("x", "")

	f.Fuzz(func(t *testing.T, patternSpec, text string) {
		var patterns []Pattern
		for _, v := range strings.Split(patternSpec, "|") {
			if v == "" {
				continue
			}
			patterns = append(patterns, Pattern{ID: len(patterns), Value: []byte(v)})
			if len(patterns) >= 12 {
				break
			}
		}
		if len(text) > 2048 {
			text = text[:2048]
		}
		txt := []byte(text)

		m, err := New(Config{Patterns: patterns})
		if err != nil {
			return
		}

		locs := m.All(txt, 0)

		prevEnd := 0
		for i, loc := range locs {
			begin := loc.Beginning()
			if begin < 0 || loc.End > len(txt) || begin >= loc.End {
				t.Fatalf("location %d out of range: %+v over text of length %d", i, loc, len(txt))
			}
			if !bytes.Equal(txt[begin:loc.End], patterns[loc.Match.ID].Value) {
				t.Fatalf("location %d span does not hold pattern %d's value: %+v", i, loc.Match.ID, loc)
			}
			if begin < prevEnd {
				t.Fatalf("location %d begins at %d, before previous end %d", i, begin, prevEnd)
			}
			prevEnd = loc.End

			want, ok := bruteForceNext(patterns, txt, begin)
			if !ok || want.Beginning() != begin || want.Match.ID != loc.Match.ID || want.Match.Len != loc.Match.Len {
				t.Fatalf("location %d = %+v, brute force @ %d = (%+v, %v)", i, loc, begin, want, ok)
			}
		}

		// All must stop only when no further match exists: brute force
		// from the final position reached must agree that there is none.
		wantTail, wantOk := bruteForceNext(patterns, txt, prevEnd)
		gotTail, gotOk := m.Next(txt, prevEnd)
		if gotOk != wantOk || (gotOk && (gotTail.Match != wantTail.Match || gotTail.End != wantTail.End)) {
			t.Fatalf("All stopped early at %d: Next there = (%+v,%v), brute force = (%+v,%v)",
				prevEnd, gotTail, gotOk, wantTail, wantOk)
		}
	})
}
