// Package acmatch implements multi-pattern substring search over a fixed
// set of byte patterns known at construction time.
//
// A Matcher compiles an Aho-Corasick automaton from the pattern list and
// answers three queries against arbitrary text and a starting offset:
// the next match (Next), every non-overlapping match from that offset
// forward (All), and whether some pattern begins exactly at a given
// offset (StartsAt). Match semantics are leftmost-longest: among
// candidate patterns that could begin at the earliest position, the one
// with the longest span wins; ties of equal length are broken by
// insertion order.
//
// Matches are byte-exact. There is no Unicode normalization or
// case-folding, no streaming input support, and no overlapping-match or
// standard-leftmost (first-match) mode.
package acmatch
