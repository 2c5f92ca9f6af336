package acmatch

// automaton is the compiled, immutable node array together with the
// search-time traversal used to answer queries. It is safe for
// concurrent use by multiple goroutines: find only touches its own
// stack-local state.
type automaton struct {
	nodes         []node
	maxPatternLen int
	patternCount  int
	prefilter     *startBytePrefilter
}

// find returns the leftmost-longest match whose beginning is >= at, or
// false if the text holds no such match.
//
// The BFS conditioning performed at construction time guarantees that
// the first Location observed after entering a fresh scan is the
// longest match beginning at the leftmost position, and that DEAD is
// reached exactly when that result is decided — so the loop can return
// as soon as it sees DEAD, and must otherwise keep the last recorded
// match until end of text.
func (a *automaton) find(text []byte, at int) (Location, bool) {
	current := startState
	var last Location
	haveLast := false

	i := at
	for i < len(text) {
		if a.prefilter != nil && current == startState {
			next, ok := a.prefilter.next(text, i)
			if !ok {
				return last, haveLast
			}
			i = next
		}

		current = followFail(a.nodes, current, text[i])
		i++

		if current == deadState {
			if !haveLast {
				panic("acmatch: reached DEAD state without a prior match")
			}
			return last, true
		}

		if n := &a.nodes[current]; n.hasMatch() {
			last = Location{Match: n.matches[0], End: i}
			haveLast = true
		}
	}

	return last, haveLast
}
