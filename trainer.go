package acmatch

import "fmt"

// trainer builds an automaton's node array from a pattern list in six
// phases: base-state allocation, trie construction, start/dead
// self-loop absorption, and breadth-first failure-link resolution with
// leftmost-longest conditioning.
type trainer struct {
	nodes         []node
	maxPatternLen int
}

func newTrainer() *trainer {
	t := &trainer{nodes: make([]node, 0, 3)}

	// Phase 1 — base states: FAIL, DEAD, START, all depth 0, fail=START.
	t.addNode(0)
	t.addNode(0)
	t.addNode(0)
	for i := range t.nodes {
		t.nodes[i].fail = startState
	}

	return t
}

func (t *trainer) addNode(depth int) uint32 {
	id := uint32(len(t.nodes))
	t.nodes = append(t.nodes, node{trans: newTransitions(depth), fail: startState, depth: depth})
	return id
}

// build runs all six phases over patterns, leaving t.nodes ready to back
// an automaton.
func (t *trainer) build(patterns []Pattern) error {
	if err := t.buildTrie(patterns); err != nil {
		return err
	}
	t.absorbStartSelfLoops()
	t.absorbDeadSelfLoops()
	t.resolveFailLinks()
	t.clampStartIfMatch()
	return nil
}

// Phase 2 — trie construction. Patterns are walked from START in
// declaration order; the first match recorded at any node is never
// displaced, so ties on identical pattern values resolve to the
// earliest-declared id.
func (t *trainer) buildTrie(patterns []Pattern) error {
	for _, p := range patterns {
		if len(p.Value) == 0 {
			return fmt.Errorf("acmatch: pattern %d: %w", p.ID, ErrEmptyPatternValue)
		}
		if len(p.Value) > t.maxPatternLen {
			t.maxPatternLen = len(p.Value)
		}

		cur := startState
		for depth, b := range p.Value {
			next := t.nodes[cur].next(b)
			if next == failState {
				next = t.addNode(depth + 1)
				t.nodes[cur].setNext(b, next)
			}
			cur = next
		}
		t.nodes[cur].matches = append(t.nodes[cur].matches, Match{ID: p.ID, Len: len(p.Value)})
	}
	return nil
}

// Phase 3 — START absorbs every byte it has no trie transition for, so
// search never drives START into FAIL.
func (t *trainer) absorbStartSelfLoops() {
	for b := 0; b < 256; b++ {
		if t.nodes[startState].next(byte(b)) == failState {
			t.nodes[startState].setNext(byte(b), startState)
		}
	}
}

// Phase 4 — DEAD absorbs every byte.
func (t *trainer) absorbDeadSelfLoops() {
	for b := 0; b < 256; b++ {
		t.nodes[deadState].setNext(byte(b), deadState)
	}
}

// Phase 6 — if START itself carries a match, every START self-loop is
// rewritten to DEAD. Unreachable for the non-empty patterns this
// package requires; kept so a future variant allowing empty patterns
// does not have to revisit this phase.
func (t *trainer) clampStartIfMatch() {
	if !t.nodes[startState].hasMatch() {
		return
	}
	for b := 0; b < 256; b++ {
		if t.nodes[startState].next(byte(b)) == startState {
			t.nodes[startState].setNext(byte(b), deadState)
		}
	}
}

// bfsPos is a Phase 5 queue entry: the node reached, and — if some match
// is still pending along the path taken to reach it — the depth at
// which that longest pending match began.
type bfsPos struct {
	id           uint32
	hasPending   bool
	pendingDepth int
}

// Phase 5 — BFS failure-link resolution with leftmost-longest
// conditioning.
//
// Each node's matches accumulate the matches of the state its fail-link
// resolves to, except when doing so could let a later, longer, already
// in-progress match be overtaken by a shorter suffix continuation; in
// that case the fail-link is rerouted to DEAD instead, so the automaton
// commits to the longer match it is already tracking.
func (t *trainer) resolveFailLinks() {
	queue := make([]bfsPos, 0, len(t.nodes))

	// Seed with every non-self transition out of START, skipping the
	// 256 START->START self-loops added in Phase 3.
	startHasMatch := t.nodes[startState].hasMatch() // vacuous for non-empty patterns
	for b := 0; b < 256; b++ {
		c := t.nodes[startState].next(byte(b))
		if c == startState {
			continue
		}

		pos := bfsPos{id: c}
		switch {
		case startHasMatch:
			pos.hasPending = true
			pos.pendingDepth = 0
		case t.nodes[c].hasMatch():
			length, _ := t.nodes[c].longestMatchLen()
			pos.hasPending = true
			pos.pendingDepth = t.nodes[c].depth - length + 1
		}

		// A top-level single-byte match must commit: once it fires the
		// automaton cannot keep scanning from this state.
		if t.nodes[c].hasMatch() {
			t.nodes[c].fail = deadState
		}

		queue = append(queue, pos)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		enqueuedAny := false
		for b := 0; b < 256; b++ {
			cid := t.nodes[p.id].next(byte(b))
			if cid == failState {
				continue
			}

			hasPending, pendingDepth := p.hasPending, p.pendingDepth
			if !hasPending && t.nodes[cid].hasMatch() {
				length, _ := t.nodes[cid].longestMatchLen()
				hasPending = true
				pendingDepth = t.nodes[cid].depth - length + 1
			}

			fail := followFail(t.nodes, t.nodes[p.id].fail, byte(b))

			if hasPending && t.nodes[cid].depth-pendingDepth+1 > t.nodes[fail].depth {
				// Rerouting to fail could let a longer, already
				// pending match be overtaken by a shorter suffix
				// continuation: commit instead.
				t.nodes[cid].fail = deadState
			} else {
				t.nodes[cid].fail = fail
				t.mergeMatches(fail, cid)
			}

			queue = append(queue, bfsPos{id: cid, hasPending: hasPending, pendingDepth: pendingDepth})
			enqueuedAny = true
		}

		// A terminal-like node with no extensions must not be
		// re-entered after its match fires.
		if t.nodes[p.id].hasMatch() && !enqueuedAny {
			t.nodes[p.id].fail = deadState
		}
	}
}

func (t *trainer) mergeMatches(from, to uint32) {
	if !t.nodes[from].hasMatch() {
		return
	}
	t.nodes[to].matches = append(t.nodes[to].matches, t.nodes[from].matches...)
}
