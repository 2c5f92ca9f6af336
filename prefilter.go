package acmatch

// startBytePrefilter fast-forwards the search loop, while the automaton
// sits in START, to the next occurrence of one of a small set of
// candidate first bytes drawn from the pattern set. It never changes
// which Location is returned, only how many bytes find must examine to
// reach it: once a candidate position is reached, the automaton
// performs the exact same transition it would have on every
// intervening byte.
//
// It is only built when every pattern's first byte is ASCII and the
// patterns collectively use three or fewer distinct first bytes — the
// same cheap applicability test a hand-rolled Aho-Corasick prefilter
// uses before falling back to stepping the automaton byte by byte.
type startBytePrefilter struct {
	bytes []byte
}

func newStartBytePrefilter(patterns []Pattern) *startBytePrefilter {
	var bytes []byte
	seen := make(map[byte]bool)
	for _, p := range patterns {
		if len(p.Value) == 0 {
			return nil
		}
		b := p.Value[0]
		if b > 0x7F {
			return nil
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		bytes = append(bytes, b)
		if len(bytes) > 3 {
			return nil
		}
	}
	if len(bytes) == 0 {
		return nil
	}
	return &startBytePrefilter{bytes: bytes}
}

// next returns the first index >= at in haystack holding one of the
// prefilter's candidate bytes, or false if none remains.
func (p *startBytePrefilter) next(haystack []byte, at int) (int, bool) {
	for i := at; i < len(haystack); i++ {
		for _, b := range p.bytes {
			if haystack[i] == b {
				return i, true
			}
		}
	}
	return 0, false
}
