package acmatch

// Location is a runtime hit: a Match together with the exclusive end
// offset of the matched span in the searched text.
type Location struct {
	Match Match
	End   int
}

// Beginning returns the inclusive start offset of the matched span.
func (l Location) Beginning() int {
	return l.End - l.Match.Len
}
