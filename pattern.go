package acmatch

// Pattern is an input entity supplied at construction time: a
// caller-chosen integer id and the byte sequence to search for.
//
// IDs are opaque labels returned verbatim with each match; the core
// does not require them to be unique. Duplicate pattern values with
// distinct ids are permitted, and the earliest-declared one wins on
// ties (see Match).
type Pattern struct {
	ID    int
	Value []byte
}

// Match is the compile-time result of locating a Pattern: its id and
// the byte length of the matched pattern.
type Match struct {
	ID  int
	Len int
}
