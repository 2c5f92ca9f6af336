package acmatch

import "errors"

// ErrEmptyPatternValue is returned by New when a pattern carries a
// zero-length value. Zero-length patterns are not given semantics by
// this package; rejecting them at construction is simpler than giving
// every query an empty-match case to handle.
var ErrEmptyPatternValue = errors.New("pattern value must not be empty")

// ErrUnsupportedAlgorithm is returned by New for an Algorithm value this
// package does not implement.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
