package search

import "errors"

var (
	// ErrAlphabetMismatch is returned when a model and a sequence were
	// digitized against different alphabets: mixing a protein model
	// with nucleotide data or vice versa is fatal.
	ErrAlphabetMismatch = errors.New("search: model and sequence alphabets do not match")
)
