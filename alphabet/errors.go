package alphabet

import "errors"

var (
	// ErrUnknownSymbol reports a byte with no entry at all in the
	// alphabet or its degeneracy table. Index and Digitize do not return
	// it: they map such a byte to the unknown symbol.
	ErrUnknownSymbol = errors.New("alphabet: symbol not recognized")

	// ErrAlphabetMismatch indicates a sequence digitized under one
	// alphabet was handed to a model built on another (e.g. protein vs.
	// nucleic).
	ErrAlphabetMismatch = errors.New("alphabet: sequence and model alphabets differ")

	// ErrEmptySequence is returned when Digitize is asked to encode a
	// zero-length sequence; a digitized sequence always needs room for
	// the two sentinel positions and at least one residue.
	ErrEmptySequence = errors.New("alphabet: sequence must have at least one residue")
)
