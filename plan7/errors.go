package plan7

import "errors"

var (
	// ErrZeroLength is returned by NewModel for M<1; a Plan7 model of
	// length 1 is the smallest legal model.
	ErrZeroLength = errors.New("plan7: model length M must be >= 1")

	// ErrAlphabetSize indicates a probability row's length does not
	// match the model's alphabet size.
	ErrAlphabetSize = errors.New("plan7: emission row length does not match alphabet size")

	// ErrNotLogoddsified is returned by TransitionScoreLookup when it
	// is called on a Model before Logoddsify has populated its score
	// tables. The unchecked accessors do not test for it.
	ErrNotLogoddsified = errors.New("plan7: model has not been logoddsified")

	// ErrAutocutAbsent reports a requested GA/TC/NC cutoff that the
	// model does not carry. No function in this package returns it;
	// hit.Postprocess reports that case as hit.ErrNoThresholds.
	ErrAutocutAbsent = errors.New("plan7: requested autocut cutoff not present on model")

	// ErrBadNode indicates a node index outside [0, M], as returned by
	// TransitionScoreLookup (node 0 holds the -inf padding entry).
	ErrBadNode = errors.New("plan7: node index out of range")
)
