package hit

import "errors"

var (
	// ErrNoThresholds is returned when neither a score nor an E-value
	// threshold can be evaluated: autocut was requested but the model
	// carries no matching cutoff.
	ErrNoThresholds = errors.New("hit: autocut requested but model has no matching cutoff")

	// ErrRankOutOfRange is returned by TopHits.At for a rank outside
	// [0, Len()).
	ErrRankOutOfRange = errors.New("hit: rank out of range")

	// ErrUnknownAutocut is returned by ParseAutocut for a selector
	// string that is none of the recognized GA/TC/NC spellings.
	ErrUnknownAutocut = errors.New("hit: unrecognized autocut selector")
)
