package dpalgo

import "errors"

var (
	// ErrUnreachable mirrors trace.ErrUnreachable at the DP layer: no
	// predecessor cell reproduces the traceback target within
	// tolerance.
	ErrUnreachable = errors.New("dpalgo: traceback found no matching predecessor")

	// ErrEmptySequence is returned by any DP entry point given a
	// zero-length digitized sequence.
	ErrEmptySequence = errors.New("dpalgo: sequence must have length >= 1")

	// ErrNotLogoddsified is returned when the model passed in has not
	// had plan7.Model.Logoddsify run.
	ErrNotLogoddsified = errors.New("dpalgo: model has not been logoddsified")

	// ErrIntervalTooShort is returned by WeeViterbi: the
	// divide-and-conquer recurrence requires an interval of length >=
	// 2; length-1 intervals are handled as a special case by the
	// caller instead.
	ErrIntervalTooShort = errors.New("dpalgo: wee Viterbi requires an interval of length >= 2")

	// ErrNoConsensus is returned by AlignAlignmentViterbi on an
	// alignment with zero rows.
	ErrNoConsensus = errors.New("dpalgo: alignment has no rows to build a consensus from")
)
