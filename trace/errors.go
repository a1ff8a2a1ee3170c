package trace

import "errors"

var (
	// ErrUnreachable reports a traceback in which no predecessor
	// reproduces the current cell's score within tolerance. No function
	// in this package returns it; the tracebacks in package dpalgo
	// return dpalgo.ErrUnreachable for that condition.
	ErrUnreachable = errors.New("trace: no predecessor state reproduces the DP score")

	// ErrEmpty is returned by operations (Score, Decompose,
	// SimpleBounds, TraceVerify, ImposeMasterTrace) that require at
	// least one state.
	ErrEmpty = errors.New("trace: trace has no states")

	// ErrNotDecomposable is returned by Decompose when the trace does
	// not end in the expected S..T framing.
	ErrNotDecomposable = errors.New("trace: trace is not framed by S...T")

	// ErrRowMismatch is returned by ImposeMasterTrace when a column of
	// the master trace lies beyond the end of a row, and by TraceVerify
	// when a node index or sequence position is out of range or the
	// positions decrease.
	ErrRowMismatch = errors.New("trace: alignment row length does not match master trace")
)
