// Package matrix implements the Plan7 dynamic programming matrix: the
// three per-node score planes (Match, Insert, Delete) plus the five
// special-state rows, and the companion shadow (traceback) matrix used
// by alignment-against-alignment Viterbi.
//
// Each plane of a matrix is one contiguous buffer ([]plan7.Score for
// Full, []Pointer for Shadow), and matrices expose
// index-based accessors, the same flat-buffer-plus-index-function shape
// as a hand-rolled DP table, rather than a slice of slices or raw
// pointer arithmetic.
package matrix
