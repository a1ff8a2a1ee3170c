// Package dpalgo implements the Plan7 dynamic programming algorithms:
// Forward (log-sum-exp total probability), full Viterbi with
// traceback, the linear-memory parsing Viterbi, the divide-and-conquer
// wee Viterbi, the small Viterbi driver that picks between them per
// memory budget, and alignment-against-alignment Viterbi.
//
// They all share one recurrence; they differ in how much of the
// matrix they keep and in whether they reconstruct a trace.
package dpalgo
