// Package trace implements the Plan7 state path: an ordered list of
// (state type, model node, sequence position) triples produced by a DP
// traceback, along with the operations built on top of it (reverse,
// score, decompose into per-domain sub-traces, bounds, and imposing a
// master trace from an alignment onto its member sequences).
package trace
