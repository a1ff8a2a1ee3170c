// Package hit implements the per-domain and whole-sequence hit
// records, the trace postprocessor that derives them from a Viterbi
// or Forward result, the growable top-hit list, and the three-line
// "fancy alignment" rendering attached to a domain hit.
package hit
