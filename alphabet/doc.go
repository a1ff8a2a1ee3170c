// Package alphabet defines the fixed symbol sets (protein, nucleic) used by
// the rest of the engine, their IUPAC degeneracy tables, and the digitized
// sequence representation that every DP routine consumes.
//
// A digitized sequence is 1-indexed with sentinel symbols at positions 0 and
// L+1, so that every DP recurrence can read dsq[i-1] and dsq[i+1] without a
// bounds check.
package alphabet
