// Package plan7 implements the Plan7 profile HMM: its probability
// tables, their integer log-odds mirrors, and the five local/global
// entry-exit configurations used to shape a model for a particular kind
// of search (naked, global, ls, sw, fs).
//
// A Model is built with raw probabilities (NewModel), then prepared for
// DP with one Configure* function and Logoddsify. DP routines in package
// dpalgo never touch probabilities directly; they read only the score
// tables Logoddsify fills in.
package plan7
