// Package search implements the worker-pool driver that pulls models
// or sequences from an external collaborator stream, scores each
// (model, sequence) pair through dpalgo/hit, and registers the results
// into the two output hit lists. It also carries the threshold record
// and the GCG alignment checksum, both external-interface artifacts
// with no other natural home.
package search
