// Package config loads the ambient configuration a deployed search
// tool would read from a YAML file: the RAMLIMIT override, default
// score/E-value thresholds, the Pfam autocut selector, and the worker
// count search.Driver uses.
package config
