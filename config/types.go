package config

// Search is the ambient configuration a deployed scan tool would load
// from YAML: the RAMLIMIT override, default thresholds, the Pfam
// autocut selector, and the worker pool size.
type Search struct {
	RAMLimit int64 `yaml:"ram_limit"`

	GlobE float64 `yaml:"glob_e"`
	GlobT float64 `yaml:"glob_t"`
	DomE  float64 `yaml:"dom_e"`
	DomT  float64 `yaml:"dom_t"`

	// Autocut is one of "none", "ga", "tc", "nc", selecting the Pfam
	// GA/TC/NC cutoff pair to use in place of explicit E-value
	// thresholds.
	Autocut string `yaml:"autocut"`

	Workers int `yaml:"workers"`

	UseForward   bool `yaml:"use_forward"`
	DisableNull2 bool `yaml:"disable_null2"`
}

// defaultRAMLimit is the conventional RAMLIMIT (32 MB).
const defaultRAMLimit = 32 * 1024 * 1024

// Default returns the conventional settings: 32 MB RAMLIMIT, no
// autocut, a single worker, Viterbi (not Forward) scoring, and null2
// enabled.
func Default() Search {
	return Search{
		RAMLimit: defaultRAMLimit,
		Workers:  1,
		Autocut:  "none",
	}
}
