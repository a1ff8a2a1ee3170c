package config

import (
	"io"
	"os"

	"github.com/MichiganTech/hmmer-sub001/hit"
	"gopkg.in/yaml.v3"
)

// Load parses a Search configuration from YAML, starting from
// Default() so an omitted field keeps its conventional value.
func Load(r io.Reader) (Search, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Search{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses a Search configuration from a YAML file on
// disk.
func LoadFile(path string) (Search, error) {
	f, err := os.Open(path)
	if err != nil {
		return Search{}, err
	}
	defer f.Close()
	return Load(f)
}

// Thresholds converts the loaded configuration into the hit.Thresholds
// record the postprocessor consumes.
func (s Search) Thresholds() (hit.Thresholds, error) {
	autocut, err := hit.ParseAutocut(s.Autocut)
	if err != nil {
		return hit.Thresholds{}, ErrInvalidAutocut
	}
	return hit.Thresholds{
		GlobE:   s.GlobE,
		GlobT:   s.GlobT,
		DomE:    s.DomE,
		DomT:    s.DomT,
		Autocut: autocut,
	}, nil
}
