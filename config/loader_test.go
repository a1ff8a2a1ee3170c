package config

import (
	"strings"
	"testing"

	"github.com/MichiganTech/hmmer-sub001/hit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	yamlText := `
ram_limit: 1048576
glob_t: 10
dom_t: 5
autocut: ga
workers: 4
use_forward: true
`
	cfg, err := Load(strings.NewReader(yamlText))
	require.NoError(t, err)
	assert.Equal(t, int64(1048576), cfg.RAMLimit)
	assert.Equal(t, 10.0, cfg.GlobT)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.UseForward)

	th, err := cfg.Thresholds()
	require.NoError(t, err)
	assert.Equal(t, hit.AutocutGA, th.Autocut)
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestThresholdsRejectsInvalidAutocut(t *testing.T) {
	cfg := Default()
	cfg.Autocut = "bogus"
	_, err := cfg.Thresholds()
	assert.ErrorIs(t, err, ErrInvalidAutocut)
}
