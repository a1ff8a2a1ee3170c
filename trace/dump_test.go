package trace

import (
	"strings"
	"testing"

	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRendersStates(t *testing.T) {
	tr := &Trace{States: []State{{Type: S}, {Type: N, Pos: 0}, {Type: T}}}
	out := Dump(tr)
	assert.True(t, strings.Contains(out, "trace.State"))
}

func TestDumpModelRendersNodes(t *testing.T) {
	mdl, err := plan7.NewModel(2, []byte("ACGT"))
	require.NoError(t, err)
	out := DumpModel(mdl)
	assert.NotEmpty(t, out)
}
