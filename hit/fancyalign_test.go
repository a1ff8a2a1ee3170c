package hit

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/dpalgo"
	"github.com/MichiganTech/hmmer-sub001/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFancyAlignmentMatchesConsensus(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	_, tr, err := dpalgo.Viterbi(mdl, dsq)
	require.NoError(t, err)

	ali, err := RenderFancyAlignment(mdl, alpha, tr, dsq)
	require.NoError(t, err)
	assert.Equal(t, "ACG", ali.Consensus)
	assert.Equal(t, "ACG", ali.Sequence)
	assert.Equal(t, "ACG", ali.MatchLine)
	assert.Equal(t, 1, ali.ModelStart)
	assert.Equal(t, 3, ali.ModelEnd)
}

func TestRenderFancyAlignmentRejectsEmptyTrace(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)
	_, err = RenderFancyAlignment(mdl, alpha, &trace.Trace{}, dsq)
	assert.ErrorIs(t, err, trace.ErrEmpty)
}
