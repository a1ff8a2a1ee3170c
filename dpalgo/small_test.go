package dpalgo

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallViterbiAgreesWithFullViterbiUnderGenerousRAMLimit(t *testing.T) {
	mdl := buildConsensusModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	vScore, vTr, err := Viterbi(mdl, dsq)
	require.NoError(t, err)

	sScore, sTr, err := SmallViterbi(mdl, dsq, DefaultRAMLimit)
	require.NoError(t, err)
	require.NotNil(t, sTr)
	assert.Equal(t, vScore, sScore)
	assert.Equal(t, len(vTr.States), len(sTr.States))
}

func TestViterbiSpaceOK(t *testing.T) {
	assert.True(t, ViterbiSpaceOK(10, 10, DefaultRAMLimit))
	assert.False(t, ViterbiSpaceOK(100000, 100000, DefaultRAMLimit))
}
