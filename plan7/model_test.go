package plan7

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, m int) *Model {
	t.Helper()
	alpha := []byte("ACDEFGHIKLMNPQRSTVWY")
	mdl, err := NewModel(m, alpha)
	require.NoError(t, err)
	for k := 1; k <= m; k++ {
		node := &mdl.Nodes[k]
		for x := range node.Match {
			node.Match[x] = 1.0 / float64(len(alpha))
			node.Insert[x] = 1.0 / float64(len(alpha))
		}
		node.Trans = [7]float64{0.8, 0.1, 0.1, 0.6, 0.4, 0.6, 0.4}
	}
	for x := range mdl.Null {
		mdl.Null[x] = 1.0 / float64(len(alpha))
	}
	return mdl
}

func TestNewModelRejectsZeroLength(t *testing.T) {
	_, err := NewModel(0, []byte("ACDE"))
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestNewModelAllocatesNodes(t *testing.T) {
	mdl := newTestModel(t, 5)
	assert.Len(t, mdl.Nodes, 6)
	assert.Len(t, mdl.Node1(3).Match, 20)
}

func TestLogoddsifyRequiresMatchingAlphabet(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.Null = mdl.Null[:len(mdl.Null)-1]
	err := mdl.Logoddsify(alphabet.Protein())
	assert.ErrorIs(t, err, ErrAlphabetSize)
}

func TestLogoddsifyUniformEmissionsScoreZero(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.ConfigureGlobal(0.01)
	require.NoError(t, mdl.Logoddsify(alphabet.Protein()))
	assert.True(t, mdl.IsLogoddsified())
	for x := range mdl.Alpha {
		assert.Equal(t, Score(0), mdl.MatchEmission(x, 2))
	}
}

func TestLogoddsifySizesTablesOverFullAlphabet(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.ConfigureGlobal(0.01)
	alpha := alphabet.Protein()
	require.NoError(t, mdl.Logoddsify(alpha))
	assert.Len(t, mdl.MatchScore, alpha.Size())
	assert.Len(t, mdl.InsertScore, alpha.Size())
	// X (the protein catch-all degenerate code) must score something
	// finite, not panic or carry a zero-valued slice.
	x := int(alpha.Index('X'))
	assert.False(t, mdl.MatchEmission(x, 2).IsImpossible())
}

func TestLogoddsifyViterbiModeZeroesInsertScores(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.ViterbiMode = true
	mdl.ConfigureGlobal(0.01)
	require.NoError(t, mdl.Logoddsify(alphabet.Protein()))
	for x := range mdl.Alpha {
		assert.Equal(t, Score(0), mdl.InsertEmission(x, 2))
	}
}

func TestLogoddsifyGlobalForbidsInternalEntry(t *testing.T) {
	mdl := newTestModel(t, 4)
	mdl.ConfigureGlobal(0.01)
	require.NoError(t, mdl.Logoddsify(alphabet.Protein()))
	assert.Equal(t, NegInf, mdl.Begin[2])
	assert.Equal(t, NegInf, mdl.Begin[3])
	assert.False(t, mdl.Begin[1].IsImpossible())
}

func TestLogoddsifySWAllowsInternalEntry(t *testing.T) {
	mdl := newTestModel(t, 4)
	mdl.ConfigureSW(0.2, 0.2, 0.01)
	require.NoError(t, mdl.Logoddsify(alphabet.Protein()))
	assert.False(t, mdl.Begin[2].IsImpossible())
	assert.False(t, mdl.End[2].IsImpossible())
}

func TestTransitionScoreLookupChecksState(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.ConfigureGlobal(0.01)
	_, err := mdl.TransitionScoreLookup(TMM, 1)
	assert.ErrorIs(t, err, ErrNotLogoddsified)

	require.NoError(t, mdl.Logoddsify(alphabet.Protein()))
	_, err = mdl.TransitionScoreLookup(TMM, 99)
	assert.ErrorIs(t, err, ErrBadNode)

	sc, err := mdl.TransitionScoreLookup(TMM, 1)
	require.NoError(t, err)
	assert.False(t, sc.IsImpossible())
}
