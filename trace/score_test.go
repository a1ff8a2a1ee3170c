package trace

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/stretchr/testify/require"
)

func buildScoringModel(t *testing.T) (*plan7.Model, alphabet.Alphabet) {
	t.Helper()
	alpha := alphabet.Nucleic()
	mdl, err := plan7.NewModel(3, []byte("ACGT"))
	require.NoError(t, err)
	for k := 1; k <= 3; k++ {
		node := &mdl.Nodes[k]
		for x := range node.Match {
			node.Match[x] = 0.25
			node.Insert[x] = 0.25
		}
		node.Trans = [7]float64{0.8, 0.1, 0.1, 0.6, 0.4, 0.6, 0.4}
	}
	for x := range mdl.Null {
		mdl.Null[x] = 0.25
	}
	mdl.ConfigureGlobal(0.0)
	require.NoError(t, mdl.Logoddsify(alpha))
	return mdl, alpha
}

func TestScoreUniformEmissionsContributeZero(t *testing.T) {
	mdl, alpha := buildScoringModel(t)
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	tr := buildGlobalTrace()
	sc, err := Score(tr, mdl, dsq)
	require.NoError(t, err)

	want := mdl.Begin[1].Add(mdl.TransitionScore(plan7.TMM, 1)).Add(mdl.TransitionScore(plan7.TMM, 2)).Add(mdl.End[3])
	require.InDelta(t, want.Real(), sc, 1e-6)
}

func TestScoreEmptyTrace(t *testing.T) {
	mdl, alpha := buildScoringModel(t)
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)
	_, err = Score(New(0), mdl, dsq)
	require.ErrorIs(t, err, ErrEmpty)
}
