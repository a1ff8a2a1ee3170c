package hit

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/dpalgo"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T) *plan7.Model {
	t.Helper()
	mdl, err := plan7.NewModel(3, []byte("ACGT"))
	require.NoError(t, err)
	consensus := []int{0, 1, 2}
	for k := 1; k <= 3; k++ {
		node := &mdl.Nodes[k]
		node.Match[consensus[k-1]] = 0.97
		for x := range node.Match {
			if x != consensus[k-1] {
				node.Match[x] = 0.01
			}
		}
		for x := range node.Insert {
			node.Insert[x] = 0.25
		}
		node.Trans = [7]float64{0.98, 0.01, 0.01, 0.5, 0.5, 0.5, 0.5}
	}
	for x := range mdl.Null {
		mdl.Null[x] = 0.25
	}
	mdl.Mu, mdl.Lambda = -10, 0.7
	mdl.ConfigureGlobal(0.0)
	require.NoError(t, mdl.Logoddsify(alphabet.Nucleic()))
	return mdl
}

func TestPostprocessRegistersDomainAndSequenceHit(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	sc, tr, err := dpalgo.Viterbi(mdl, dsq)
	require.NoError(t, err)

	domainHits := NewTopHits(SortByScore)
	seqHits := NewTopHits(SortByScore)

	th := Thresholds{GlobT: -1000, DomT: -1000, Z: 1}
	opts := Options{SeqName: "seq1", ModelName: "mdl1", RenderAlignment: true}

	err = Postprocess(mdl, alpha, dsq, tr, sc, th, opts, domainHits, seqHits)
	require.NoError(t, err)

	require.Equal(t, 1, domainHits.Len())
	domainHits.Sort()
	d, err := domainHits.At(0)
	require.NoError(t, err)
	assert.Equal(t, "seq1", d.SeqName)
	assert.NotNil(t, d.Alignment)
	assert.Equal(t, 1, d.NumDomains)

	require.Equal(t, 1, seqHits.Len())
	seqHits.Sort()
	s, err := seqHits.At(0)
	require.NoError(t, err)
	assert.Equal(t, d.Score, s.Score)
}

func TestPostprocessNullTraceUsesOverrideScore(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	domainHits := NewTopHits(SortByScore)
	seqHits := NewTopHits(SortByScore)
	th := Thresholds{GlobT: -1000, Z: 1}
	opts := Options{SeqName: "seq1", ModelName: "mdl1"}

	err = Postprocess(mdl, alpha, dsq, nil, plan7.Score(500), th, opts, domainHits, seqHits)
	require.NoError(t, err)

	assert.Equal(t, 0, domainHits.Len())
	require.Equal(t, 1, seqHits.Len())
	s, err := seqHits.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Score)
}

func TestPostprocessAutocutMissingCutoffErrors(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)
	sc, tr, err := dpalgo.Viterbi(mdl, dsq)
	require.NoError(t, err)

	domainHits := NewTopHits(SortByScore)
	seqHits := NewTopHits(SortByScore)
	th := Thresholds{Autocut: AutocutGA, Z: 1}

	err = Postprocess(mdl, alpha, dsq, tr, sc, th, Options{}, domainHits, seqHits)
	assert.ErrorIs(t, err, ErrNoThresholds)
}
