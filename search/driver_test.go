package search

import (
	"testing"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/hit"
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

type fakeModelSource struct {
	models []*plan7.Model
	names  []string
	i      int
}

func (f *fakeModelSource) Next() (*plan7.Model, string, bool, error) {
	if f.i >= len(f.models) {
		return nil, "", false, nil
	}
	mdl, name := f.models[f.i], f.names[f.i]
	f.i++
	return mdl, name, true, nil
}

type fakeSeqSource struct {
	names []string
	dsqs  []alphabet.DigitizedSequence
	i     int
}

func (f *fakeSeqSource) Next() (string, alphabet.DigitizedSequence, bool, error) {
	if f.i >= len(f.names) {
		return "", alphabet.DigitizedSequence{}, false, nil
	}
	name, dsq := f.names[f.i], f.dsqs[f.i]
	f.i++
	return name, dsq, true, nil
}

func TestDriverScanModelsRegistersHits(t *testing.T) {
	mdl1 := buildModel(t)
	mdl2 := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	src := &fakeModelSource{models: []*plan7.Model{mdl1, mdl2}, names: []string{"m1", "m2"}}
	d := NewDriver(hit.Thresholds{GlobT: -1000, DomT: -1000, Z: 1})
	d.Workers = 2

	domainHits, seqHits, err := d.ScanModels(src, alpha, "seq1", dsq)
	require.NoError(t, err)
	assert.Equal(t, 2, domainHits.Len())
	assert.Equal(t, 2, seqHits.Len())
}

func TestDriverScanSequencesRegistersHits(t *testing.T) {
	mdl := buildModel(t)
	alpha := alphabet.Nucleic()
	dsq1, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)
	dsq2, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	src := &fakeSeqSource{names: []string{"s1", "s2"}, dsqs: []alphabet.DigitizedSequence{dsq1, dsq2}}
	d := NewDriver(hit.Thresholds{GlobT: -1000, DomT: -1000, Z: 2})

	domainHits, seqHits, err := d.ScanSequences(mdl, alpha, "mdl1", src)
	require.NoError(t, err)
	assert.Equal(t, 2, domainHits.Len())
	assert.Equal(t, 2, seqHits.Len())
}

func TestDriverRejectsAlphabetMismatch(t *testing.T) {
	mdl := buildModel(t)
	protein := alphabet.Protein()
	alpha := alphabet.Nucleic()
	dsq, err := alphabet.Digitize(alpha, []byte("ACG"))
	require.NoError(t, err)

	src := &fakeModelSource{models: []*plan7.Model{mdl}, names: []string{"m1"}}
	d := NewDriver(hit.Thresholds{GlobT: -1000, Z: 1})
	_, _, err = d.ScanModels(src, protein, "seq1", dsq)
	assert.ErrorIs(t, err, ErrAlphabetMismatch)
}
