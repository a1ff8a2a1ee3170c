package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/matrix"
	"github.com/MichiganTech/hmmer-sub001/plan7"
)

// Forward computes the total log-odds probability of the sequence
// under the model, summing over every alignment rather than taking the
// single best one.
func Forward(mdl *plan7.Model, dsq alphabet.DigitizedSequence) (plan7.Score, error) {
	if !mdl.IsLogoddsified() {
		return 0, ErrNotLogoddsified
	}
	if dsq.L < 1 {
		return 0, ErrEmptySequence
	}
	mat, err := matrix.NewFull(dsq.L, mdl.M)
	if err != nil {
		return 0, err
	}
	initRow0(mat, mdl)
	for i := 1; i <= dsq.L; i++ {
		fillRow(mat, mdl, dsq, i, plan7.ILogsum)
	}
	return terminate(mat, mdl, dsq.L), nil
}
