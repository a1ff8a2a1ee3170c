package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/matrix"
	"github.com/MichiganTech/hmmer-sub001/plan7"
)

// combineFn folds two alternative path scores into one: plan7.Max for
// Viterbi, plan7.ILogsum for Forward.
type combineFn func(a, b plan7.Score) plan7.Score

func fold(c combineFn, values ...plan7.Score) plan7.Score {
	out := plan7.NegInf
	for _, v := range values {
		out = c(out, v)
	}
	return out
}

// initRow0 sets the boundary conditions on row 0: xN=0,
// xB=xsc[N][MOVE], xE=xC=xJ=-inf, all M/I/D=-inf (already the zero
// value matrix.Full initializes to via clear()).
func initRow0(mat *matrix.Full, mdl *plan7.Model) {
	mat.SetX(0, plan7.XTN, 0)
	mat.SetX(0, plan7.XTB, mdl.XTransitionScore(plan7.XTN, plan7.Move))
	mat.SetX(0, plan7.XTE, plan7.NegInf)
	mat.SetX(0, plan7.XTC, plan7.NegInf)
	mat.SetX(0, plan7.XTJ, plan7.NegInf)
}

// fillRow computes row i of mat from row i-1, following the shared
// Plan7 recurrence. combine selects Viterbi (max) or Forward
// (log-sum-exp) semantics; the recurrence shape is identical either
// way, only how multiple alternatives are merged differs.
func fillRow(mat *matrix.Full, mdl *plan7.Model, dsq alphabet.DigitizedSequence, i int, combine combineFn) {
	sym := int(dsq.At(i))
	m := mdl.M

	for k := 1; k <= m; k++ {
		msc := plan7.NegInf
		if sym >= 0 {
			msc = mdl.MatchEmission(sym, k)
		}
		mCand := fold(combine,
			mat.M_(i-1, k-1).Add(mdl.TransitionScore(plan7.TMM, k-1)),
			mat.I_(i-1, k-1).Add(mdl.TransitionScore(plan7.TIM, k-1)),
			mat.D_(i-1, k-1).Add(mdl.TransitionScore(plan7.TDM, k-1)),
			mat.X(i-1, plan7.XTB).Add(mdl.Begin[k]),
		)
		mat.SetM(i, k, msc.Add(mCand))

		if k < m {
			isc := plan7.NegInf
			if sym >= 0 {
				isc = mdl.InsertEmission(sym, k)
			}
			iCand := fold(combine,
				mat.M_(i-1, k).Add(mdl.TransitionScore(plan7.TMI, k)),
				mat.I_(i-1, k).Add(mdl.TransitionScore(plan7.TII, k)),
			)
			mat.SetI(i, k, isc.Add(iCand))
		}

		dCand := fold(combine,
			mat.M_(i, k-1).Add(mdl.TransitionScore(plan7.TMD, k-1)),
			mat.D_(i, k-1).Add(mdl.TransitionScore(plan7.TDD, k-1)),
		)
		mat.SetD(i, k, dCand)
	}

	xE := plan7.NegInf
	for k := 1; k <= m; k++ {
		xE = combine(xE, mat.M_(i, k).Add(mdl.End[k]))
	}
	mat.SetX(i, plan7.XTE, xE)

	xN := mat.X(i-1, plan7.XTN).Add(mdl.XTransitionScore(plan7.XTN, plan7.Loop))
	mat.SetX(i, plan7.XTN, xN)

	xJ := fold(combine,
		mat.X(i-1, plan7.XTJ).Add(mdl.XTransitionScore(plan7.XTJ, plan7.Loop)),
		xE.Add(mdl.XTransitionScore(plan7.XTE, plan7.Loop)),
	)
	mat.SetX(i, plan7.XTJ, xJ)

	xB := fold(combine,
		xN.Add(mdl.XTransitionScore(plan7.XTN, plan7.Move)),
		xJ.Add(mdl.XTransitionScore(plan7.XTJ, plan7.Move)),
	)
	mat.SetX(i, plan7.XTB, xB)

	xC := fold(combine,
		mat.X(i-1, plan7.XTC).Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop)),
		xE.Add(mdl.XTransitionScore(plan7.XTE, plan7.Move)),
	)
	mat.SetX(i, plan7.XTC, xC)
}

// terminate returns score = xC[L] + xsc[C][MOVE].
func terminate(mat *matrix.Full, mdl *plan7.Model, l int) plan7.Score {
	return mat.X(l, plan7.XTC).Add(mdl.XTransitionScore(plan7.XTC, plan7.Move))
}
