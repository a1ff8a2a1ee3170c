package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
)

// Boundary is one domain's optimal begin/end sequence positions, as
// recovered by ParsingViterbi.
type Boundary struct {
	B, E int
}

// CollapsedTrace is the parsing Viterbi result: the ordered list of
// domain (B,E) sequence positions, sufficient to split a sequence into
// single-hit subintervals without reconstructing a full state path.
type CollapsedTrace struct {
	Domains []Boundary
}

// ParsingViterbi computes the optimal alignment score using only two
// DP rows of width M plus two O(L) auxiliary position arrays (btr,
// etr), at the cost of not reconstructing node-level state detail. It
// is the first pass used to segment a long sequence into per-domain
// subsequences before SmallViterbi runs full or wee Viterbi on each
// one.
func ParsingViterbi(mdl *plan7.Model, dsq alphabet.DigitizedSequence) (plan7.Score, *CollapsedTrace, error) {
	if !mdl.IsLogoddsified() {
		return 0, nil, ErrNotLogoddsified
	}
	l := dsq.L
	if l < 1 {
		return 0, nil, ErrEmptySequence
	}
	m := mdl.M

	var mmx, imx, dmx [2][]plan7.Score
	var mtr, itr, dtr [2][]int
	for r := 0; r < 2; r++ {
		mmx[r] = make([]plan7.Score, m+1)
		imx[r] = make([]plan7.Score, m+1)
		dmx[r] = make([]plan7.Score, m+1)
		mtr[r] = make([]int, m+1)
		itr[r] = make([]int, m+1)
		dtr[r] = make([]int, m+1)
	}
	var xmx [2][5]plan7.Score
	var xtrC, xtrJ [2]int

	btr := make([]int, l+1)
	etr := make([]int, l+1)

	xmx[0][plan7.XTN] = 0
	xmx[0][plan7.XTB] = mdl.XTransitionScore(plan7.XTN, plan7.Move)
	btr[0] = 0
	xmx[0][plan7.XTE] = plan7.NegInf
	xmx[0][plan7.XTC] = plan7.NegInf
	xmx[0][plan7.XTJ] = plan7.NegInf
	etr[0] = -1
	for k := 0; k <= m; k++ {
		mmx[0][k] = plan7.NegInf
		imx[0][k] = plan7.NegInf
		dmx[0][k] = plan7.NegInf
	}

	for i := 1; i <= l; i++ {
		cur := i % 2
		prv := 1 - cur
		sym := int(dsq.At(i))

		mmx[cur][0] = plan7.NegInf
		imx[cur][0] = plan7.NegInf
		dmx[cur][0] = plan7.NegInf

		for k := 1; k <= m; k++ {
			mBest, mPtr := plan7.NegInf, 0
			if cand := mmx[prv][k-1].Add(mdl.TransitionScore(plan7.TMM, k-1)); cand > mBest {
				mBest, mPtr = cand, mtr[prv][k-1]
			}
			if cand := imx[prv][k-1].Add(mdl.TransitionScore(plan7.TIM, k-1)); cand > mBest {
				mBest, mPtr = cand, itr[prv][k-1]
			}
			if cand := xmx[prv][plan7.XTB].Add(mdl.Begin[k]); cand > mBest {
				mBest, mPtr = cand, i-1
			}
			if cand := dmx[prv][k-1].Add(mdl.TransitionScore(plan7.TDM, k-1)); cand > mBest {
				mBest, mPtr = cand, dtr[prv][k-1]
			}
			msc := plan7.NegInf
			if sym >= 0 {
				msc = mdl.MatchEmission(sym, k)
			}
			mmx[cur][k] = mBest.Add(msc)
			mtr[cur][k] = mPtr

			dBest, dPtr := plan7.NegInf, 0
			if cand := mmx[cur][k-1].Add(mdl.TransitionScore(plan7.TMD, k-1)); cand > dBest {
				dBest, dPtr = cand, mtr[cur][k-1]
			}
			if cand := dmx[cur][k-1].Add(mdl.TransitionScore(plan7.TDD, k-1)); cand > dBest {
				dBest, dPtr = cand, dtr[cur][k-1]
			}
			dmx[cur][k] = dBest
			dtr[cur][k] = dPtr

			if k < m {
				iBest, iPtr := plan7.NegInf, 0
				if cand := mmx[prv][k].Add(mdl.TransitionScore(plan7.TMI, k)); cand > iBest {
					iBest, iPtr = cand, mtr[prv][k]
				}
				if cand := imx[prv][k].Add(mdl.TransitionScore(plan7.TII, k)); cand > iBest {
					iBest, iPtr = cand, itr[prv][k]
				}
				isc := plan7.NegInf
				if sym >= 0 {
					isc = mdl.InsertEmission(sym, k)
				}
				imx[cur][k] = iBest.Add(isc)
				itr[cur][k] = iPtr
			}
		}

		xmx[cur][plan7.XTN] = xmx[prv][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Loop))

		eBest, ePtr := plan7.NegInf, -1
		for k := 1; k <= m; k++ {
			if cand := mmx[cur][k].Add(mdl.End[k]); cand > eBest {
				eBest, ePtr = cand, mtr[cur][k]
			}
		}
		xmx[cur][plan7.XTE] = eBest
		etr[i] = ePtr

		jBest, jPtr := plan7.NegInf, xtrJ[prv]
		if cand := xmx[prv][plan7.XTJ].Add(mdl.XTransitionScore(plan7.XTJ, plan7.Loop)); cand > jBest {
			jBest, jPtr = cand, xtrJ[prv]
		}
		if cand := xmx[cur][plan7.XTE].Add(mdl.XTransitionScore(plan7.XTE, plan7.Loop)); cand > jBest {
			jBest, jPtr = cand, i
		}
		xmx[cur][plan7.XTJ] = jBest
		xtrJ[cur] = jPtr

		bBest, bPtr := plan7.NegInf, 0
		if cand := xmx[cur][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Move)); cand > bBest {
			bBest, bPtr = cand, 0
		}
		if cand := xmx[cur][plan7.XTJ].Add(mdl.XTransitionScore(plan7.XTJ, plan7.Move)); cand > bBest {
			bBest, bPtr = cand, xtrJ[cur]
		}
		xmx[cur][plan7.XTB] = bBest
		btr[i] = bPtr

		cBest, cPtr := plan7.NegInf, xtrC[prv]
		if cand := xmx[prv][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop)); cand > cBest {
			cBest, cPtr = cand, xtrC[prv]
		}
		if cand := xmx[cur][plan7.XTE].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move)); cand > cBest {
			cBest, cPtr = cand, i
		}
		xmx[cur][plan7.XTC] = cBest
		xtrC[cur] = cPtr
	}

	last := l % 2
	score := xmx[last][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Move))

	var bounds []Boundary
	i := xtrC[last]
	for i > 0 {
		e := i
		b := etr[i]
		bounds = append(bounds, Boundary{B: b, E: e})
		i = btr[b]
	}
	for a, z := 0, len(bounds)-1; a < z; a, z = a+1, z-1 {
		bounds[a], bounds[z] = bounds[z], bounds[a]
	}

	return score, &CollapsedTrace{Domains: bounds}, nil
}
