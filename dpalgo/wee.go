package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// weeMidpoint computes the optimal split point of interval [s1,s3] in
// sequence space, paired with model positions k1..k3 and framing
// states t1,t3, by running two-row Forward from s1 and two-row
// Backward from s3 and taking the argmax of fwd+bck across the meeting
// row. Only emitting states (M, I, and the N/C flanks) are ever chosen
// as a midpoint; J is disallowed because the outer parsing Viterbi has
// already segmented multi-hit sequences into single-domain
// subintervals before this ever runs.
func weeMidpoint(mdl *plan7.Model, dsq alphabet.DigitizedSequence, k1 int, t1 trace.StateType, s1 int, k3 int, t3 trace.StateType, s3 int) (plan7.Score, int, trace.StateType, int) {
	m := mdl.M

	s2 := s1 + (s3-s1)/2
	if s3-s1 == 1 && t1 == trace.S {
		s2 = s1
	}
	if s3-s1 == 1 && t3 == trace.T {
		s2 = s3
	}

	start := s1
	if t1 == trace.S {
		start = 0
	}

	fmmx, fimx, fdmx := newNegInfRows(m+1), newNegInfRows(m+1), newNegInfRows(m+1)
	fxmx := newNegInfSpecial()

	cur := start % 2
	switch t1 {
	case trace.M:
		fmmx[cur][k1] = 0
	case trace.I:
		fimx[cur][k1] = 0
	case trace.N, trace.S:
		fxmx[cur][plan7.XTN] = 0
	case trace.C:
		fxmx[cur][plan7.XTC] = 0
	}

	if t1 == trace.M {
		for k := k1 + 1; k <= k3; k++ {
			best := plan7.NegInf
			best = plan7.Max(best, fmmx[cur][k-1].Add(mdl.TransitionScore(plan7.TMD, k-1)))
			best = plan7.Max(best, fdmx[cur][k-1].Add(mdl.TransitionScore(plan7.TDD, k-1)))
			fdmx[cur][k] = best
		}
		fxmx[cur][plan7.XTE] = fmmx[cur][k1].Add(mdl.End[k1])
	}
	fxmx[cur][plan7.XTB] = fxmx[cur][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Move))
	fxmx[cur][plan7.XTC] = fxmx[cur][plan7.XTE].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move))

	for i := start + 1; i <= s2; i++ {
		cur = i % 2
		prv := 1 - cur
		sym := int(dsq.At(i))

		fmmx[cur][k1], fimx[cur][k1], fdmx[cur][k1] = plan7.NegInf, plan7.NegInf, plan7.NegInf

		if k1 < m {
			best := plan7.NegInf
			best = plan7.Max(best, fmmx[prv][k1].Add(mdl.TransitionScore(plan7.TMI, k1)))
			best = plan7.Max(best, fimx[prv][k1].Add(mdl.TransitionScore(plan7.TII, k1)))
			isc := plan7.NegInf
			if sym >= 0 {
				isc = mdl.InsertEmission(sym, k1)
			}
			fimx[cur][k1] = best.Add(isc)
		}
		{
			msc := plan7.NegInf
			if sym >= 0 {
				msc = mdl.MatchEmission(sym, k1)
			}
			fmmx[cur][k1] = fxmx[prv][plan7.XTB].Add(mdl.Begin[k1]).Add(msc)
		}

		for k := k1 + 1; k <= k3; k++ {
			mBest := plan7.NegInf
			mBest = plan7.Max(mBest, fmmx[prv][k-1].Add(mdl.TransitionScore(plan7.TMM, k-1)))
			mBest = plan7.Max(mBest, fimx[prv][k-1].Add(mdl.TransitionScore(plan7.TIM, k-1)))
			mBest = plan7.Max(mBest, fxmx[prv][plan7.XTB].Add(mdl.Begin[k]))
			mBest = plan7.Max(mBest, fdmx[prv][k-1].Add(mdl.TransitionScore(plan7.TDM, k-1)))
			msc := plan7.NegInf
			if sym >= 0 {
				msc = mdl.MatchEmission(sym, k)
			}
			fmmx[cur][k] = mBest.Add(msc)

			dBest := plan7.NegInf
			if k < m {
				dBest = plan7.Max(dBest, fmmx[cur][k-1].Add(mdl.TransitionScore(plan7.TMD, k-1)))
				dBest = plan7.Max(dBest, fdmx[cur][k-1].Add(mdl.TransitionScore(plan7.TDD, k-1)))
			}
			fdmx[cur][k] = dBest

			iBest := plan7.NegInf
			if k < m {
				iBest = plan7.Max(iBest, fmmx[prv][k].Add(mdl.TransitionScore(plan7.TMI, k)))
				iBest = plan7.Max(iBest, fimx[prv][k].Add(mdl.TransitionScore(plan7.TII, k)))
				isc := plan7.NegInf
				if sym >= 0 {
					isc = mdl.InsertEmission(sym, k)
				}
				iBest = iBest.Add(isc)
			}
			fimx[cur][k] = iBest
		}

		fxmx[cur][plan7.XTN] = fxmx[prv][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Loop))

		eBest := plan7.NegInf
		for k := k1; k <= k3 && k <= m; k++ {
			eBest = plan7.Max(eBest, fmmx[cur][k].Add(mdl.End[k]))
		}
		fxmx[cur][plan7.XTE] = eBest

		fxmx[cur][plan7.XTB] = fxmx[cur][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Move))

		cBest := plan7.NegInf
		cBest = plan7.Max(cBest, fxmx[prv][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop)))
		cBest = plan7.Max(cBest, fxmx[cur][plan7.XTE].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move)))
		fxmx[cur][plan7.XTC] = cBest
	}

	bmmx, bimx, bdmx := newNegInfRows(m+2), newNegInfRows(m+2), newNegInfRows(m+2)
	bxmx := newNegInfSpecial()

	nxt := s3 % 2
	switch t3 {
	case trace.M:
		bmmx[nxt][k3] = 0
	case trace.I:
		bimx[nxt][k3] = 0
	case trace.N:
		bxmx[nxt][plan7.XTN] = 0
	case trace.C:
		bxmx[nxt][plan7.XTC] = 0
	case trace.T:
		bxmx[nxt][plan7.XTC] = mdl.XTransitionScore(plan7.XTC, plan7.Move)
	}

	if t3 == trace.T {
		bxmx[nxt][plan7.XTE] = bxmx[nxt][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move))
		for k := k3; k >= k1; k-- {
			v := bxmx[nxt][plan7.XTE].Add(mdl.End[k])
			if s3 != s2 {
				sym := int(dsq.At(s3))
				if sym >= 0 {
					v = v.Add(mdl.MatchEmission(sym, k))
				} else {
					v = plan7.NegInf
				}
			}
			bmmx[nxt][k] = v
		}
	}

	curB := nxt
	for i := s3 - 1; i >= s2; i-- {
		curB = i % 2
		nxt = 1 - curB
		sym := int(dsq.At(i))

		bxmx[curB][plan7.XTC] = bxmx[nxt][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop))

		bBest := plan7.NegInf
		for k := k1; k <= k3; k++ {
			bBest = plan7.Max(bBest, bmmx[nxt][k].Add(mdl.Begin[k]))
		}
		bxmx[curB][plan7.XTB] = bBest

		bxmx[curB][plan7.XTE] = bxmx[curB][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move))

		nBest := plan7.NegInf
		nBest = plan7.Max(nBest, bxmx[curB][plan7.XTB].Add(mdl.XTransitionScore(plan7.XTN, plan7.Move)))
		nBest = plan7.Max(nBest, bxmx[nxt][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Loop)))
		bxmx[curB][plan7.XTN] = nBest

		for k := k3; k >= k1; k-- {
			mBest := bxmx[curB][plan7.XTE].Add(mdl.End[k])
			if k < m {
				mBest = plan7.Max(mBest, bmmx[nxt][k+1].Add(mdl.TransitionScore(plan7.TMM, k)))
				mBest = plan7.Max(mBest, bimx[nxt][k].Add(mdl.TransitionScore(plan7.TMI, k)))
				mBest = plan7.Max(mBest, bdmx[curB][k+1].Add(mdl.TransitionScore(plan7.TMD, k)))
			}
			if i != s2 {
				if sym >= 0 {
					mBest = mBest.Add(mdl.MatchEmission(sym, k))
				} else {
					mBest = plan7.NegInf
				}
			}
			bmmx[curB][k] = mBest

			dBest := plan7.NegInf
			if k < m {
				dBest = plan7.Max(dBest, bmmx[nxt][k+1].Add(mdl.TransitionScore(plan7.TDM, k)))
				dBest = plan7.Max(dBest, bdmx[curB][k+1].Add(mdl.TransitionScore(plan7.TDD, k)))
			}
			bdmx[curB][k] = dBest

			iBest := plan7.NegInf
			if k < m {
				iBest = plan7.Max(iBest, bmmx[nxt][k+1].Add(mdl.TransitionScore(plan7.TIM, k)))
				iBest = plan7.Max(iBest, bimx[nxt][k].Add(mdl.TransitionScore(plan7.TII, k)))
				if i != s2 && sym >= 0 {
					iBest = iBest.Add(mdl.InsertEmission(sym, k))
				} else if i != s2 {
					iBest = plan7.NegInf
				}
			}
			bimx[curB][k] = iBest
		}
	}

	fc, bc := s2%2, s2%2
	max, k2, t2 := plan7.NegInf, k1, trace.N
	for k := k1; k <= k3; k++ {
		if cand := fmmx[fc][k].Add(bmmx[bc][k]); cand > max {
			max, k2, t2 = cand, k, trace.M
		}
		if cand := fimx[fc][k].Add(bimx[bc][k]); cand > max {
			max, k2, t2 = cand, k, trace.I
		}
	}
	if cand := fxmx[fc][plan7.XTN].Add(bxmx[bc][plan7.XTN]); cand > max {
		max, k2, t2 = cand, 1, trace.N
	}
	if cand := fxmx[fc][plan7.XTC].Add(bxmx[bc][plan7.XTC]); cand > max {
		max, k2, t2 = cand, m, trace.C
	}

	return max, k2, t2, s2
}

func newNegInfRows(width int) [2][]plan7.Score {
	var rows [2][]plan7.Score
	for r := 0; r < 2; r++ {
		rows[r] = make([]plan7.Score, width)
		for k := range rows[r] {
			rows[r][k] = plan7.NegInf
		}
	}
	return rows
}

func newNegInfSpecial() [2][5]plan7.Score {
	var rows [2][5]plan7.Score
	for r := 0; r < 2; r++ {
		for x := range rows[r] {
			rows[r][x] = plan7.NegInf
		}
	}
	return rows
}

// WeeViterbi computes the same optimal score and trace as Viterbi but
// in Θ(M) memory, by recursively bisecting the sequence via
// weeMidpoint until every subinterval has collapsed to a single
// residue. It requires an interval of at least length 2; callers with
// a length-1 subsequence must use full Viterbi with a tiny matrix
// instead.
func WeeViterbi(mdl *plan7.Model, dsq alphabet.DigitizedSequence) (plan7.Score, *trace.Trace, error) {
	if !mdl.IsLogoddsified() {
		return 0, nil, ErrNotLogoddsified
	}
	l := dsq.L
	if l < 2 {
		return 0, nil, ErrIntervalTooShort
	}
	m := mdl.M

	kassign := make([]int, l+1)
	tassign := make([]trace.StateType, l+1)
	kassign[1], tassign[1] = 1, trace.S
	kassign[l], tassign[l] = m, trace.T

	type frame struct{ s1, s3 int }
	stack := []frame{{1, l}}
	var retSc plan7.Score

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s1, s3 := fr.s1, fr.s3
		k1, t1 := kassign[s1], tassign[s1]
		k3, t3 := kassign[s3], tassign[s3]

		sc, k2, t2, s2 := weeMidpoint(mdl, dsq, k1, t1, s1, k3, t3, s3)
		kassign[s2] = k2
		tassign[s2] = t2
		if t1 == trace.S && t3 == trace.T {
			retSc = sc
		}

		if t2 != trace.N && (s2-s1 > 1 || (s2-s1 == 1 && t1 == trace.S)) {
			stack = append(stack, frame{s1, s2})
		}
		if t2 != trace.C && (s3-s2 > 1 || (s3-s2 == 1 && t3 == trace.T)) {
			stack = append(stack, frame{s2, s3})
		}

		if t2 == trace.N {
			for j := s2; j >= s1; j-- {
				kassign[j], tassign[j] = 1, trace.N
			}
		}
		if t2 == trace.C {
			for j := s2; j <= s3; j++ {
				kassign[j], tassign[j] = m, trace.C
			}
		}
	}

	tr := weeBuildTrace(l, kassign, tassign)
	return retSc, tr, nil
}

// weeBuildTrace interpolates the node states kassign/tassign leave
// implicit: delete runs between two non-adjacent match nodes, and the
// B/E/C framing around each match run. Wing unfolding at the B/E
// boundary is never needed here for the same reason it is never needed
// in Viterbi's traceback: a configuration that forbids local entry/exit
// never lets the DP choose k1>1 or k3<M in the first place (see
// DESIGN.md's wing-folding decision).
func weeBuildTrace(l int, kassign []int, tassign []trace.StateType) *trace.Trace {
	tr := trace.New(l)
	tr.Append(trace.State{Type: trace.S}, l)
	tr.Append(trace.State{Type: trace.N, Pos: 0}, l)

	for i := 1; i <= l; i++ {
		switch tassign[i] {
		case trace.M:
			if tr.States[tr.Len()-1].Type == trace.N {
				tr.Append(trace.State{Type: trace.B}, l)
			}
			tr.Append(trace.State{Type: trace.M, Node: kassign[i], Pos: i}, l)
			if i < l && tassign[i+1] == trace.M && kassign[i+1]-kassign[i] > 1 {
				for k := kassign[i] + 1; k < kassign[i+1]; k++ {
					tr.Append(trace.State{Type: trace.D, Node: k}, l)
				}
			}
			if i == l || tassign[i+1] == trace.C {
				tr.Append(trace.State{Type: trace.E}, l)
				tr.Append(trace.State{Type: trace.C, Pos: 0}, l)
			}
		case trace.I:
			tr.Append(trace.State{Type: trace.I, Node: kassign[i], Pos: i}, l)
		case trace.N:
			tr.Append(trace.State{Type: trace.N, Pos: i}, l)
		case trace.C:
			tr.Append(trace.State{Type: trace.C, Pos: i}, l)
		}
	}
	tr.Append(trace.State{Type: trace.T}, l)
	return tr
}
