package dpalgo

import (
	"math"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/matrix"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// Alignment is a minimal in-memory multiple sequence alignment: equal-
// length rows of raw (possibly gapped) residue bytes plus a per-row
// weight. File parsing is out of scope; callers build one from
// whatever format they already have in hand.
type Alignment struct {
	Rows   [][]byte
	Weight []float64
}

// Alen returns the alignment's column count.
func (a Alignment) Alen() int {
	if len(a.Rows) == 0 {
		return 0
	}
	return len(a.Rows[0])
}

const gapByte = '-'

func isGap(b byte) bool {
	return b == gapByte || b == '.' || b == '_'
}

// consensus builds, per column, a weighted residue-count vector sized
// to the model's alphabet, plus that column's fractional occupancy:
// symbol counts scaled by column occupancy.
func consensus(a Alignment, alpha alphabet.Alphabet, asize int) ([][]float64, []float64) {
	alen := a.Alen()
	con := make([][]float64, alen+1)
	mocc := make([]float64, alen+1)

	denom := 0.0
	for _, w := range a.Weight {
		denom += w
	}
	if denom == 0 {
		denom = 1
	}

	for i := 1; i <= alen; i++ {
		counts := make([]float64, asize)
		for r, row := range a.Rows {
			b := row[i-1]
			if isGap(b) {
				continue
			}
			sym := alpha.Index(b)
			if int(sym) < asize {
				counts[sym] += a.Weight[r]
			}
		}
		total := 0.0
		for x := range counts {
			counts[x] /= denom
			total += counts[x]
		}
		con[i] = counts
		mocc[i] = total
	}
	return con, mocc
}

// weightedEmission averages a model emission score column over a
// consensus count vector, returning NegInf if the consensus places any
// weight on a symbol the model scores as impossible (mirrors the
// original's early-exit on `hmm->msc[sym][k] == -INFTY`).
func weightedEmission(counts []float64, scores []plan7.Score) plan7.Score {
	sum := 0.0
	for x, c := range counts {
		if c <= 0 {
			continue
		}
		if scores[x] == plan7.NegInf {
			return plan7.NegInf
		}
		sum += c * float64(scores[x])
	}
	return plan7.Score(math.Round(sum))
}

func scaleScore(s plan7.Score, frac float64) plan7.Score {
	if s == plan7.NegInf {
		return plan7.NegInf
	}
	return plan7.Score(math.Round(float64(s) * frac))
}

func columnOf(scores [][]plan7.Score, k int) []plan7.Score {
	col := make([]plan7.Score, len(scores))
	for x := range scores {
		col[x] = scores[x][k]
	}
	return col
}

// specialRow is one row's worth of special-state scores, kept in full
// history (unlike the rolling mmx/imx/dmx planes) because WalkShadow
// needs to re-derive the N/C loop-vs-move choice at every row, the way
// `original_source/src/algorithms.c`'s `ShadowTrace` reads `xtb[i][...]`
// at arbitrary past rows.
type specialRow [5]plan7.Score

// AlignAlignmentViterbi runs Viterbi over a column-consensus of an
// alignment instead of a single digitized sequence: each column's
// emission is the consensus-weighted average match/insert score, and
// transitions into and out of I are scaled by fractional column
// occupancy. Instead of a score matrix it fills a shadow matrix
// recording the argmax at every cell, which WalkShadow then reads to
// produce a master trace of the alignment against the model.
func AlignAlignmentViterbi(mdl *plan7.Model, alpha alphabet.Alphabet, aln Alignment) (plan7.Score, *trace.Trace, error) {
	if !mdl.IsLogoddsified() {
		return 0, nil, ErrNotLogoddsified
	}
	alen := aln.Alen()
	if alen < 1 || len(aln.Rows) == 0 {
		return 0, nil, ErrNoConsensus
	}
	m := mdl.M
	asize := len(mdl.Alpha)

	con, mocc := consensus(aln, alpha, asize)

	shadow, err := matrix.NewShadow(alen, m)
	if err != nil {
		return 0, nil, err
	}

	var mmx, imx, dmx [2][]plan7.Score
	for r := 0; r < 2; r++ {
		mmx[r] = make([]plan7.Score, m+1)
		imx[r] = make([]plan7.Score, m+1)
		dmx[r] = make([]plan7.Score, m+1)
		for k := 0; k <= m; k++ {
			mmx[r][k], imx[r][k], dmx[r][k] = plan7.NegInf, plan7.NegInf, plan7.NegInf
		}
	}
	esrc := make([]int, alen+1)
	xhist := make([]specialRow, alen+1)

	xhist[0][plan7.XTN] = 0
	xhist[0][plan7.XTB] = mdl.XTransitionScore(plan7.XTN, plan7.Move)
	xhist[0][plan7.XTE] = plan7.NegInf
	xhist[0][plan7.XTC] = plan7.NegInf
	xhist[0][plan7.XTJ] = plan7.NegInf

	for i := 1; i <= alen; i++ {
		cur := i % 2
		prv := 1 - cur
		counts := con[i]
		prev := xhist[i-1]
		var row specialRow

		mmx[cur][0], imx[cur][0], dmx[cur][0] = plan7.NegInf, plan7.NegInf, plan7.NegInf

		for k := 1; k <= m; k++ {
			mBest, mPtr := plan7.NegInf, matrix.PtrNone
			if cand := mmx[prv][k-1].Add(mdl.TransitionScore(plan7.TMM, k-1)); cand > mBest {
				mBest, mPtr = cand, matrix.PtrM
			}
			if cand := imx[prv][k-1].Add(scaleScore(mdl.TransitionScore(plan7.TIM, k-1), mocc[i-1])); cand > mBest {
				mBest, mPtr = cand, matrix.PtrI
			}
			if cand := prev[plan7.XTB].Add(mdl.Begin[k]); cand > mBest {
				mBest, mPtr = cand, matrix.PtrB
			}
			if cand := dmx[prv][k-1].Add(mdl.TransitionScore(plan7.TDM, k-1)); cand > mBest {
				mBest, mPtr = cand, matrix.PtrD
			}
			emit := weightedEmission(counts, columnOf(mdl.MatchScore, k))
			if mBest != plan7.NegInf && emit != plan7.NegInf {
				mBest = mBest.Add(emit)
			} else {
				mBest = plan7.NegInf
			}
			mmx[cur][k] = mBest
			shadow.SetM(i, k, mPtr)

			dBest, dPtr := plan7.NegInf, matrix.PtrNone
			if cand := mmx[cur][k-1].Add(mdl.TransitionScore(plan7.TMD, k-1)); cand > dBest {
				dBest, dPtr = cand, matrix.PtrM
			}
			if cand := dmx[cur][k-1].Add(mdl.TransitionScore(plan7.TDD, k-1)); cand > dBest {
				dBest, dPtr = cand, matrix.PtrD
			}
			dmx[cur][k] = dBest
			shadow.SetD(i, k, dPtr)

			if k < m {
				iBest, iPtr := plan7.NegInf, matrix.PtrNone
				if cand := mmx[prv][k].Add(scaleScore(mdl.TransitionScore(plan7.TMI, k), mocc[i])); cand > iBest {
					iBest, iPtr = cand, matrix.PtrM
				}
				if cand := imx[prv][k].Add(scaleScore(mdl.TransitionScore(plan7.TII, k), mocc[i-1]*mocc[i])); cand > iBest {
					iBest, iPtr = cand, matrix.PtrI
				}
				emit := weightedEmission(counts, columnOf(mdl.InsertScore, k))
				if iBest != plan7.NegInf && emit != plan7.NegInf {
					iBest = iBest.Add(emit)
				} else {
					iBest = plan7.NegInf
				}
				imx[cur][k] = iBest
				shadow.SetI(i, k, iPtr)
			}
		}

		if prev[plan7.XTN] != plan7.NegInf {
			row[plan7.XTN] = scaleScore(mdl.XTransitionScore(plan7.XTN, plan7.Loop), mocc[i]).Add(prev[plan7.XTN])
		} else {
			row[plan7.XTN] = plan7.NegInf
		}

		eBest := plan7.NegInf
		for k := 1; k <= m; k++ {
			if cand := mmx[cur][k].Add(mdl.End[k]); cand > eBest {
				eBest = cand
				esrc[i] = k
			}
		}
		row[plan7.XTE] = eBest
		row[plan7.XTB] = row[plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Move))

		cBest := plan7.NegInf
		if prev[plan7.XTC] != plan7.NegInf {
			cBest = plan7.Max(cBest, scaleScore(mdl.XTransitionScore(plan7.XTC, plan7.Loop), mocc[i]).Add(prev[plan7.XTC]))
		}
		cBest = plan7.Max(cBest, row[plan7.XTE].Add(mdl.XTransitionScore(plan7.XTE, plan7.Move)))
		row[plan7.XTC] = cBest
		row[plan7.XTJ] = plan7.NegInf

		xhist[i] = row
	}

	score := xhist[alen][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Move))

	tr, err := WalkShadow(shadow, mdl, xhist, esrc, alen)
	if err != nil {
		return 0, nil, err
	}
	return score, tr, nil
}

// WalkShadow reconstructs a master trace from a shadow matrix produced
// by AlignAlignmentViterbi, inserting the wing-unfolding D-runs that
// the B and E cases need when the model's local begin/end score
// departs from its "fully wing-folded" probability, grounded on
// `original_source/src/algorithms.c`'s `ShadowTrace`, the one
// traceback in this module where the per-node begin/end probabilities
// that comparison needs are still present in the retrieved source,
// unlike the missing `Plan7SWConfig`-family bodies that led the rest
// of this package to the simpler AllowsLocalEntry() rule (see
// DESIGN.md).
func WalkShadow(shadow *matrix.Shadow, mdl *plan7.Model, xhist []specialRow, esrc []int, l int) (*trace.Trace, error) {
	var rev []trace.State
	push := func(s trace.State) { rev = append(rev, s) }

	i, k := l, 0
	state := trace.C
	push(trace.State{Type: trace.T})

	for state != trace.S {
		switch state {
		case trace.M:
			push(trace.State{Type: trace.M, Node: k, Pos: i})
			// M's predecessor search always lands one row and one node
			// back regardless of which predecessor wins: M_{k-1}/I_{k-1}
			// at row i-1, B at row i-1 (wing-unfold context wants k-1,
			// recovered as k+1 inside wingUnfoldEntry), or D_{k-1} at
			// row i (i is corrected back below for that case).
			ptr := shadow.M(i, k)
			k--
			i--
			switch ptr {
			case matrix.PtrM:
				state = trace.M
			case matrix.PtrI:
				state = trace.I
			case matrix.PtrB:
				state = trace.B
			case matrix.PtrD:
				i++ // D predecessor is same row, only k moved back
				state = trace.D
			default:
				return nil, ErrUnreachable
			}

		case trace.I:
			push(trace.State{Type: trace.I, Node: k, Pos: i})
			switch shadow.I(i, k) {
			case matrix.PtrM:
				state, i = trace.M, i-1
			case matrix.PtrI:
				state, i = trace.I, i-1
			default:
				return nil, ErrUnreachable
			}

		case trace.D:
			push(trace.State{Type: trace.D, Node: k})
			ptr := shadow.D(i, k)
			k--
			switch ptr {
			case matrix.PtrM:
				state = trace.M
			case matrix.PtrD:
				state = trace.D
			default:
				return nil, ErrUnreachable
			}

		case trace.N:
			loops := i > 0 && xhist[i-1][plan7.XTN].Add(mdl.XTransitionScore(plan7.XTN, plan7.Loop)) == xhist[i][plan7.XTN]
			if loops {
				push(trace.State{Type: trace.N, Pos: i})
				i--
			} else {
				push(trace.State{Type: trace.N, Pos: 0})
				push(trace.State{Type: trace.S})
				state = trace.S
				continue
			}

		case trace.B:
			if wingUnfoldEntry(mdl, k) {
				for k > 0 {
					push(trace.State{Type: trace.D, Node: k})
					k--
				}
			}
			push(trace.State{Type: trace.B})
			state = trace.N

		case trace.E:
			push(trace.State{Type: trace.E})
			k = esrc[i]
			if wingUnfoldExit(mdl, k) {
				for dk := mdl.M; dk > k; dk-- {
					push(trace.State{Type: trace.D, Node: dk})
				}
			}
			state = trace.M

		case trace.C:
			loops := i > 0 && xhist[i-1][plan7.XTC].Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop)) == xhist[i][plan7.XTC]
			if loops {
				push(trace.State{Type: trace.C, Pos: i})
				i--
			} else {
				push(trace.State{Type: trace.C, Pos: 0})
				state = trace.E
			}
		}
	}

	return &trace.Trace{States: reverseStates(rev)}, nil
}

// wingUnfoldEntry/wingUnfoldExit reproduce the original's direct
// probability-vs-score comparison for the restored wing-unfolding
// path, using the raw begin/end probabilities this comparison needs.
func wingUnfoldEntry(mdl *plan7.Model, k int) bool {
	if k < 0 || k >= mdl.M {
		return false
	}
	return plan7.Prob2Score(mdl.Nodes[k+1].Begin, mdl.P1)+plan7.IntScale <= mdl.Begin[k+1]
}

func wingUnfoldExit(mdl *plan7.Model, k int) bool {
	if k <= 0 || k > mdl.M {
		return false
	}
	return plan7.Prob2Score(mdl.Nodes[k].End, 1.0)+plan7.IntScale <= mdl.End[k]
}
