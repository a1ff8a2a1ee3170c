package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/matrix"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// Viterbi computes the single best-scoring alignment of dsq against
// mdl and reconstructs its trace.
//
// Wing folding is not modeled as a separate fold/unfold step: under a
// configuration that forbids local entry/exit, Begin/End are already
// -inf at every internal node so the recurrence itself forces entry at
// node 1 and exit at node M; under a configuration that allows local
// entry/exit, Begin/End carry a direct score at every node, so no
// synthetic run of D states needs to be inserted during traceback (see
// DESIGN.md's wing-folding decision).
func Viterbi(mdl *plan7.Model, dsq alphabet.DigitizedSequence) (plan7.Score, *trace.Trace, error) {
	if !mdl.IsLogoddsified() {
		return 0, nil, ErrNotLogoddsified
	}
	if dsq.L < 1 {
		return 0, nil, ErrEmptySequence
	}
	mat, err := matrix.NewFull(dsq.L, mdl.M)
	if err != nil {
		return 0, nil, err
	}
	initRow0(mat, mdl)
	for i := 1; i <= dsq.L; i++ {
		fillRow(mat, mdl, dsq, i, plan7.Max)
	}
	score := terminate(mat, mdl, dsq.L)

	tr, err := viterbiTraceback(mat, mdl, dsq)
	if err != nil {
		return score, nil, err
	}
	return score, tr, nil
}

// decomposeE returns the smallest k such that M[i][k]+End[k] equals
// xE[i]; ties break toward the lowest node, the same ascending-k order
// the recurrence itself used to accumulate xE.
func decomposeE(mat *matrix.Full, mdl *plan7.Model, i int) (int, bool) {
	target := mat.X(i, plan7.XTE)
	for k := 1; k <= mdl.M; k++ {
		if mat.M_(i, k).Add(mdl.End[k]) == target {
			return k, true
		}
	}
	return 0, false
}

// walkCTail walks a C-state run backward from row i, pushing one C
// state per residue the C-loop actually emitted, then always one more
// non-emitting C placeholder marking the E->C move that started the
// run, even when the run emitted nothing.
func walkCTail(mat *matrix.Full, mdl *plan7.Model, i int, push func(trace.State)) (int, error) {
	for {
		if i > 0 {
			loopVal := mat.X(i-1, plan7.XTC).Add(mdl.XTransitionScore(plan7.XTC, plan7.Loop))
			if loopVal == mat.X(i, plan7.XTC) {
				push(trace.State{Type: trace.C, Pos: i})
				i--
				continue
			}
		}
		moveVal := mat.X(i, plan7.XTE).Add(mdl.XTransitionScore(plan7.XTE, plan7.Move))
		if moveVal == mat.X(i, plan7.XTC) {
			push(trace.State{Type: trace.C, Pos: 0})
			return i, nil
		}
		return 0, ErrUnreachable
	}
}

// walkNHead walks the N-state run backward from row i (B's row) to
// row 0, pushing one N per residue it emitted plus always one more
// placeholder N at the very front of the path.
func walkNHead(i int, push func(trace.State)) {
	for cur := i; cur >= 1; cur-- {
		push(trace.State{Type: trace.N, Pos: cur})
	}
	push(trace.State{Type: trace.N, Pos: 0})
}

// walkJTail mirrors walkCTail for a J run: it either emits via the
// J-loop or arrives (same row) from the previous domain's E via the
// J-loop-from-E transition, always ending in one placeholder J.
// Returns the row at which the preceding domain's E must be
// decomposed next.
func walkJTail(mat *matrix.Full, mdl *plan7.Model, i int, push func(trace.State)) (int, error) {
	for {
		if i > 0 {
			loopVal := mat.X(i-1, plan7.XTJ).Add(mdl.XTransitionScore(plan7.XTJ, plan7.Loop))
			if loopVal == mat.X(i, plan7.XTJ) {
				push(trace.State{Type: trace.J, Pos: i})
				i--
				continue
			}
		}
		eLoop := mat.X(i, plan7.XTE).Add(mdl.XTransitionScore(plan7.XTE, plan7.Loop))
		if eLoop == mat.X(i, plan7.XTJ) {
			push(trace.State{Type: trace.J, Pos: 0})
			return i, nil
		}
		return 0, ErrUnreachable
	}
}

func viterbiTraceback(mat *matrix.Full, mdl *plan7.Model, dsq alphabet.DigitizedSequence) (*trace.Trace, error) {
	l := dsq.L
	var rev []trace.State
	push := func(s trace.State) { rev = append(rev, s) }

	push(trace.State{Type: trace.T})

	i, err := walkCTail(mat, mdl, l, push)
	if err != nil {
		return nil, err
	}

	for {
		push(trace.State{Type: trace.E})
		k, ok := decomposeE(mat, mdl, i)
		if !ok {
			return nil, ErrUnreachable
		}
		nodeState := trace.State{Type: trace.M, Node: k, Pos: i}

		// Walk the node chain (M/I/D) back to B, staying on row i until an
		// emitting step moves to a prior row.
		for nodeState.Type != trace.B {
			switch nodeState.Type {
			case trace.M:
				push(nodeState)
				k := nodeState.Node
				sym := int(dsq.At(nodeState.Pos))
				msc := plan7.NegInf
				if sym >= 0 {
					msc = mdl.MatchEmission(sym, k)
				}
				// Traceback re-derives the prior state by subtracting the
				// emission score baked into this cell before testing each
				// predecessor path, since predecessors carry no emission.
				cur := mat.M_(nodeState.Pos, k) - msc
				pi := nodeState.Pos - 1
				switch {
				case k >= 1 && mat.M_(pi, k-1).Add(mdl.TransitionScore(plan7.TMM, k-1)) == cur:
					nodeState = trace.State{Type: trace.M, Node: k - 1, Pos: pi}
				case k >= 1 && mat.I_(pi, k-1).Add(mdl.TransitionScore(plan7.TIM, k-1)) == cur:
					nodeState = trace.State{Type: trace.I, Node: k - 1, Pos: pi}
				case mat.X(pi, plan7.XTB).Add(mdl.Begin[k]) == cur:
					nodeState = trace.State{Type: trace.B, Pos: pi}
				case k >= 1 && mat.D_(pi, k-1).Add(mdl.TransitionScore(plan7.TDM, k-1)) == cur:
					nodeState = trace.State{Type: trace.D, Node: k - 1, Pos: pi}
				default:
					return nil, ErrUnreachable
				}
			case trace.I:
				push(nodeState)
				k := nodeState.Node
				sym := int(dsq.At(nodeState.Pos))
				isc := plan7.NegInf
				if sym >= 0 {
					isc = mdl.InsertEmission(sym, k)
				}
				cur := mat.I_(nodeState.Pos, k) - isc
				pi := nodeState.Pos - 1
				switch {
				case mat.M_(pi, k).Add(mdl.TransitionScore(plan7.TMI, k)) == cur:
					nodeState = trace.State{Type: trace.M, Node: k, Pos: pi}
				case mat.I_(pi, k).Add(mdl.TransitionScore(plan7.TII, k)) == cur:
					nodeState = trace.State{Type: trace.I, Node: k, Pos: pi}
				default:
					return nil, ErrUnreachable
				}
			case trace.D:
				push(nodeState)
				k := nodeState.Node
				cur := mat.D_(nodeState.Pos, k)
				ci := nodeState.Pos
				switch {
				case k >= 1 && mat.M_(ci, k-1).Add(mdl.TransitionScore(plan7.TMD, k-1)) == cur:
					nodeState = trace.State{Type: trace.M, Node: k - 1, Pos: ci}
				case k >= 1 && mat.D_(ci, k-1).Add(mdl.TransitionScore(plan7.TDD, k-1)) == cur:
					nodeState = trace.State{Type: trace.D, Node: k - 1, Pos: ci}
				default:
					return nil, ErrUnreachable
				}
			}
		}
		i = nodeState.Pos
		push(trace.State{Type: trace.B}) // B always carries Pos 0

		nMove := mat.X(i, plan7.XTN).Add(mdl.XTransitionScore(plan7.XTN, plan7.Move))
		jMove := mat.X(i, plan7.XTJ).Add(mdl.XTransitionScore(plan7.XTJ, plan7.Move))
		cur := mat.X(i, plan7.XTB)
		switch {
		case nMove == cur:
			walkNHead(i, push)
			push(trace.State{Type: trace.S})
			return &trace.Trace{States: reverseStates(rev)}, nil
		case jMove == cur:
			next, err := walkJTail(mat, mdl, i, push)
			if err != nil {
				return nil, err
			}
			i = next
			continue
		default:
			return nil, ErrUnreachable
		}
	}
}

func reverseStates(rev []trace.State) []trace.State {
	out := make([]trace.State, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out
}
