package trace

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
)

// Score walks the trace summing the transition score for each adjacent
// state pair and the emission score at each emitter, then converts the
// integer total to a real number. N/C/J emissions are scored at 0:
// they are log-odds against the same null model they draw from, so
// their contribution cancels by construction.
func Score(tr *Trace, mdl *plan7.Model, dsq alphabet.DigitizedSequence) (float64, error) {
	if len(tr.States) == 0 {
		return 0, ErrEmpty
	}
	total := plan7.Score(0)
	for i, st := range tr.States {
		if st.Type.IsEmitter() && (st.Type == M || st.Type == I) {
			sym := int(dsq.At(st.Pos))
			if sym >= 0 {
				if st.Type == M {
					total = total.Add(mdl.MatchEmission(sym, st.Node))
				} else {
					total = total.Add(mdl.InsertEmission(sym, st.Node))
				}
			}
		}
		if i == 0 {
			continue
		}
		from := tr.States[i-1]
		total = total.Add(transitionBetween(mdl, from, st))
	}
	return total.Real(), nil
}

func transitionBetween(mdl *plan7.Model, from, to State) plan7.Score {
	switch {
	case from.Type == S:
		return 0
	case from.Type == N && to.Type == N:
		return mdl.XTransitionScore(plan7.XTN, plan7.Loop)
	case from.Type == N && to.Type == B:
		return mdl.XTransitionScore(plan7.XTN, plan7.Move)
	case from.Type == J && to.Type == B:
		return mdl.XTransitionScore(plan7.XTJ, plan7.Move)
	case from.Type == B && to.Type == M:
		return mdl.Begin[to.Node]
	case from.Type == M && to.Type == M:
		return mdl.TransitionScore(plan7.TMM, from.Node)
	case from.Type == M && to.Type == I:
		return mdl.TransitionScore(plan7.TMI, from.Node)
	case from.Type == M && to.Type == D:
		return mdl.TransitionScore(plan7.TMD, from.Node)
	case from.Type == I && to.Type == M:
		return mdl.TransitionScore(plan7.TIM, from.Node)
	case from.Type == I && to.Type == I:
		return mdl.TransitionScore(plan7.TII, from.Node)
	case from.Type == D && to.Type == M:
		return mdl.TransitionScore(plan7.TDM, from.Node)
	case from.Type == D && to.Type == D:
		return mdl.TransitionScore(plan7.TDD, from.Node)
	case (from.Type == M || from.Type == D) && to.Type == E:
		return mdl.End[from.Node]
	case from.Type == E && to.Type == C:
		return mdl.XTransitionScore(plan7.XTE, plan7.Move)
	case from.Type == E && to.Type == J:
		return mdl.XTransitionScore(plan7.XTE, plan7.Loop)
	case from.Type == J && to.Type == J:
		return mdl.XTransitionScore(plan7.XTJ, plan7.Loop)
	case from.Type == C && to.Type == C:
		return mdl.XTransitionScore(plan7.XTC, plan7.Loop)
	case from.Type == C && to.Type == T:
		return mdl.XTransitionScore(plan7.XTC, plan7.Move)
	default:
		return plan7.NegInf
	}
}
