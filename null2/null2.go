// Package null2 implements the ad-hoc post hoc null model correction
// applied to a trace's raw score before it is reported as a hit.
//
// The correction's purpose is to penalize sequences that score well
// against a profile purely because of compositional bias (e.g. a
// low-complexity, proline-rich region) rather than genuine homology.
// It is "ad-hoc" in the same sense the original implementation calls
// it that: there is no principled Bayesian derivation, just a
// widely-used heuristic that works well in practice.
package null2

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// Correction holds the derived second null model and the score
// adjustment it implies.
type Correction struct {
	// Null2 is the position-independent, trace-derived background
	// distribution: a second null model built from the emission
	// profile the trace visits.
	Null2 []float64
	// Score is the total correction; callers subtract this from a raw
	// trace score to get the corrected score.
	Score plan7.Score
}

// TraceScoreCorrection computes the null2 correction for one trace
// against the digitized sequence it aligns. It is applied per domain
// trace, not to a whole multi-domain trace, matching the original's
// per-domain rescoring loop.
//
// The original's own `TraceScoreCorrection` body was not present in
// the retrieved source (only its declaration in funcs.h survived), so
// this builds the second null model as a pseudocount-smoothed mixture
// of the model's per-node emission probabilities at every M/I state
// the trace visits, blended with one pseudocount of the ordinary
// background null to avoid a zero probability at a residue the
// trace's visited nodes never emit. This is recorded here as a
// documented design decision, the same way the wing-folding
// simplification in plan7/logodds.go (Logoddsify) is (see DESIGN.md).
func TraceScoreCorrection(mdl *plan7.Model, tr *trace.Trace, dsq alphabet.DigitizedSequence) (Correction, error) {
	if tr == nil || len(tr.States) == 0 {
		return Correction{}, trace.ErrEmpty
	}
	a := len(mdl.Null)

	mix := make([]float64, a)
	visited := 0
	for _, st := range tr.States {
		switch st.Type {
		case trace.M:
			node := &mdl.Nodes[st.Node]
			for x := 0; x < a; x++ {
				mix[x] += node.Match[x]
			}
			visited++
		case trace.I:
			node := &mdl.Nodes[st.Node]
			for x := 0; x < a; x++ {
				mix[x] += node.Insert[x]
			}
			visited++
		}
	}

	null2 := make([]float64, a)
	for x := 0; x < a; x++ {
		null2[x] = (mdl.Null[x] + mix[x]) / float64(1+visited)
	}

	total := plan7.Score(0)
	for _, st := range tr.States {
		if st.Type != trace.M && st.Type != trace.I {
			continue
		}
		sym := int(dsq.At(st.Pos))
		if sym < 0 || sym >= a {
			continue
		}
		total = total.Add(plan7.Prob2Score(null2[sym], mdl.Null[sym]))
	}

	return Correction{Null2: null2, Score: total}, nil
}

// Apply subtracts a trace's null2 correction from its raw score, as
// part of the domain rescoring step.
func Apply(mdl *plan7.Model, tr *trace.Trace, dsq alphabet.DigitizedSequence, raw plan7.Score) (plan7.Score, error) {
	corr, err := TraceScoreCorrection(mdl, tr, dsq)
	if err != nil {
		return 0, err
	}
	return raw.Add(-corr.Score), nil
}
