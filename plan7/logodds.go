package plan7

import "github.com/MichiganTech/hmmer-sub001/alphabet"

// Logoddsify fills MatchScore, InsertScore, Trans, Begin, End and
// SpecialScore from the model's raw probabilities, scoring every
// emission against the null background. When mdl.ViterbiMode is true,
// insert emission scores are forced to 0 so that Viterbi-mode
// alignments never reward or penalize insertions by composition,
// matching the reference implementation's "Viterbi scores" convention.
//
// alpha must carry the same core residues as mdl.Alpha (same count,
// same order); Logoddsify uses its IUPAC degeneracy table to size
// MatchScore/InsertScore over every symbol a digitized sequence can
// actually contain, not just the core residues the model was trained
// on. A degenerate symbol's score is the average of its expansion's
// match/null probabilities, each core residue weighted 1/(size of the
// expansion) exactly as P7CountSymbol spreads a training count across
// a degenerate code's members; the unknown symbol (no explicit
// expansion) is scored the same way averaged over every core residue.
//
// Wing folding: under a configuration that allows local entry/exit,
// Begin[k] for k>1 and End[k] for k<M are treated as reachable
// directly rather than only via the D-state wing, so no extra
// allowance is made for the skipped delete run; under a global
// configuration, only Begin[1] and End[M] carry score and the
// intervening path is entirely through D-states as usual.
func (mdl *Model) Logoddsify(alpha alphabet.Alphabet) error {
	asize := alpha.A()
	if len(mdl.Alpha) != asize || len(mdl.Null) != asize {
		return ErrAlphabetSize
	}
	size := alpha.Size()

	mdl.MatchScore = make([][]Score, size)
	mdl.InsertScore = make([][]Score, size)
	for x := 0; x < size; x++ {
		mdl.MatchScore[x] = make([]Score, mdl.M+1)
		mdl.InsertScore[x] = make([]Score, mdl.M+1)
	}
	for t := TransIdx(0); t < numTrans; t++ {
		mdl.Trans[t] = make([]Score, mdl.M+1)
		mdl.Trans[t][0] = NegInf
	}
	mdl.Begin = make([]Score, mdl.M+1)
	mdl.End = make([]Score, mdl.M+1)
	mdl.Begin[0] = NegInf
	mdl.End[0] = NegInf

	for k := 1; k <= mdl.M; k++ {
		node := &mdl.Nodes[k]
		if len(node.Match) != asize || len(node.Insert) != asize {
			return ErrAlphabetSize
		}
		for x := 0; x < asize; x++ {
			mdl.MatchScore[x][k] = Prob2Score(node.Match[x], mdl.Null[x])
			if mdl.ViterbiMode {
				mdl.InsertScore[x][k] = 0
			} else {
				mdl.InsertScore[x][k] = Prob2Score(node.Insert[x], mdl.Null[x])
			}
		}
		for x := asize; x < size; x++ {
			mdl.MatchScore[x][k] = degenerateScore(alpha, x, asize, node.Match, mdl.Null)
			if mdl.ViterbiMode {
				mdl.InsertScore[x][k] = 0
			} else {
				mdl.InsertScore[x][k] = degenerateScore(alpha, x, asize, node.Insert, mdl.Null)
			}
		}
		for t := TransIdx(0); t < numTrans; t++ {
			mdl.Trans[t][k] = Prob2Score(node.Trans[t], 1.0)
		}

		if k == 1 || mdl.Config.AllowsLocalEntry() {
			mdl.Begin[k] = Prob2Score(node.Begin, 1.0)
		} else {
			mdl.Begin[k] = NegInf
		}
		if k == mdl.M || mdl.Config.AllowsLocalEntry() {
			mdl.End[k] = Prob2Score(node.End, 1.0)
		} else {
			mdl.End[k] = NegInf
		}
	}

	for x := XState(0); x < numXStates; x++ {
		mdl.SpecialScore[x][Move] = Prob2Score(mdl.Special[x][Move], 1.0)
		mdl.SpecialScore[x][Loop] = Prob2Score(mdl.Special[x][Loop], 1.0)
	}

	mdl.logoddsified = true
	return nil
}

// degenerateScore scores symbol index x (a degenerate code or the
// unknown symbol) by averaging prob/null uniformly over the core
// residues its expansion covers, the same 1/count weighting
// P7CountSymbol gives each expansion member when accumulating training
// counts.
func degenerateScore(alpha alphabet.Alphabet, x, asize int, prob, null []float64) Score {
	code := alpha.Byte(alphabet.Symbol(x))
	members := alpha.Expansion(code)
	if len(members) == 0 {
		var p, n float64
		for i := 0; i < asize; i++ {
			p += prob[i]
			n += null[i]
		}
		return Prob2Score(p/float64(asize), n/float64(asize))
	}
	var p, n float64
	for _, m := range members {
		i := int(alpha.Index(m))
		p += prob[i]
		n += null[i]
	}
	count := float64(len(members))
	return Prob2Score(p/count, n/count)
}

// IsLogoddsified reports whether Logoddsify has been run since the
// model's probabilities last changed.
func (mdl *Model) IsLogoddsified() bool { return mdl.logoddsified }
