package hit

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// RenderFancyAlignment builds the three-line human-readable alignment
// from one domain trace: the model's consensus residue per matched
// column, a match-quality line, and the aligned sequence itself, each
// padded with gaps where the trace inserts or deletes.
//
// `CreateFancyAli`'s body was not present in the retrieved source
// (only its declaration in funcs.h survived), so this follows the same
// convention HMMER's own alignment output uses: consensus is each
// matched node's most probable residue, the match line marks an exact
// match to consensus uppercase, a positive-scoring substitution with
// '+', and anything else with a space.
func RenderFancyAlignment(mdl *plan7.Model, alpha alphabet.Alphabet, dtr *trace.Trace, dsq alphabet.DigitizedSequence) (*FancyAlignment, error) {
	if dtr == nil || len(dtr.States) == 0 {
		return nil, trace.ErrEmpty
	}

	var cons, match, seq []byte
	fa := &FancyAlignment{}
	first := true

	for _, st := range dtr.States {
		switch st.Type {
		case trace.M:
			node := &mdl.Nodes[st.Node]
			consSym := argmaxSymbol(node.Match)
			consByte := alpha.Byte(consSym)
			sym := dsq.At(st.Pos)
			seqByte := alpha.Byte(sym)

			cons = append(cons, consByte)
			seq = append(seq, seqByte)
			match = append(match, matchChar(consByte, seqByte, mdl.MatchScore[int(sym)][st.Node]))

			if first {
				fa.ModelStart, fa.SeqStart = st.Node, st.Pos
				first = false
			}
			fa.ModelEnd, fa.SeqEnd = st.Node, st.Pos

		case trace.I:
			sym := dsq.At(st.Pos)
			cons = append(cons, '.')
			match = append(match, ' ')
			seq = append(seq, lowerByte(alpha.Byte(sym)))
			fa.SeqEnd = st.Pos

		case trace.D:
			node := &mdl.Nodes[st.Node]
			cons = append(cons, alpha.Byte(argmaxSymbol(node.Match)))
			match = append(match, ' ')
			seq = append(seq, '-')
			if first {
				fa.ModelStart = st.Node
				first = false
			}
			fa.ModelEnd = st.Node
		}
	}

	fa.Consensus = string(cons)
	fa.MatchLine = string(match)
	fa.Sequence = string(seq)
	return fa, nil
}

func argmaxSymbol(probs []float64) alphabet.Symbol {
	best, bestP := 0, -1.0
	for x, p := range probs {
		if p > bestP {
			best, bestP = x, p
		}
	}
	return alphabet.Symbol(best)
}

func matchChar(consByte, seqByte byte, score plan7.Score) byte {
	if upperByte(consByte) == upperByte(seqByte) {
		return upperByte(consByte)
	}
	if score > 0 {
		return '+'
	}
	return ' '
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
