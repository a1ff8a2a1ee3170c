package dpalgo

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// DefaultRAMLimit is the conventional 32 MB soft cap above which
// SmallViterbi prefers the linear-memory wee Viterbi over a full
// (L+1)x(M+1) matrix.
const DefaultRAMLimit = 32 * 1024 * 1024

// bytesPerCell approximates one DP cell's footprint: three Score
// planes (M/I/D) at 4 bytes each, matching matrix.Full's layout.
const bytesPerCell = 3 * 4

// ViterbiSpaceOK reports whether a full Viterbi matrix for a
// subsequence of length sqlen against an M-node model fits within
// ramLimit bytes.
func ViterbiSpaceOK(sqlen, m int, ramLimit int64) bool {
	need := int64(sqlen+1) * int64(m+1) * bytesPerCell
	return need <= ramLimit
}

// SmallViterbi computes the optimal score and trace the same way
// Viterbi does, but does it by first parsing the sequence into
// single-hit subsequences (ParsingViterbi) and then recovering each
// subsequence's full trace with whichever of Viterbi or WeeViterbi fits
// ramLimit, stitching the results back into one trace. It is the
// memory-bounded counterpart to Viterbi for sequences too long to
// matrix-score directly.
func SmallViterbi(mdl *plan7.Model, dsq alphabet.DigitizedSequence, ramLimit int64) (plan7.Score, *trace.Trace, error) {
	if !mdl.IsLogoddsified() {
		return 0, nil, ErrNotLogoddsified
	}
	l := dsq.L
	if l < 1 {
		return 0, nil, ErrEmptySequence
	}

	sc, ctr, err := ParsingViterbi(mdl, dsq)
	if err != nil {
		return 0, nil, err
	}
	if len(ctr.Domains) == 0 {
		tr := trace.New(l)
		tr.Append(trace.State{Type: trace.S}, l)
		for pos := 0; pos <= l; pos++ {
			tr.Append(trace.State{Type: trace.N, Pos: pos}, l)
		}
		for pos := 1; pos <= l; pos++ {
			tr.Append(trace.State{Type: trace.C, Pos: pos}, l)
		}
		tr.Append(trace.State{Type: trace.T}, l)
		return sc, tr, nil
	}

	subtraces := make([]*trace.Trace, len(ctr.Domains))
	for i, dom := range ctr.Domains {
		sub := dsq.Slice(dom.B+1, dom.E)
		sqlen := dom.E - dom.B

		var subTr *trace.Trace
		var subErr error
		switch {
		case ViterbiSpaceOK(sqlen, mdl.M, ramLimit):
			_, subTr, subErr = Viterbi(mdl, sub)
		case sqlen == 1:
			_, subTr, subErr = Viterbi(mdl, sub)
		default:
			_, subTr, subErr = WeeViterbi(mdl, sub)
		}
		if subErr != nil {
			return 0, nil, subErr
		}
		subtraces[i] = subTr
	}

	tr := stitchSmallTrace(l, ctr.Domains, subtraces)
	return sc, tr, nil
}

// stitchSmallTrace composes the per-domain subtraces (each framed
// S-N-B-...-E-C-T over its own local coordinates) into one full trace
// over the original sequence, re-offsetting each subtrace's positions
// and filling in the implied N-head, inter-domain J-run, and C-tail
// states that ParsingViterbi's collapsed boundaries leave implicit,
// grounded on `original_source/src/algorithms.c`'s `P7SmallViterbi`
// trace-composition step.
func stitchSmallTrace(l int, domains []Boundary, subtraces []*trace.Trace) *trace.Trace {
	tr := trace.New(l)
	tr.Append(trace.State{Type: trace.S}, l)
	tr.Append(trace.State{Type: trace.N, Pos: 0}, l)
	for pos := 1; pos <= domains[0].B; pos++ {
		tr.Append(trace.State{Type: trace.N, Pos: pos}, l)
	}

	for i, dom := range domains {
		sub := subtraces[i].States
		for _, st := range sub[2 : len(sub)-2] {
			offset := st
			if offset.Pos > 0 {
				offset.Pos += dom.B
			}
			tr.Append(offset, l)
		}

		if i == len(domains)-1 {
			tr.Append(trace.State{Type: trace.C, Pos: 0}, l)
		} else {
			tr.Append(trace.State{Type: trace.J, Pos: 0}, l)
			next := domains[i+1]
			for pos := dom.E + 1; pos <= next.B; pos++ {
				tr.Append(trace.State{Type: trace.J, Pos: pos}, l)
			}
		}
	}

	last := domains[len(domains)-1]
	for pos := last.E + 1; pos <= l; pos++ {
		tr.Append(trace.State{Type: trace.C, Pos: pos}, l)
	}
	tr.Append(trace.State{Type: trace.T}, l)
	return tr
}
