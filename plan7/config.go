package plan7

// ConfigureNaked sets the model to the trivial topology: no local
// entry or exit (B->M1 and Mm->E only) and no flanking/multi-hit
// special-state loops at all. It is the base state every other
// Configure* function starts from.
func (mdl *Model) ConfigureNaked() {
	mdl.setGlobalBeginEnd()
	mdl.Special[XTN] = [2]float64{1, 0} // [Move, Loop]: N always moves on, no flank
	mdl.Special[XTC] = [2]float64{1, 0}
	mdl.Special[XTE] = [2]float64{1, 0} // E always moves to C, no J reentry
	mdl.Special[XTJ] = [2]float64{1, 0}
	mdl.Config = ConfigNaked
}

// ConfigureGlobal requires the whole model to be matched (B->M1,
// Mm->E) but allows unaligned flanking residues via N/C self-loops.
// No multi-hit: a single domain per sequence.
func (mdl *Model) ConfigureGlobal(flankLoop float64) {
	mdl.setGlobalBeginEnd()
	mdl.Special[XTN] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTC] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTE] = [2]float64{1, 0}
	mdl.Special[XTJ] = [2]float64{1, 0}
	mdl.Config = ConfigGlobal
}

// ConfigureLS requires the whole model to be matched per domain (as
// Global does) but allows multiple domains per sequence via J-state
// reentry, and flanking via N/C (HMMER's "ls" mode).
func (mdl *Model) ConfigureLS(flankLoop, jLoop float64) {
	mdl.setGlobalBeginEnd()
	mdl.Special[XTN] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTC] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTE] = [2]float64{1 - jLoop, jLoop}
	mdl.Special[XTJ] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Config = ConfigLS
}

// ConfigureSW spreads entry/exit probability across all nodes (local
// alignment) and disallows multi-hit: one domain is reported per
// sequence (HMMER's "sw" mode).
func (mdl *Model) ConfigureSW(pentry, pexit, flankLoop float64) {
	mdl.setLocalBeginEnd(pentry, pexit)
	mdl.Special[XTN] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTC] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTE] = [2]float64{1, 0}
	mdl.Special[XTJ] = [2]float64{1, 0}
	mdl.Config = ConfigSW
}

// ConfigureFS spreads entry/exit probability across all nodes (local
// alignment) and allows multi-hit via J (HMMER's "fs" mode).
func (mdl *Model) ConfigureFS(pentry, pexit, flankLoop, jLoop float64) {
	mdl.setLocalBeginEnd(pentry, pexit)
	mdl.Special[XTN] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTC] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Special[XTE] = [2]float64{1 - jLoop, jLoop}
	mdl.Special[XTJ] = [2]float64{1 - flankLoop, flankLoop}
	mdl.Config = ConfigFS
}

// setGlobalBeginEnd implements the naked/global/ls entry-exit policy:
// B enters only at M1, E is only reached from Mm.
func (mdl *Model) setGlobalBeginEnd() {
	for k := 1; k <= mdl.M; k++ {
		mdl.Nodes[k].Begin = 0
		mdl.Nodes[k].End = 0
	}
	mdl.Nodes[1].Begin = 1
	mdl.Nodes[mdl.M].End = 1
}

// setLocalBeginEnd implements the sw/fs local entry-exit policy: node
// 1 keeps (1-pentry) of the entry mass, the rest is spread uniformly
// over nodes 2..M (and symmetrically for exit at node M). The split
// sums to 1 by construction; RenormalizeExits is not called here.
func (mdl *Model) setLocalBeginEnd(pentry, pexit float64) {
	m := mdl.M
	if m == 1 {
		mdl.Nodes[1].Begin = 1
		mdl.Nodes[1].End = 1
		return
	}
	mdl.Nodes[1].Begin = 1 - pentry
	rest := pentry / float64(m-1)
	for k := 2; k <= m; k++ {
		mdl.Nodes[k].Begin = rest
	}
	mdl.Nodes[m].End = 1 - pexit
	restEnd := pexit / float64(m-1)
	for k := 1; k < m; k++ {
		mdl.Nodes[k].End = restEnd
	}
}
