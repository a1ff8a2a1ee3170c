package plan7

// RenormalizeExits recomputes Begin so it sums to 1 across all nodes,
// correcting the floating-point drift that can accumulate after a
// Config* call or after a caller edits Node.Begin/Node.End directly
// (e.g. when rebuilding a model from a trained alignment). End is not
// renormalized: Mk->E is a side-tap read independently at every node
// during Forward/Viterbi, not a branch carved out of node k's own
// {TMM,TMI,TMD} probability mass, so its entries need no joint sum
// constraint.
func (mdl *Model) RenormalizeExits() {
	sum := 0.0
	for k := 1; k <= mdl.M; k++ {
		sum += mdl.Nodes[k].Begin
	}
	if sum <= 0 {
		return
	}
	for k := 1; k <= mdl.M; k++ {
		mdl.Nodes[k].Begin /= sum
	}
}
