package trace

import (
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/davecgh/go-spew/spew"
)

// Dump pretty-prints a trace's states for failure diagnostics (the
// same role spew.Sdump plays anywhere a project pulls it in purely for
// that purpose). Only this package's tests call it.
func Dump(tr *Trace) string {
	return spew.Sdump(tr)
}

// DumpModel pretty-prints a Plan7 node table (the raw per-node
// probabilities, not the log-odds scores). search.Driver logs it on
// its own when a traceback fails.
func DumpModel(mdl *plan7.Model) string {
	return spew.Sdump(mdl.Nodes)
}
