package search

import (
	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/hit"
	"github.com/MichiganTech/hmmer-sub001/plan7"
)

// Threshold is a type alias onto hit.Thresholds: the postprocessor in
// package hit is its sole consumer, and hit cannot import search back
// (search already imports hit for TopHits/Hit), so the type lives
// there and is exposed here under the name callers expect.
type Threshold = hit.Thresholds

// ModelSource is the external collaborator that streams (model, name)
// pairs for the "one sequence against many models" scan mode. Next
// returns ok=false once the stream is exhausted.
type ModelSource interface {
	Next() (mdl *plan7.Model, name string, ok bool, err error)
}

// SequenceSource is the external collaborator that streams (name,
// digitized sequence) pairs for the "one model against many
// sequences" scan mode.
type SequenceSource interface {
	Next() (name string, dsq alphabet.DigitizedSequence, ok bool, err error)
}
