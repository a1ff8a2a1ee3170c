package search

import (
	"log"
	"sync"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/dpalgo"
	"github.com/MichiganTech/hmmer-sub001/hit"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// Driver runs a pool of worker goroutines, each owning its own DP
// call, pulling from a mutex-guarded input stream and registering into
// mutex-guarded output hit lists. It is built from plain channels and
// sync.WaitGroup, the idiom namsyvo-ISC's callsnp.go CallSNPs uses for
// its own read-scoring worker pool (golang.org/x/sync is not in the
// corpus's dependency graph and is not wired, see DESIGN.md).
type Driver struct {
	Workers         int
	RAMLimit        int64
	Thresholds      hit.Thresholds
	UseForward      bool
	DisableNull2    bool
	RenderAlignment bool
}

// NewDriver builds a Driver with the given thresholds and the
// conventional single-worker, default-RAMLIMIT settings; callers
// override Workers/RAMLimit/UseForward/DisableNull2 directly.
func NewDriver(th hit.Thresholds) *Driver {
	return &Driver{
		Workers:    1,
		RAMLimit:   dpalgo.DefaultRAMLimit,
		Thresholds: th,
	}
}

func (d *Driver) workers() int {
	if d.Workers < 1 {
		return 1
	}
	return d.Workers
}

// ScanModels runs the "scan one sequence against many models" mode
// (hmmpfam's role): a pool of workers pulls (model, name) pairs from
// models, scores each against dsq, and registers domain and
// whole-sequence hits. It returns the two sorted hit lists; this mode
// sorts by E-value.
func (d *Driver) ScanModels(models ModelSource, alpha alphabet.Alphabet, seqName string, dsq alphabet.DigitizedSequence) (domainHits, seqHits *hit.TopHits, err error) {
	domainHits = hit.NewTopHits(hit.SortByEValue)
	seqHits = hit.NewTopHits(hit.SortByEValue)

	var srcMu, listMu sync.Mutex
	errs := make(chan error, d.workers())
	var wg sync.WaitGroup

	for w := 0; w < d.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				srcMu.Lock()
				mdl, name, ok, nerr := models.Next()
				srcMu.Unlock()
				if nerr != nil {
					errs <- nerr
					return
				}
				if !ok {
					return
				}
				log.Printf("driver.go: model loaded: %s (%d nodes)", name, mdl.M)
				if perr := d.scoreOne(mdl, alpha, dsq, seqName, name, domainHits, seqHits, &listMu); perr != nil {
					errs <- perr
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}

	domainHits.Sort()
	seqHits.Sort()
	return domainHits, seqHits, nil
}

// ScanSequences runs the "scan one model against many sequences" mode
// (hmmsearch's role): a pool of workers pulls (name, dsq) pairs from
// seqs and scores each against mdl. This mode sorts by score.
func (d *Driver) ScanSequences(mdl *plan7.Model, alpha alphabet.Alphabet, modelName string, seqs SequenceSource) (domainHits, seqHits *hit.TopHits, err error) {
	domainHits = hit.NewTopHits(hit.SortByScore)
	seqHits = hit.NewTopHits(hit.SortByScore)
	log.Printf("driver.go: model loaded: %s (%d nodes)", modelName, mdl.M)

	var srcMu, listMu sync.Mutex
	errs := make(chan error, d.workers())
	var wg sync.WaitGroup

	for w := 0; w < d.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				srcMu.Lock()
				name, dsq, ok, nerr := seqs.Next()
				srcMu.Unlock()
				if nerr != nil {
					errs <- nerr
					return
				}
				if !ok {
					return
				}
				if perr := d.scoreOne(mdl, alpha, dsq, name, modelName, domainHits, seqHits, &listMu); perr != nil {
					errs <- perr
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}

	domainHits.Sort()
	seqHits.Sort()
	return domainHits, seqHits, nil
}

// scoreOne runs the DP core for one (model, sequence) pair and
// registers its hits under the output-list mutex: the two output hit
// lists are protected by a separate mutual-exclusion region
// surrounding the postprocessor call.
func (d *Driver) scoreOne(mdl *plan7.Model, alpha alphabet.Alphabet, dsq alphabet.DigitizedSequence, seqName, modelName string, domainHits, seqHits *hit.TopHits, listMu *sync.Mutex) error {
	if !alphabetsMatch(mdl, alpha) {
		return ErrAlphabetMismatch
	}

	if dpalgo.ViterbiSpaceOK(dsq.L, mdl.M, d.RAMLimit) {
		log.Printf("driver.go: matrix resized to %dx%d, within %d byte RAMLIMIT: full Viterbi", dsq.L+1, mdl.M+1, d.RAMLimit)
	} else {
		log.Printf("driver.go: matrix for %dx%d exceeds %d byte RAMLIMIT: falling back to parsing/wee Viterbi", dsq.L+1, mdl.M+1, d.RAMLimit)
	}

	sc, tr, err := dpalgo.SmallViterbi(mdl, dsq, d.RAMLimit)
	if err != nil {
		if err == dpalgo.ErrUnreachable {
			log.Printf("driver.go: %s vs %s: no traceback reachable, falling back to null trace:\n%s", seqName, modelName, trace.DumpModel(mdl))
			tr = nil
		} else {
			return err
		}
	}

	opts := hit.Options{
		SeqName:         seqName,
		ModelName:       modelName,
		Acc:             mdl.Acc,
		Desc:            mdl.Desc,
		DisableNull2:    d.DisableNull2,
		RenderAlignment: d.RenderAlignment,
	}
	if d.UseForward && tr != nil {
		fwd, ferr := dpalgo.Forward(mdl, dsq)
		if ferr != nil {
			return ferr
		}
		opts.ForwardScore = &fwd
	}

	listMu.Lock()
	defer listMu.Unlock()
	return hit.Postprocess(mdl, alpha, dsq, tr, sc, d.Thresholds, opts, domainHits, seqHits)
}

func alphabetsMatch(mdl *plan7.Model, alpha alphabet.Alphabet) bool {
	if len(mdl.Alpha) != alpha.A() {
		return false
	}
	for i, b := range mdl.Alpha {
		if b != alpha.Byte(alphabet.Symbol(i)) {
			return false
		}
	}
	return true
}
