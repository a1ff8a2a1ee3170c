package hit

import (
	"math"

	"github.com/MichiganTech/hmmer-sub001/alphabet"
	"github.com/MichiganTech/hmmer-sub001/null2"
	"github.com/MichiganTech/hmmer-sub001/plan7"
	"github.com/MichiganTech/hmmer-sub001/trace"
)

// Options carries the per-call knobs that are not part of the
// persistent Thresholds record: the names to stamp on the registered
// hits, whether to render a fancy alignment, the null2 opt-out, and an
// optional Forward score that overrides the trace-derived
// whole-sequence score.
type Options struct {
	SeqName, ModelName, Acc, Desc string
	DisableNull2                  bool
	RenderAlignment               bool
	ForwardScore                  *plan7.Score
}

// Postprocess turns one trace against one model for one sequence,
// together with the raw score and the active threshold set, into zero
// or more domain hits registered into domainHits and at most one
// whole-sequence hit registered into seqHits. The caller
// (search.Driver) holds the output-list mutex for the duration of this
// call.
func Postprocess(mdl *plan7.Model, alpha alphabet.Alphabet, dsq alphabet.DigitizedSequence, tr *trace.Trace, sc plan7.Score, th Thresholds, opts Options, domainHits, seqHits *TopHits) error {
	globT, domT, domE, useEValue, err := resolveThresholds(mdl, th)
	if err != nil {
		return err
	}

	// Step 1: a null trace (alignment impossible) reports the override
	// score directly with no domain hits.
	if tr == nil {
		wholeScore := sc.Real()
		registerSequenceHit(seqHits, opts, wholeScore, mdl.PValue(wholeScore), th.Z, globT)
		return nil
	}

	// Step 2: decompose into per-domain traces.
	domTraces, err := trace.Decompose(tr)
	if err != nil {
		return err
	}

	type scored struct {
		tr    *trace.Trace
		score float64
		drop  float64 // null2 correction subtracted (Score.Real units), for the Forward approximation
	}
	domains := make([]scored, 0, len(domTraces))

	// Step 3: rescore each domain, optionally apply null2, mark
	// positive-scoring domains as kept.
	for _, dtr := range domTraces {
		bits, err := trace.Score(dtr, mdl, dsq)
		if err != nil {
			return err
		}
		raw := plan7.Score(math.Round(bits * plan7.IntScale))
		corrected := raw
		if !opts.DisableNull2 {
			corrected, err = null2.Apply(mdl, dtr, dsq, raw)
			if err != nil {
				return err
			}
		}
		domains = append(domains, scored{
			tr:    dtr,
			score: corrected.Real(),
			drop:  raw.Real() - corrected.Real(),
		})
	}

	wholeScore := 0.0
	anyPositive := false
	for _, d := range domains {
		if d.score > 0 {
			wholeScore += d.score
			anyPositive = true
		}
	}

	// Step 4: the weak single domain rule.
	bestIdx := -1
	if !anyPositive && len(domains) > 0 {
		bestIdx = 0
		for i, d := range domains[1:] {
			if d.score > domains[bestIdx].score {
				bestIdx = i + 1
			}
		}
		wholeScore = domains[bestIdx].score
	}

	// Step 5: a requested Forward score overrides the trace-derived
	// whole-sequence score, keeping the trace's null2 adjustment as an
	// approximation (see DESIGN.md).
	if opts.ForwardScore != nil {
		wholeScore = opts.ForwardScore.Real()
		if !opts.DisableNull2 {
			for _, d := range domains {
				wholeScore -= d.drop
			}
		}
	}

	// Step 6: register every kept domain that clears the domain
	// thresholds.
	ndom := len(domains)
	for i, d := range domains {
		if anyPositive {
			if d.score <= 0 {
				continue
			}
		} else if i != bestIdx {
			continue
		}
		pvalue := mdl.PValue(d.score)
		evalue := plan7.EValue(pvalue, th.Z)
		if d.score < domT && !(useEValue && evalue <= domE) {
			continue
		}

		var ali *FancyAlignment
		if opts.RenderAlignment {
			ali, err = RenderFancyAlignment(mdl, alpha, d.tr, dsq)
			if err != nil {
				return err
			}
		}

		b, err := trace.SimpleBounds(d.tr)
		if err != nil {
			return err
		}

		domainHits.Register(&Hit{
			SeqName:      opts.SeqName,
			ModelName:    opts.ModelName,
			Acc:          opts.Acc,
			Desc:         opts.Desc,
			Score:        d.score,
			PValue:       pvalue,
			EValue:       evalue,
			MotherScore:  wholeScore,
			MotherPValue: mdl.PValue(wholeScore),
			SeqStart:     b.I1,
			SeqEnd:       b.I2,
			ModelStart:   b.K1,
			ModelEnd:     b.K2,
			DomainIdx:    i + 1,
			NumDomains:   ndom,
			Alignment:    ali,
		})
	}

	// Step 7: register the whole-sequence hit if it clears globT.
	// E-value thresholding on the whole-sequence hit is deferred to the
	// output stage since Z may not be final.
	registerSequenceHit(seqHits, opts, wholeScore, mdl.PValue(wholeScore), th.Z, globT)
	return nil
}

func registerSequenceHit(seqHits *TopHits, opts Options, score, pvalue float64, z int, globT float64) {
	if score < globT {
		return
	}
	seqHits.Register(&Hit{
		SeqName:    opts.SeqName,
		ModelName:  opts.ModelName,
		Acc:        opts.Acc,
		Desc:       opts.Desc,
		Score:      score,
		PValue:     pvalue,
		EValue:     plan7.EValue(pvalue, z),
		NumDomains: 1,
	})
}

// resolveThresholds applies the autocut override: when the caller
// selected GA/TC/NC, the model's matching cutoff pair replaces
// globT/domT and E-value thresholds are disabled.
func resolveThresholds(mdl *plan7.Model, th Thresholds) (globT, domT, domE float64, useEValue bool, err error) {
	switch th.Autocut {
	case AutocutGA:
		if mdl.GA == nil {
			return 0, 0, 0, false, ErrNoThresholds
		}
		return mdl.GA.Global, mdl.GA.Domain, th.DomE, false, nil
	case AutocutTC:
		if mdl.TC == nil {
			return 0, 0, 0, false, ErrNoThresholds
		}
		return mdl.TC.Global, mdl.TC.Domain, th.DomE, false, nil
	case AutocutNC:
		if mdl.NC == nil {
			return 0, 0, 0, false, ErrNoThresholds
		}
		return mdl.NC.Global, mdl.NC.Domain, th.DomE, false, nil
	default:
		return th.GlobT, th.DomT, th.DomE, true, nil
	}
}
