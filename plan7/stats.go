package plan7

import "math"

// EVD fit parameters. Calibrating Mu/Lambda from a score histogram is
// out of scope (training math is an external collaborator); a model
// either carries values read from an HMM file or leaves them at zero,
// in which case PValue/EValue report their degenerate cases below
// rather than dividing by zero.

// PValue converts a raw score, in Score.Real units (natural log, not
// bits), to the probability of seeing a score
// this high or higher by chance, under the Gumbel (extreme value)
// distribution fit to the model's score distribution.
//
// `ExtremeValueP`'s own body was never present in the retrieved
// source, only its declaration in funcs.h alongside ExtremeValueP2 and
// ExtremeValueE. The formula below is the standard EVD survival
// function P(s) = 1 - exp(-exp(-lambda*(s-mu))), the same shape every
// HMMER-family tool derives its significance from; this is recorded as
// a documented decision the same way TraceScoreCorrection is.
func (mdl *Model) PValue(score float64) float64 {
	if mdl.Lambda <= 0 {
		return 1.0
	}
	y := mdl.Lambda * (score - mdl.Mu)
	return -math.Expm1(-math.Exp(-y))
}

// EValue scales a p-value by the effective database size Z: E = Z*p.
func EValue(pvalue float64, z int) float64 {
	return pvalue * float64(z)
}
