package alphabet

// DigitizedSequence is a length-L symbol array bounded by sentinels at
// positions 0 and L+1. All DP routines index Symbols directly;
// Symbols[0] and Symbols[L+1] are always Sentinel.
type DigitizedSequence struct {
	Symbols []Symbol
	Alpha   Alphabet
	L       int
}

// Digitize converts a raw residue sequence into a DigitizedSequence
// under the given alphabet. Bytes not recognized by the alphabet
// (including its degenerate codes) map to the alphabet's unknown
// symbol, never to Sentinel; Sentinel is reserved for positions 0 and
// L+1.
func Digitize(a Alphabet, residues []byte) (DigitizedSequence, error) {
	if len(residues) == 0 {
		return DigitizedSequence{}, ErrEmptySequence
	}
	ds := DigitizedSequence{
		Symbols: make([]Symbol, len(residues)+2),
		Alpha:   a,
		L:       len(residues),
	}
	ds.Symbols[0] = Sentinel
	ds.Symbols[len(residues)+1] = Sentinel
	for i, b := range residues {
		ds.Symbols[i+1] = a.Index(b)
	}
	return ds, nil
}

// Dedigitize reverses Digitize, mapping each interior symbol back to
// its canonical byte. Digitize∘Dedigitize is the identity on characters
// present in the alphabet; non-canonical characters round-trip to the
// alphabet's unknown-residue byte.
func Dedigitize(ds DigitizedSequence) []byte {
	out := make([]byte, ds.L)
	for i := 0; i < ds.L; i++ {
		out[i] = ds.Alpha.Byte(ds.Symbols[i+1])
	}
	return out
}

// At returns the symbol at 1-indexed sequence position i. Positions 0
// and L+1 always yield Sentinel, so an out-of-range or boundary lookup
// can never hand a DP routine anything but the sentinel, regardless of
// caller error.
func (ds DigitizedSequence) At(i int) Symbol {
	if i < 0 || i >= len(ds.Symbols) {
		return Sentinel
	}
	return ds.Symbols[i]
}

// Slice returns the digitized subsequence covering 1-indexed positions
// [start, end], re-sentineled at its own boundaries. Used to hand a
// domain interval to the small/wee Viterbi drivers.
func (ds DigitizedSequence) Slice(start, end int) DigitizedSequence {
	n := end - start + 1
	out := DigitizedSequence{
		Symbols: make([]Symbol, n+2),
		Alpha:   ds.Alpha,
		L:       n,
	}
	out.Symbols[0] = Sentinel
	out.Symbols[n+1] = Sentinel
	copy(out.Symbols[1:n+1], ds.Symbols[start:end+1])
	return out
}
