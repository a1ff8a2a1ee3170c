package alphabet

import "fmt"

// Symbol is an index into an Alphabet. Valid indices are in
// [0, A+D-1], where A+D-1 is the unknown symbol; Sentinel lies outside
// that range.
type Symbol int

// Sentinel is the symbol value written at positions 0 and L+1 of every
// DigitizedSequence. It is not an alphabet index: a raw byte the
// alphabet cannot place is looked up as the unknown symbol instead.
const Sentinel Symbol = -1

// Alphabet is a fixed, ordered symbol set plus its IUPAC degeneracy
// table. Indices 0..A-1 are the core residues (in Letters order);
// indices A..A+D-2 are degenerate codes; index A+D-1 is the unknown
// symbol. The sentinel positions of a sequence hold Sentinel, not
// this index.
type Alphabet struct {
	name       string
	letters    []byte          // core residues, len == A
	degenerate []byte          // degenerate codes, len == D-1 (unknown is implicit)
	expansion  map[byte][]byte // degenerate code -> core residues it may stand for
	index      [256]Symbol     // raw byte -> Symbol, default unknown()
	toByte     []byte          // Symbol -> canonical byte, len == A+D
}

// New builds an Alphabet from an ordered list of core residues and a
// degenerate-code table (code byte -> the core residues it expands to).
// The unknown symbol is implicit and always the last index.
func New(name string, letters []byte, expansion map[byte][]byte) Alphabet {
	degenerate := make([]byte, 0, len(expansion))
	for code := range expansion {
		degenerate = append(degenerate, code)
	}
	a := Alphabet{
		name:       name,
		letters:    append([]byte(nil), letters...),
		degenerate: degenerate,
		expansion:  expansion,
	}
	for i := range a.index {
		a.index[i] = a.unknown()
	}
	a.toByte = make([]byte, a.A()+a.D())
	for i, r := range a.letters {
		a.index[r] = Symbol(i)
		a.index[lower(r)] = Symbol(i)
		a.toByte[i] = r
	}
	for i, code := range a.degenerate {
		sym := Symbol(a.A() + i)
		a.index[code] = sym
		a.index[lower(code)] = sym
		a.toByte[sym] = code
	}
	a.toByte[a.unknown()] = unknownByte(a.name)
	return a
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func unknownByte(name string) byte {
	if name == "nucleic" {
		return 'N'
	}
	return 'X'
}

// A returns the number of core residues.
func (a Alphabet) A() int { return len(a.letters) }

// D returns the number of degenerate codes, including the implicit
// unknown symbol.
func (a Alphabet) D() int { return len(a.degenerate) + 1 }

// Size returns A+D, the total number of valid symbol indices.
func (a Alphabet) Size() int { return a.A() + a.D() }

// Name returns the alphabet's name ("protein", "nucleic", ...).
func (a Alphabet) Name() string { return a.name }

func (a Alphabet) unknown() Symbol { return Symbol(len(a.letters) + len(a.degenerate)) }

// Index maps a raw residue byte to its Symbol, or the unknown symbol if
// the byte is not recognized.
func (a Alphabet) Index(b byte) Symbol { return a.index[b] }

// Byte returns the canonical byte for a Symbol, or the alphabet's
// unknown-residue byte if sym is out of range.
func (a Alphabet) Byte(sym Symbol) byte {
	if sym < 0 || int(sym) >= len(a.toByte) {
		return unknownByte(a.name)
	}
	return a.toByte[sym]
}

// Expansion returns the core residues a degenerate code may stand for,
// or nil if b is not a degenerate code in this alphabet.
func (a Alphabet) Expansion(b byte) []byte { return a.expansion[b] }

// Equal reports whether two alphabets have the same name and ordered
// residue set; used to detect an alphabet mismatch between a model and
// a sequence.
func (a Alphabet) Equal(other Alphabet) bool {
	if a.name != other.name || len(a.letters) != len(other.letters) {
		return false
	}
	for i, r := range a.letters {
		if other.letters[i] != r {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	return fmt.Sprintf("%s(%s)", a.name, string(a.letters))
}

// Protein is the standard 20 amino-acid alphabet, with B/Z/X as the
// degenerate codes historically recognized by Plan7 HMM files (Asx,
// Glx, and explicit-unknown).
func Protein() Alphabet {
	return New("protein",
		[]byte("ACDEFGHIKLMNPQRSTVWY"),
		map[byte][]byte{
			'B': []byte("DN"),
			'Z': []byte("EQ"),
			'X': []byte("ACDEFGHIKLMNPQRSTVWY"),
		},
	)
}

// Nucleic is the 4-base nucleic-acid alphabet with the full IUPAC
// degeneracy table.
func Nucleic() Alphabet {
	return New("nucleic",
		[]byte("ACGT"),
		map[byte][]byte{
			'R': []byte("AG"),
			'Y': []byte("CT"),
			'S': []byte("GC"),
			'W': []byte("AT"),
			'K': []byte("GT"),
			'M': []byte("AC"),
			'B': []byte("CGT"),
			'D': []byte("AGT"),
			'H': []byte("ACT"),
			'V': []byte("ACG"),
			'N': []byte("ACGT"),
		},
	)
}
