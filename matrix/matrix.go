package matrix

import "github.com/MichiganTech/hmmer-sub001/plan7"

// numSpecial is the count of special states carried in xmx: N, B, E,
// C, J.
const numSpecial = int(plan7.XTJ) + 1

// Full is the growable (L+1) x (M+1) dynamic programming matrix: three
// per-node planes (Match, Insert, Delete) plus a special-state row per
// sequence position. Each plane is one contiguous buffer addressed
// through at, to keep row access cache friendly without
// slice-of-slices indirection.
type Full struct {
	l, m       int // current usable bounds: rows 0..l, cols 0..m
	capL, capM int // allocated capacity

	mmx, imx, dmx []plan7.Score
	xmx           []plan7.Score // row-major [i][special]
}

// NewFull allocates a Full matrix sized for a sequence of length l
// against a model of length m.
func NewFull(l, m int) (*Full, error) {
	if l < 0 || m < 0 {
		return nil, ErrBadDimensions
	}
	f := &Full{}
	f.grow(l, m)
	return f, nil
}

func (f *Full) stride() int { return f.capM + 1 }

// grow amortizes reallocation by padding, the way a growable row-major
// buffer typically rounds capacity up rather than growing one row or
// column at a time on every call.
func (f *Full) grow(l, m int) {
	needL, needM := l, m
	if needL <= f.capL && needM <= f.capM {
		f.l, f.m = l, m
		f.clear()
		return
	}
	if needL > f.capL {
		f.capL = needL + needL/2 + 8
	}
	if needM > f.capM {
		f.capM = needM + needM/2 + 8
	}
	size := (f.capL + 1) * (f.capM + 1)
	f.mmx = make([]plan7.Score, size)
	f.imx = make([]plan7.Score, size)
	f.dmx = make([]plan7.Score, size)
	f.xmx = make([]plan7.Score, (f.capL+1)*numSpecial)
	f.l, f.m = l, m
	f.clear()
}

// Grow re-sizes the matrix in place for a new (l,m), reusing the
// backing buffers when they are already large enough.
func (f *Full) Grow(l, m int) error {
	if l < 0 || m < 0 {
		return ErrBadDimensions
	}
	f.grow(l, m)
	return nil
}

func (f *Full) clear() {
	for i := range f.mmx {
		f.mmx[i] = plan7.NegInf
		f.imx[i] = plan7.NegInf
		f.dmx[i] = plan7.NegInf
	}
	for i := range f.xmx {
		f.xmx[i] = plan7.NegInf
	}
}

// L and M report the matrix's current usable dimensions.
func (f *Full) L() int { return f.l }
func (f *Full) M() int { return f.m }

func (f *Full) idx(i, k int) int { return i*f.stride() + k }

func (f *Full) SetM(i, k int, s plan7.Score) { f.mmx[f.idx(i, k)] = s }
func (f *Full) SetI(i, k int, s plan7.Score) { f.imx[f.idx(i, k)] = s }
func (f *Full) SetD(i, k int, s plan7.Score) { f.dmx[f.idx(i, k)] = s }

func (f *Full) M_(i, k int) plan7.Score { return f.mmx[f.idx(i, k)] }
func (f *Full) I_(i, k int) plan7.Score { return f.imx[f.idx(i, k)] }
func (f *Full) D_(i, k int) plan7.Score { return f.dmx[f.idx(i, k)] }

func (f *Full) xidx(i int, x plan7.XState) int { return i*numSpecial + int(x) }

// SetX and X set/read the special-state grid at sequence position i.
func (f *Full) SetX(i int, x plan7.XState, s plan7.Score) { f.xmx[f.xidx(i, x)] = s }
func (f *Full) X(i int, x plan7.XState) plan7.Score        { return f.xmx[f.xidx(i, x)] }

// At is the checked accessor pair, used outside DP inner loops (tests,
// debugging dumps).
func (f *Full) At(i, k int) (m, ins, d plan7.Score, err error) {
	if i < 0 || i > f.l || k < 0 || k > f.m {
		return 0, 0, 0, ErrOutOfRange
	}
	idx := f.idx(i, k)
	return f.mmx[idx], f.imx[idx], f.dmx[idx], nil
}
