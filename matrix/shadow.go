package matrix

// Pointer is the argmax recorded at a shadow-matrix cell: which
// predecessor state fed the max into this cell's score. It is a small
// enumeration rather than plan7.TransIdx because a shadow cell must
// also be able to record "came from B" (a begin event), which has no
// corresponding node-to-node transition index.
type Pointer int8

const (
	PtrNone Pointer = iota
	PtrM
	PtrI
	PtrD
	PtrB
)

// Shadow records, for each cell of a Match/Insert/Delete plane, which
// predecessor produced the max score there: the argmax at every cell,
// not the score itself. It is sized to (L+1, M+2).
type Shadow struct {
	l, m int

	mPtr, iPtr, dPtr []Pointer
}

// NewShadow allocates a Shadow matrix for a sequence of length l
// against a model of length m.
func NewShadow(l, m int) (*Shadow, error) {
	if l < 0 || m < 0 {
		return nil, ErrBadDimensions
	}
	stride := m + 2
	size := (l + 1) * stride
	return &Shadow{
		l: l, m: m,
		mPtr: make([]Pointer, size),
		iPtr: make([]Pointer, size),
		dPtr: make([]Pointer, size),
	}, nil
}

func (s *Shadow) stride() int { return s.m + 2 }
func (s *Shadow) idx(i, k int) int { return i*s.stride() + k }

func (s *Shadow) SetM(i, k int, p Pointer) { s.mPtr[s.idx(i, k)] = p }
func (s *Shadow) SetI(i, k int, p Pointer) { s.iPtr[s.idx(i, k)] = p }
func (s *Shadow) SetD(i, k int, p Pointer) { s.dPtr[s.idx(i, k)] = p }

func (s *Shadow) M(i, k int) Pointer { return s.mPtr[s.idx(i, k)] }
func (s *Shadow) I(i, k int) Pointer { return s.iPtr[s.idx(i, k)] }
func (s *Shadow) D(i, k int) Pointer { return s.dPtr[s.idx(i, k)] }

// L and ModelLen report the shadow matrix's dimensions (M is the
// Match-plane pointer accessor above).
func (s *Shadow) L() int        { return s.l }
func (s *Shadow) ModelLen() int { return s.m }
