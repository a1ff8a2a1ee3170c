package trace

// StateType names a Plan7 state path position: S and T frame the whole
// path, N/C are flanks, B/E bracket a domain, M/D/I are node states,
// and J reenters B for a second domain. BOGUS marks an uninitialized
// or deliberately invalid slot.
type StateType int

const (
	BOGUS StateType = iota
	S
	N
	B
	M
	D
	I
	E
	C
	T
	J
)

func (t StateType) String() string {
	switch t {
	case S:
		return "S"
	case N:
		return "N"
	case B:
		return "B"
	case M:
		return "M"
	case D:
		return "D"
	case I:
		return "I"
	case E:
		return "E"
	case C:
		return "C"
	case T:
		return "T"
	case J:
		return "J"
	default:
		return "BOGUS"
	}
}

// IsEmitter reports whether a state consumes one residue of the
// sequence: the emitting states' position deltas sum to the length of
// the interval they cover.
func (t StateType) IsEmitter() bool {
	switch t {
	case M, I, N, C, J:
		return true
	default:
		return false
	}
}

// State is one position in a state path: its type, the model node it
// occupies (0 for non-node states: S,N,B,E,C,T,J), and the sequence
// position it has reached (0 before the first residue is consumed).
type State struct {
	Type StateType
	Node int
	Pos  int
}

// Trace is an ordered state path, built back-to-front by a traceback
// and then reversed into forward (S...T) order.
type Trace struct {
	States []State
}

// initialCapacity implements the allocate/grow rule: start near 2L+6
// entries, grow by +L once exhausted.
func initialCapacity(l int) int { return 2*l + 6 }

// New allocates an empty trace sized for a sequence of length l.
func New(l int) *Trace {
	return &Trace{States: make([]State, 0, initialCapacity(l))}
}

// Append adds one state, growing the backing slice by +l (the
// sequence length used to size the trace originally) once capacity is
// exhausted. l may be passed as 0 by callers who accept Go's default
// slice growth instead of the explicit +L rule; doing so only affects
// amortized allocation cost, not correctness.
func (t *Trace) Append(s State, l int) {
	if l > 0 && len(t.States) == cap(t.States) {
		grown := make([]State, len(t.States), cap(t.States)+l)
		copy(grown, t.States)
		t.States = grown
	}
	t.States = append(t.States, s)
}

// Len reports the number of states in the trace.
func (t *Trace) Len() int { return len(t.States) }
