package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	tr := New(0)
	tr.Append(State{Type: S}, 0)
	tr.Append(State{Type: N}, 0)
	tr.Append(State{Type: T}, 0)
	tr.Reverse()
	assert.Equal(t, T, tr.States[0].Type)
	assert.Equal(t, S, tr.States[2].Type)
}

func TestSimpleBoundsEmpty(t *testing.T) {
	tr := New(0)
	_, err := SimpleBounds(tr)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSimpleBounds(t *testing.T) {
	tr := New(0)
	tr.Append(State{Type: S}, 0)
	tr.Append(State{Type: N, Pos: 0}, 0)
	tr.Append(State{Type: B}, 0)
	tr.Append(State{Type: M, Node: 1, Pos: 1}, 0)
	tr.Append(State{Type: M, Node: 2, Pos: 2}, 0)
	tr.Append(State{Type: M, Node: 3, Pos: 3}, 0)
	tr.Append(State{Type: E}, 0)
	tr.Append(State{Type: C, Pos: 3}, 0)
	tr.Append(State{Type: T}, 0)

	b, err := SimpleBounds(tr)
	require.NoError(t, err)
	assert.Equal(t, Bounds{I1: 1, I2: 3, K1: 1, K2: 3}, b)
}

func buildGlobalTrace() *Trace {
	tr := New(0)
	tr.Append(State{Type: S}, 0)
	tr.Append(State{Type: N, Pos: 0}, 0)
	tr.Append(State{Type: B}, 0)
	tr.Append(State{Type: M, Node: 1, Pos: 1}, 0)
	tr.Append(State{Type: M, Node: 2, Pos: 2}, 0)
	tr.Append(State{Type: M, Node: 3, Pos: 3}, 0)
	tr.Append(State{Type: E}, 0)
	tr.Append(State{Type: C, Pos: 3}, 0)
	tr.Append(State{Type: T}, 0)
	return tr
}

func TestDecomposeSingleDomain(t *testing.T) {
	tr := buildGlobalTrace()
	domains, err := Decompose(tr)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, S, domains[0].States[0].Type)
	assert.Equal(t, T, domains[0].States[len(domains[0].States)-1].Type)
}

func TestDecomposeRejectsUnframed(t *testing.T) {
	tr := New(0)
	tr.Append(State{Type: N}, 0)
	_, err := Decompose(tr)
	assert.ErrorIs(t, err, ErrNotDecomposable)
}

func TestDecomposeMultiHit(t *testing.T) {
	tr := New(0)
	tr.Append(State{Type: S}, 0)
	tr.Append(State{Type: N, Pos: 0}, 0)
	tr.Append(State{Type: B}, 0)
	tr.Append(State{Type: M, Node: 1, Pos: 1}, 0)
	tr.Append(State{Type: E}, 0)
	tr.Append(State{Type: J, Pos: 1}, 0)
	tr.Append(State{Type: B}, 0)
	tr.Append(State{Type: M, Node: 1, Pos: 2}, 0)
	tr.Append(State{Type: E}, 0)
	tr.Append(State{Type: C, Pos: 2}, 0)
	tr.Append(State{Type: T}, 0)

	domains, err := Decompose(tr)
	require.NoError(t, err)
	require.Len(t, domains, 2)
}

func TestTraceCompare(t *testing.T) {
	a := buildGlobalTrace()
	b := buildGlobalTrace()
	assert.True(t, TraceCompare(a, b))
	b.States[3].Node = 99
	assert.False(t, TraceCompare(a, b))
}

func TestTraceVerifyRejectsOutOfRangeNode(t *testing.T) {
	tr := buildGlobalTrace()
	err := TraceVerify(tr, 2, 10)
	assert.Error(t, err)
}

func TestTraceVerifyAccepts(t *testing.T) {
	tr := buildGlobalTrace()
	err := TraceVerify(tr, 3, 3)
	assert.NoError(t, err)
}

func TestMasterTraceFromMap(t *testing.T) {
	colMap := []int{0, 1, 3, 5}
	mtr := MasterTraceFromMap(colMap, 3, 5)
	assert.Equal(t, S, mtr.States[0].Type)
	assert.Equal(t, T, mtr.States[len(mtr.States)-1].Type)

	var kinds []StateType
	for _, st := range mtr.States {
		kinds = append(kinds, st.Type)
	}
	assert.Contains(t, kinds, M)
	assert.Contains(t, kinds, I)
}

func TestImposeMasterTrace(t *testing.T) {
	colMap := []int{0, 1, 2, 3}
	mtr := MasterTraceFromMap(colMap, 3, 3)
	rows := [][]byte{
		[]byte("ACG"),
		[]byte("A-G"),
	}
	rowTraces, err := ImposeMasterTrace(rows, mtr)
	require.NoError(t, err)
	require.Len(t, rowTraces, 2)

	hasD := false
	for _, st := range rowTraces[1].States {
		if st.Type == D {
			hasD = true
		}
	}
	assert.True(t, hasD, "gap in row should become a Delete state")
}
