package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCGChecksumIsDeterministic(t *testing.T) {
	rows := [][]byte{
		[]byte("ACGT--ACGT"),
		[]byte("AC-T--ACGT"),
	}
	a := GCGChecksum(rows)
	b := GCGChecksum(rows)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 10000)
}

func TestGCGChecksumDiffersOnContentChange(t *testing.T) {
	rows1 := [][]byte{[]byte("ACGT")}
	rows2 := [][]byte{[]byte("TGCA")}
	assert.NotEqual(t, GCGChecksum(rows1), GCGChecksum(rows2))
}
