package plan7

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProb2ScoreRoundTrip(t *testing.T) {
	null := 0.05
	for _, p := range []float64{0.05, 0.1, 0.5, 0.9} {
		sc := Prob2Score(p, null)
		got := Score2Prob(sc, null)
		assert.InDelta(t, p, got, 1e-3)
	}
}

func TestProb2ScoreZero(t *testing.T) {
	assert.Equal(t, NegInf, Prob2Score(0, 0.05))
}

func TestScoreIsImpossible(t *testing.T) {
	assert.True(t, NegInf.IsImpossible())
	assert.True(t, Score(NegInf-1).IsImpossible())
	assert.False(t, Score(0).IsImpossible())
}

func TestScoreAddSaturates(t *testing.T) {
	assert.Equal(t, NegInf, NegInf.Add(100))
	assert.Equal(t, Score(300), Score(100).Add(200))
}

func TestILogsumMatchesBruteForce(t *testing.T) {
	cases := []struct{ a, b Score }{
		{0, 0}, {1000, 0}, {-1000, -2000}, {500, 500},
	}
	for _, c := range cases {
		got := ILogsum(c.a, c.b)
		want := Score(math.Round(IntScale * math.Log(math.Exp(float64(c.a)/IntScale)+math.Exp(float64(c.b)/IntScale))))
		assert.InDelta(t, float64(want), float64(got), 1, "ILogsum(%d,%d)", c.a, c.b)
	}
}

func TestILogsumImpossibleBoth(t *testing.T) {
	require.Equal(t, NegInf, ILogsum(NegInf, NegInf))
}

func TestILogsumFarApartClampsToMax(t *testing.T) {
	got := ILogsum(0, -30000)
	assert.Equal(t, Score(0), got)
}

func TestScoreReal(t *testing.T) {
	assert.Equal(t, 1.5, Score(1500).Real())
	assert.True(t, math.IsInf(NegInf.Real(), -1))
}
