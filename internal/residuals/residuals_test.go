package residuals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepkit/ttreco/internal/binstats"
)

func TestAbsolute(t *testing.T) {
	got, err := Absolute([]float64{2, 4, 6}, []float64{1, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 0}, got)

	_, err = Absolute([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRelative(t *testing.T) {
	got, err := Relative([]float64{2, 3}, []float64{4, 2})
	require.NoError(t, err)
	assert.InDelta(t, -0.5, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-12)

	_, err = Relative([]float64{1, 2}, []float64{1, 0})
	assert.ErrorIs(t, err, ErrZeroReference)
}

func TestEvaluate(t *testing.T) {
	// Ten events in one bin; methodA is biased by +2, methodB is exact.
	gen := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	methodA := make([]float64, len(gen))
	methodB := make([]float64, len(gen))
	for i, g := range gen {
		methodA[i] = g + 2
		methodB[i] = g
	}

	quality, err := Evaluate(
		map[string][]float64{"A": methodA, "B": methodB},
		gen, weights, binstats.Edges(0, 11),
	)
	require.NoError(t, err)
	require.Len(t, quality, 2)

	a := quality["A"]
	assert.Equal(t, "A", a.Method)
	assert.InDelta(t, 2, a.Bias()[0], 1e-12)
	assert.InDelta(t, 2, a.RMSE()[0], 1e-12)
	assert.InDelta(t, 0, a.Stats.Variance[0], 1e-12)

	b := quality["B"]
	assert.InDelta(t, 0, b.Bias()[0], 1e-12)
	assert.InDelta(t, 0, b.RMSE()[0], 1e-12)
}

func TestEvaluateShapeMismatch(t *testing.T) {
	_, err := Evaluate(
		map[string][]float64{"A": {1, 2}},
		[]float64{1, 2, 3}, []float64{1, 1, 1}, binstats.Uniform(2),
	)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
