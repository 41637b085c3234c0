package binstats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func TestComputeShapeMismatch(t *testing.T) {
	_, err := Compute([]float64{1, 2}, []float64{1}, []float64{1, 1}, Uniform(2))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Compute([]float64{1, 2}, []float64{1, 2}, []float64{1}, Uniform(2))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBadBinSpecs(t *testing.T) {
	x := []float64{1, 2, 3}
	_, err := Compute(x, x, ones(3), Uniform(0))
	assert.ErrorIs(t, err, ErrBadBinSpec)

	_, err = Compute(x, x, ones(3), Edges(1))
	assert.ErrorIs(t, err, ErrBadBinSpec)

	_, err = Compute(x, x, ones(3), Edges(1, 3, 2))
	assert.ErrorIs(t, err, ErrBadBinSpec)

	_, err = Compute(nil, nil, nil, Uniform(5))
	assert.ErrorIs(t, err, ErrBadBinSpec)
}

func TestBinCountAndMidpoints(t *testing.T) {
	binning := []float64{0.1, 1.2, 2.3, 3.4, 4.5, 5.6, 6.7, 7.8}
	res, err := Compute(binning, binning, ones(len(binning)), Uniform(4))
	require.NoError(t, err)
	// floor(0.1)=0, ceil(7.8)=8, four uniform bins of width 2.
	require.Len(t, res.Bins, 4)
	assert.Equal(t, []float64{1, 3, 5, 7}, res.Bins)

	res, err = Compute(binning, binning, ones(len(binning)), Edges(0, 2, 4, 8))
	require.NoError(t, err)
	require.Len(t, res.Bins, 3)
	for i := 1; i < len(res.Bins); i++ {
		assert.Greater(t, res.Bins[i], res.Bins[i-1])
	}
}

func TestSparseBinSentinel(t *testing.T) {
	// Exactly 4 events in the only bin: every statistic is the zero
	// sentinel, not NaN.
	binning := []float64{1, 2, 3, 4}
	values := []float64{10, 20, 30, 40}
	res, err := Compute(binning, values, ones(4), Edges(0, 10))
	require.NoError(t, err)

	assert.Equal(t, []float64{5}, res.Bins)
	assert.Equal(t, []float64{0}, res.Q84Q16)
	assert.Equal(t, []float64{0}, res.Mean)
	assert.Equal(t, []float64{0}, res.Median)
	assert.Equal(t, []float64{0}, res.Variance)
	assert.Equal(t, []float64{0}, res.RMS)
}

func TestFiveIdenticalValues(t *testing.T) {
	binning := []float64{1, 1, 1, 1, 1}
	values := []float64{-7, -7, -7, -7, -7}
	res, err := Compute(binning, values, ones(5), Edges(0, 2))
	require.NoError(t, err)

	assert.InDelta(t, -7, res.Mean[0], 1e-12)
	assert.InDelta(t, -7, res.Median[0], 1e-12)
	assert.InDelta(t, 0, res.Variance[0], 1e-12)
	assert.InDelta(t, 7, res.RMS[0], 1e-12)
	assert.InDelta(t, 0, res.Q84Q16[0], 1e-12)
}

func TestSingleBinWorkedExample(t *testing.T) {
	binning := []float64{10, 20, 30, 40, 50}
	values := []float64{10, 20, 30, 40, 50}
	res, err := Compute(binning, values, ones(5), Edges(10, 50))
	require.NoError(t, err)
	require.Len(t, res.Bins, 1)

	assert.InDelta(t, 30, res.Bins[0], 1e-12)
	assert.InDelta(t, 30, res.Mean[0], 1e-12)
	assert.InDelta(t, 30, res.Median[0], 1e-12)
	assert.InDelta(t, 200, res.Variance[0], 1e-12)
	assert.InDelta(t, math.Sqrt(1100), res.RMS[0], 1e-12)
	// 84th percentile at rank 3.36 -> 43.6, 16th at rank 0.64 -> 16.4.
	assert.InDelta(t, 27.2, res.Q84Q16[0], 1e-12)
}

func TestUniformSingleBinWorkedExample(t *testing.T) {
	// The derived edges are [10, 50]; the event sitting exactly on the
	// upper edge belongs to the single bin, not the overflow.
	binning := []float64{10, 20, 30, 40, 50}
	values := []float64{10, 20, 30, 40, 50}
	res, err := Compute(binning, values, ones(5), Uniform(1))
	require.NoError(t, err)
	require.Len(t, res.Bins, 1)

	assert.InDelta(t, 30, res.Bins[0], 1e-12)
	assert.InDelta(t, 30, res.Mean[0], 1e-12)
	assert.InDelta(t, 30, res.Median[0], 1e-12)
	assert.InDelta(t, 200, res.Variance[0], 1e-12)
	assert.InDelta(t, math.Sqrt(1100), res.RMS[0], 1e-12)
	assert.InDelta(t, 27.2, res.Q84Q16[0], 1e-12)
}

func TestIntervalEdgePolicy(t *testing.T) {
	// Bins over (0, 2, 4): below-range and above-range events are dropped,
	// an interior edge belongs to the bin on its right, and the top edge
	// belongs to the last bin.
	binning := []float64{-1, 0, 1, 1, 1, 1, 2, 3, 3, 3, 4, 5}
	values := []float64{99, 0, 1, 1, 1, 1, 2, 3, 3, 3, 4, 99}
	res, err := Compute(binning, values, ones(len(binning)), Edges(0, 2, 4))
	require.NoError(t, err)
	require.Len(t, res.Bins, 2)

	// First bin holds {0,1,1,1,1}, second {2,3,3,3,4}.
	assert.InDelta(t, 0.8, res.Mean[0], 1e-12)
	assert.InDelta(t, 3, res.Mean[1], 1e-12)
}

func TestZeroWeightSum(t *testing.T) {
	binning := []float64{1, 1, 1, 1, 1, 1}
	values := []float64{1, 2, 3, 4, 5, 6}
	weights := []float64{1, -1, 1, -1, 1, -1}
	res, err := Compute(binning, values, weights, Edges(0, 2))
	require.NoError(t, err)

	// Weighted statistics fall back to the zero sentinel; the unweighted
	// order statistics are still real.
	assert.Equal(t, 0.0, res.Mean[0])
	assert.Equal(t, 0.0, res.Variance[0])
	assert.Equal(t, 0.0, res.RMS[0])
	assert.InDelta(t, 3.5, res.Median[0], 1e-12)
	assert.Greater(t, res.Q84Q16[0], 0.0)
}

func TestNegativeWeightsHonored(t *testing.T) {
	binning := []float64{1, 1, 1, 1, 1}
	values := []float64{1, 1, 1, 1, 5}
	weights := []float64{1, 1, 1, 1, -1}
	res, err := Compute(binning, values, weights, Edges(0, 2))
	require.NoError(t, err)

	// Sum w = 3, sum wx = 4-5 = -1.
	assert.InDelta(t, -1.0/3.0, res.Mean[0], 1e-12)
}

func TestWeightedVsUnweightedSplit(t *testing.T) {
	// One huge weight drags the mean but leaves the order statistics
	// untouched.
	binning := []float64{1, 1, 1, 1, 1}
	values := []float64{0, 0, 0, 0, 10}
	weights := []float64{1, 1, 1, 1, 100}
	res, err := Compute(binning, values, weights, Edges(0, 2))
	require.NoError(t, err)

	assert.InDelta(t, 1000.0/104.0, res.Mean[0], 1e-9)
	assert.InDelta(t, 0, res.Median[0], 1e-12)
}

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.InDelta(t, 30, percentile(sorted, 50), 1e-12)
	assert.InDelta(t, 43.6, percentile(sorted, 84), 1e-12)
	assert.InDelta(t, 16.4, percentile(sorted, 16), 1e-12)
	assert.InDelta(t, 10, percentile(sorted, 0), 1e-12)
	assert.InDelta(t, 50, percentile(sorted, 100), 1e-12)
	assert.InDelta(t, 42, percentile([]float64{42}, 84), 1e-12)
}

func TestSpecForRegistry(t *testing.T) {
	spec, ok := SpecFor("ttbar_mass")
	require.True(t, ok)
	x := []float64{305, 315, 325, 335, 345, 355}
	res, err := Compute(x, x, ones(6), spec)
	require.NoError(t, err)
	assert.Len(t, res.Bins, 54)
	assert.InDelta(t, 305, res.Bins[0], 1e-12)

	spec, ok = SpecFor("ll_cHel")
	require.True(t, ok)
	res, err = Compute([]float64{-0.99, 0, 0.99}, []float64{0, 0, 0}, ones(3), spec)
	require.NoError(t, err)
	assert.Len(t, res.Bins, 80)

	_, ok = SpecFor("no_such_variable")
	assert.False(t, ok)
}

func BenchmarkCompute(b *testing.B) {
	const n = 100000
	binning := make([]float64, n)
	values := make([]float64, n)
	for i := range binning {
		binning[i] = rand.Float64() * 100
		values[i] = rand.NormFloat64()
	}
	weights := ones(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compute(binning, values, weights, Uniform(50))
	}
}
