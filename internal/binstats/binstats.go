// Package binstats partitions (value, weight) pairs into bins of a second
// binning coordinate and reports robust and weighted statistics per bin.
package binstats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrShapeMismatch is returned when the binning, value and weight arrays do
// not share a single length.
var ErrShapeMismatch = errors.New("binstats: input arrays have mismatched lengths")

// ErrBadBinSpec is returned for empty, unordered or otherwise unusable
// binning specifications.
var ErrBadBinSpec = errors.New("binstats: invalid bin specification")

// minBinEntries is the population below which a bin reports the zero
// sentinel for every statistic.
const minBinEntries = 5

// BinSpec selects the bin layout: either a uniform split into a fixed
// number of bins spanning floor(min)..ceil(max) of the binning coordinate,
// or an explicit ascending edge sequence.
type BinSpec struct {
	count int
	edges []float64
}

// Uniform splits the observed range of the binning coordinate into n equal
// bins.
func Uniform(n int) BinSpec {
	return BinSpec{count: n}
}

// Edges uses the given ascending sequence as bin edges, yielding
// len(edges)-1 bins.
func Edges(edges ...float64) BinSpec {
	return BinSpec{edges: edges}
}

func (s BinSpec) resolve(binning []float64) ([]float64, error) {
	if s.edges != nil {
		if len(s.edges) < 2 {
			return nil, fmt.Errorf("%w: need at least 2 edges, got %d", ErrBadBinSpec, len(s.edges))
		}
		for i := 1; i < len(s.edges); i++ {
			if s.edges[i] <= s.edges[i-1] {
				return nil, fmt.Errorf("%w: edges not strictly ascending at index %d", ErrBadBinSpec, i)
			}
		}
		return s.edges, nil
	}
	if s.count < 1 {
		return nil, fmt.Errorf("%w: bin count %d", ErrBadBinSpec, s.count)
	}
	if len(binning) == 0 {
		return nil, fmt.Errorf("%w: no events to derive a uniform range from", ErrBadBinSpec)
	}
	lo := math.Floor(floats.Min(binning))
	hi := math.Ceil(floats.Max(binning))
	if lo == hi {
		hi++
	}
	return floats.Span(make([]float64, s.count+1), lo, hi), nil
}

// Result holds one entry per bin, ordered by ascending bin midpoint. Bins
// holds the midpoints themselves. A bin with fewer than five events carries
// the zero sentinel in every statistic; so do the weighted statistics of a
// bin whose weights sum to zero.
type Result struct {
	Bins     []float64
	Q84Q16   []float64
	Mean     []float64
	Median   []float64
	Variance []float64
	RMS      []float64
}

// AsMap returns the result keyed the way downstream reports store it.
func (r Result) AsMap() map[string][]float64 {
	return map[string][]float64{
		"bins":     r.Bins,
		"q84q16":   r.Q84Q16,
		"mean":     r.Mean,
		"median":   r.Median,
		"variance": r.Variance,
		"rms":      r.RMS,
	}
}

// Compute bins values by the parallel binning coordinate and evaluates the
// per-bin statistics. Events whose coordinate falls outside the edge range
// are dropped; each bin covers the half-open interval [lo, hi), except that
// the last bin is closed at its upper edge so the sample maximum is kept.
//
// The quantile spread and median are intentionally unweighted: order
// statistics stay robust against a few high-weight outliers. Mean, variance
// and RMS honor the event weights, which may be negative.
func Compute(binning, values, weights []float64, spec BinSpec) (Result, error) {
	if len(values) != len(binning) || len(weights) != len(binning) {
		return Result{}, fmt.Errorf("%w: binning=%d values=%d weights=%d",
			ErrShapeMismatch, len(binning), len(values), len(weights))
	}
	edges, err := spec.resolve(binning)
	if err != nil {
		return Result{}, err
	}

	nbins := len(edges) - 1
	res := Result{
		Bins:     make([]float64, nbins),
		Q84Q16:   make([]float64, nbins),
		Mean:     make([]float64, nbins),
		Median:   make([]float64, nbins),
		Variance: make([]float64, nbins),
		RMS:      make([]float64, nbins),
	}

	binVals := make([][]float64, nbins)
	binWts := make([][]float64, nbins)
	for i, x := range binning {
		// Linear scan: edge tables are short and often non-uniform.
		for j := 0; j < nbins; j++ {
			if x >= edges[j] && (x < edges[j+1] || (j == nbins-1 && x == edges[j+1])) {
				binVals[j] = append(binVals[j], values[i])
				binWts[j] = append(binWts[j], weights[i])
				break
			}
		}
	}

	for j := 0; j < nbins; j++ {
		res.Bins[j] = (edges[j] + edges[j+1]) / 2
		vals, wts := binVals[j], binWts[j]
		if len(vals) < minBinEntries {
			continue
		}

		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)
		res.Q84Q16[j] = percentile(sorted, 84) - percentile(sorted, 16)
		res.Median[j] = percentile(sorted, 50)

		if floats.Sum(wts) == 0 {
			continue
		}
		mean := stat.Mean(vals, wts)
		res.Mean[j] = mean
		res.Variance[j] = stat.MomentAbout(2, vals, mean, wts)
		res.RMS[j] = math.Sqrt(stat.MomentAbout(2, vals, 0, wts))
	}
	return res, nil
}

// percentile returns the p-th percentile (0..100) of already-sorted values,
// linearly interpolating between adjacent order statistics at fractional
// rank p/100*(n-1).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
