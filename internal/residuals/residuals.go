// Package residuals compares reconstructed kinematic quantities against
// generator-level truth and summarizes the per-bin reconstruction quality.
package residuals

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hepkit/ttreco/internal/binstats"
)

// ErrShapeMismatch is returned when reco and gen arrays differ in length.
var ErrShapeMismatch = errors.New("residuals: arrays have mismatched lengths")

// ErrZeroReference is returned by Relative when a generator-level value is
// exactly zero.
var ErrZeroReference = errors.New("residuals: generator-level value is zero")

// Absolute returns reco − gen per event.
func Absolute(reco, gen []float64) ([]float64, error) {
	if len(reco) != len(gen) {
		return nil, fmt.Errorf("%w: reco=%d gen=%d", ErrShapeMismatch, len(reco), len(gen))
	}
	out := make([]float64, len(reco))
	for i := range reco {
		out[i] = reco[i] - gen[i]
	}
	return out, nil
}

// Relative returns (reco − gen) / gen per event.
func Relative(reco, gen []float64) ([]float64, error) {
	if len(reco) != len(gen) {
		return nil, fmt.Errorf("%w: reco=%d gen=%d", ErrShapeMismatch, len(reco), len(gen))
	}
	out := make([]float64, len(reco))
	for i := range reco {
		if gen[i] == 0 {
			return nil, fmt.Errorf("%w: event %d", ErrZeroReference, i)
		}
		out[i] = (reco[i] - gen[i]) / gen[i]
	}
	return out, nil
}

// MethodQuality is the per-bin reconstruction quality of one method for one
// variable: the full binned statistics of its residuals, binned on the
// generator-level value. Bias aliases the weighted mean and RMSE the
// weighted RMS, matching how the summary is read downstream.
type MethodQuality struct {
	Method string
	Stats  binstats.Result
}

// Bias returns the per-bin weighted mean residual.
func (q MethodQuality) Bias() []float64 { return q.Stats.Mean }

// RMSE returns the per-bin weighted root-mean-square residual.
func (q MethodQuality) RMSE() []float64 { return q.Stats.RMS }

// Evaluate bins each method's residuals against the shared generator-level
// truth and returns one quality summary per method, keyed by method name.
// Every method array must align with gen and weights.
func Evaluate(methods map[string][]float64, gen, weights []float64, spec binstats.BinSpec) (map[string]MethodQuality, error) {
	out := make(map[string]MethodQuality, len(methods))
	for name, reco := range methods {
		res, err := Absolute(reco, gen)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", name, err)
		}
		stats, err := binstats.Compute(gen, res, weights, spec)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", name, err)
		}
		log.Debug().Str("method", name).Int("bins", len(stats.Bins)).Msg("evaluated method residuals")
		out[name] = MethodQuality{Method: name, Stats: stats}
	}
	return out, nil
}
