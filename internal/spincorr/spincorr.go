// Package spincorr computes the ttbar spin-correlation observables from the
// four-momenta of the top pair and the two decay leptons.
package spincorr

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/hepkit/ttreco/internal/kinematics"
)

// sinScatFloor is the magnitude floor applied to sin(scattering angle) so
// the axis coefficient stays finite at forward/backward scattering.
const sinScatFloor = 1e-9

// Compute evaluates the 18 spin-correlation observables per event.
//
// The lepton convention follows the decay chain: ls holds the negatively
// charged leptons (from the antitop), lbars the positively charged ones
// (from the top). All four batches must have the same length.
//
// Per event, top and antitop are boosted into the ttbar rest frame; each
// lepton is then boosted a second time into the rest frame of its parent's
// partner, as already expressed in the ttbar frame. The two boosts are
// applied sequentially and must not be collapsed into one.
func Compute(tops, tbars, ls, lbars kinematics.Batch) (ObservableSet, error) {
	n := len(tops)
	if len(tbars) != n || len(ls) != n || len(lbars) != n {
		return nil, fmt.Errorf("%w: tops=%d tbars=%d ls=%d lbars=%d",
			kinematics.ErrShapeMismatch, n, len(tbars), len(ls), len(lbars))
	}
	log.Debug().Int("events", n).Msg("computing spin-correlation observables")

	out := make(ObservableSet, len(Names))
	for _, name := range Names {
		out[name] = make([]float64, n)
	}

	pAxis := kinematics.Vec3{X: 0, Y: 0, Z: 1} // beam axis

	for i := 0; i < n; i++ {
		ttbar := tops[i].Add(tbars[i])

		boostedTop := tops[i].BoostToRestFrameOf(ttbar)
		boostedTbar := tbars[i].BoostToRestFrameOf(ttbar)

		boostedL := ls[i].BoostToRestFrameOf(ttbar).BoostToRestFrameOf(boostedTbar)
		boostedLbar := lbars[i].BoostToRestFrameOf(ttbar).BoostToRestFrameOf(boostedTop)

		kAxis, err := boostedTop.SpatialUnit()
		if err != nil {
			return nil, fmt.Errorf("event %d: top at rest in ttbar frame: %w", i, err)
		}

		scatAngle := kAxis.Theta()
		cosScat := math.Cos(scatAngle)
		sinScat := math.Sin(scatAngle)
		if math.Abs(sinScat) < sinScatFloor {
			sinScat = math.Copysign(sinScatFloor, sinScat)
		}
		axisCoeff := sign(cosScat) / math.Abs(sinScat)

		rAxis := pAxis.Sub(kAxis.Scale(cosScat)).Scale(axisCoeff)
		nAxis := pAxis.Cross(kAxis).Scale(axisCoeff)

		lDir := boostedL.Spatial()
		lbarDir := boostedLbar.Spatial()

		b1k := lbarDir.CosAngle(kAxis)
		b1r := lbarDir.CosAngle(rAxis)
		b1n := lbarDir.CosAngle(nAxis)
		// The second lepton is measured against the flipped axes.
		b2k := lDir.CosAngle(kAxis.Neg())
		b2r := lDir.CosAngle(rAxis.Neg())
		b2n := lDir.CosAngle(nAxis.Neg())

		out["b1k"][i] = b1k
		out["b1r"][i] = b1r
		out["b1n"][i] = b1n
		out["b2k"][i] = b2k
		out["b2r"][i] = b2r
		out["b2n"][i] = b2n

		out["c_kk"][i] = b1k * b2k
		out["c_rr"][i] = b1r * b2r
		out["c_nn"][i] = b1n * b2n
		out["c_rk"][i] = b1r * b2k
		out["c_kn"][i] = b1k * b2n
		out["c_nr"][i] = b1n * b2r
		out["c_kr"][i] = b1k * b2r
		out["c_rn"][i] = b1r * b2n
		out["c_nk"][i] = b1n * b2k

		out["ll_cHel"][i] = lbarDir.CosAngle(lDir)

		out["c_han"][i] = b1k*b2k - b1r*b2r - b1n*b2n
		out["c_hel"][i] = -b1k*b2k - b1r*b2r - b1n*b2n
	}

	return out, nil
}

// sign follows the numpy convention: sign(0) = 0.
func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
