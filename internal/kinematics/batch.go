package kinematics

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when parallel component arrays do not share
// a single length.
var ErrShapeMismatch = errors.New("kinematics: component arrays have mismatched lengths")

// Batch is one four-momentum per event.
type Batch []Vec4

// BatchPtEtaPhiM builds a batch from parallel (pt, eta, phi, mass) arrays.
// A non-nil mask selects the events to keep and must match the array length.
func BatchPtEtaPhiM(pt, eta, phi, mass []float64, mask []bool) (Batch, error) {
	if err := checkShape(len(pt), len(eta), len(phi), len(mass), mask); err != nil {
		return nil, err
	}
	b := make(Batch, 0, len(pt))
	for i := range pt {
		if mask != nil && !mask[i] {
			continue
		}
		b = append(b, FromPtEtaPhiM(pt[i], eta[i], phi[i], mass[i]))
	}
	return b, nil
}

// BatchPtEtaPhiE builds a batch from parallel (pt, eta, phi, energy) arrays.
func BatchPtEtaPhiE(pt, eta, phi, energy []float64, mask []bool) (Batch, error) {
	if err := checkShape(len(pt), len(eta), len(phi), len(energy), mask); err != nil {
		return nil, err
	}
	b := make(Batch, 0, len(pt))
	for i := range pt {
		if mask != nil && !mask[i] {
			continue
		}
		b = append(b, FromPtEtaPhiE(pt[i], eta[i], phi[i], energy[i]))
	}
	return b, nil
}

// BatchPxPyPzE builds a batch from parallel Cartesian component arrays.
func BatchPxPyPzE(px, py, pz, e []float64, mask []bool) (Batch, error) {
	if err := checkShape(len(px), len(py), len(pz), len(e), mask); err != nil {
		return nil, err
	}
	b := make(Batch, 0, len(px))
	for i := range px {
		if mask != nil && !mask[i] {
			continue
		}
		b = append(b, FromPxPyPzE(px[i], py[i], pz[i], e[i]))
	}
	return b, nil
}

func checkShape(a, b, c, d int, mask []bool) error {
	if a != b || a != c || a != d {
		return fmt.Errorf("%w: %d/%d/%d/%d", ErrShapeMismatch, a, b, c, d)
	}
	if mask != nil && len(mask) != a {
		return fmt.Errorf("%w: mask length %d for %d events", ErrShapeMismatch, len(mask), a)
	}
	return nil
}

// Concat appends the events of others after b, preserving order. Batches
// from different sub-samples must only be mixed through this explicit step.
func (b Batch) Concat(others ...Batch) Batch {
	n := len(b)
	for _, o := range others {
		n += len(o)
	}
	out := make(Batch, 0, n)
	out = append(out, b...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Filter returns the events selected by mask.
func (b Batch) Filter(mask []bool) (Batch, error) {
	if len(mask) != len(b) {
		return nil, fmt.Errorf("%w: mask length %d for %d events", ErrShapeMismatch, len(mask), len(b))
	}
	out := make(Batch, 0, len(b))
	for i, keep := range mask {
		if keep {
			out = append(out, b[i])
		}
	}
	return out, nil
}

// Map extracts one scalar per event.
func (b Batch) Map(f func(Vec4) float64) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = f(v)
	}
	return out
}

func (b Batch) Pts() []float64      { return b.Map(Vec4.Pt) }
func (b Batch) Etas() []float64     { return b.Map(Vec4.Eta) }
func (b Batch) Phis() []float64     { return b.Map(Vec4.Phi) }
func (b Batch) Masses() []float64   { return b.Map(Vec4.Mass) }
func (b Batch) Energies() []float64 { return b.Map(func(v Vec4) float64 { return v.E }) }
func (b Batch) Pzs() []float64      { return b.Map(func(v Vec4) float64 { return v.Pz }) }
