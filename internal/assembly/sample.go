// Package assembly loads event samples from storage, applies the selection
// mask and hands the core engines aligned four-momentum batches.
package assembly

import (
	"errors"
	"fmt"

	"github.com/hepkit/ttreco/internal/kinematics"
)

// ErrBadSample is returned for structurally unusable sample files.
var ErrBadSample = errors.New("assembly: malformed sample")

// Components holds parallel per-event component arrays for one particle.
// Either the cylindrical form (pt/eta/phi plus mass or energy) or the
// Cartesian form (px/py/pz/e) must be fully populated.
type Components struct {
	Pt     []float64 `json:"pt,omitempty"`
	Eta    []float64 `json:"eta,omitempty"`
	Phi    []float64 `json:"phi,omitempty"`
	Mass   []float64 `json:"mass,omitempty"`
	Energy []float64 `json:"energy,omitempty"`

	Px []float64 `json:"px,omitempty"`
	Py []float64 `json:"py,omitempty"`
	Pz []float64 `json:"pz,omitempty"`
	E  []float64 `json:"e,omitempty"`
}

func (c Components) batch(mask []bool) (kinematics.Batch, error) {
	switch {
	case c.Px != nil:
		return kinematics.BatchPxPyPzE(c.Px, c.Py, c.Pz, c.E, mask)
	case c.Mass != nil:
		return kinematics.BatchPtEtaPhiM(c.Pt, c.Eta, c.Phi, c.Mass, mask)
	case c.Energy != nil:
		return kinematics.BatchPtEtaPhiE(c.Pt, c.Eta, c.Phi, c.Energy, mask)
	default:
		return nil, fmt.Errorf("%w: particle has neither mass, energy nor cartesian components", ErrBadSample)
	}
}

// ParticleSet is one complete dilepton ttbar final state. The lepton
// carries the negative charge (antitop side), the antilepton the positive
// one (top side).
type ParticleSet struct {
	Top     Components `json:"top"`
	Antitop Components `json:"antitop"`
	Lepton  Components `json:"lepton"`
	Antilep Components `json:"antilepton"`
}

// Sample is one stored sub-sample: the generator-level final state, the
// same final state as rebuilt by each reconstruction method, per-event
// weights and an optional selection mask.
type Sample struct {
	Name      string                 `json:"name"`
	Era       string                 `json:"era,omitempty"`
	Gen       ParticleSet            `json:"gen"`
	Methods   map[string]ParticleSet `json:"methods,omitempty"`
	Weights   []float64              `json:"weights"`
	Selection []bool                 `json:"selection,omitempty"`
}

// EventBatch is the aligned input of the core engines: one batch per
// particle plus event weights, all of equal length, selection already
// applied.
type EventBatch struct {
	Tops    kinematics.Batch
	Antitop kinematics.Batch
	Leptons kinematics.Batch
	Antilep kinematics.Batch
	Weights []float64
}

// Len returns the number of events.
func (b EventBatch) Len() int { return len(b.Weights) }

func (s *Sample) batchOf(set ParticleSet, weights []float64) (EventBatch, error) {
	mask := s.Selection
	tops, err := set.Top.batch(mask)
	if err != nil {
		return EventBatch{}, fmt.Errorf("sample %q top: %w", s.Name, err)
	}
	tbars, err := set.Antitop.batch(mask)
	if err != nil {
		return EventBatch{}, fmt.Errorf("sample %q antitop: %w", s.Name, err)
	}
	ls, err := set.Lepton.batch(mask)
	if err != nil {
		return EventBatch{}, fmt.Errorf("sample %q lepton: %w", s.Name, err)
	}
	lbars, err := set.Antilep.batch(mask)
	if err != nil {
		return EventBatch{}, fmt.Errorf("sample %q antilepton: %w", s.Name, err)
	}

	if len(tops) != len(weights) || len(tbars) != len(weights) ||
		len(ls) != len(weights) || len(lbars) != len(weights) {
		return EventBatch{}, fmt.Errorf("%w: sample %q particles %d/%d/%d/%d for %d weights",
			kinematics.ErrShapeMismatch, s.Name, len(tops), len(tbars), len(ls), len(lbars), len(weights))
	}

	return EventBatch{
		Tops:    tops,
		Antitop: tbars,
		Leptons: ls,
		Antilep: lbars,
		Weights: weights,
	}, nil
}

// maskedWeights applies the selection mask to the weight array.
func (s *Sample) maskedWeights() ([]float64, error) {
	if s.Selection == nil {
		return s.Weights, nil
	}
	if len(s.Selection) != len(s.Weights) {
		return nil, fmt.Errorf("%w: sample %q selection length %d for %d weights",
			kinematics.ErrShapeMismatch, s.Name, len(s.Selection), len(s.Weights))
	}
	kept := make([]float64, 0, len(s.Weights))
	for i, keep := range s.Selection {
		if keep {
			kept = append(kept, s.Weights[i])
		}
	}
	return kept, nil
}

// GenBatch applies the selection mask and converts the generator-level
// component arrays into four-momentum batches. Array length mismatches
// surface as errors here, before any physics runs.
func (s *Sample) GenBatch() (EventBatch, error) {
	weights, err := s.maskedWeights()
	if err != nil {
		return EventBatch{}, err
	}
	return s.batchOf(s.Gen, weights)
}

// MethodBatches converts every reconstruction method's particle set, all
// aligned with the generator-level batch.
func (s *Sample) MethodBatches() (map[string]EventBatch, error) {
	weights, err := s.maskedWeights()
	if err != nil {
		return nil, err
	}
	out := make(map[string]EventBatch, len(s.Methods))
	for name, set := range s.Methods {
		b, err := s.batchOf(set, weights)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", name, err)
		}
		out[name] = b
	}
	return out, nil
}

// Concat merges sub-sample batches into one, preserving order.
func Concat(batches ...EventBatch) EventBatch {
	var out EventBatch
	for _, b := range batches {
		out.Tops = out.Tops.Concat(b.Tops)
		out.Antitop = out.Antitop.Concat(b.Antitop)
		out.Leptons = out.Leptons.Concat(b.Leptons)
		out.Antilep = out.Antilep.Concat(b.Antilep)
		out.Weights = append(out.Weights, b.Weights...)
	}
	return out
}
