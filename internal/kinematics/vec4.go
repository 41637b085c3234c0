package kinematics

import "math"

// Vec4 is a four-momentum in Cartesian representation. The energy component
// is always stored explicitly; cylindrical quantities (pt, eta, phi, mass)
// are derived on demand so that every construction route agrees to double
// precision.
type Vec4 struct {
	Px, Py, Pz, E float64
}

// FromPtEtaPhiM builds a four-momentum from transverse momentum,
// pseudorapidity, azimuth and invariant mass.
func FromPtEtaPhiM(pt, eta, phi, mass float64) Vec4 {
	cosh := math.Cosh(eta)
	return Vec4{
		Px: pt * math.Cos(phi),
		Py: pt * math.Sin(phi),
		Pz: pt * math.Sinh(eta),
		E:  math.Sqrt(pt*pt*cosh*cosh + mass*mass),
	}
}

// FromPtEtaPhiE builds a four-momentum with the energy given directly
// instead of the mass.
func FromPtEtaPhiE(pt, eta, phi, energy float64) Vec4 {
	return Vec4{
		Px: pt * math.Cos(phi),
		Py: pt * math.Sin(phi),
		Pz: pt * math.Sinh(eta),
		E:  energy,
	}
}

// FromPxPyPzE builds a four-momentum from Cartesian components.
func FromPxPyPzE(px, py, pz, e float64) Vec4 {
	return Vec4{Px: px, Py: py, Pz: pz, E: e}
}

func (v Vec4) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

func (v Vec4) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

func (v Vec4) Eta() float64 {
	return math.Asinh(v.Pz / v.Pt())
}

// P returns the magnitude of the spatial momentum.
func (v Vec4) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// Mass returns the invariant mass. E² − |p|² can dip below zero by
// rounding for massless particles; the difference is clamped at zero.
func (v Vec4) Mass() float64 {
	m2 := v.E*v.E - v.Px*v.Px - v.Py*v.Py - v.Pz*v.Pz
	if m2 < 0 {
		return 0
	}
	return math.Sqrt(m2)
}

func (v Vec4) Spatial() Vec3 {
	return Vec3{v.Px, v.Py, v.Pz}
}

// SpatialUnit returns the spatial direction of v.
func (v Vec4) SpatialUnit() (Vec3, error) {
	return v.Spatial().Unit()
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.Px + o.Px, v.Py + o.Py, v.Pz + o.Pz, v.E + o.E}
}

// BoostToRestFrameOf expresses v in the rest frame of frame, i.e. it applies
// the Lorentz boost with velocity −β(frame). Boosts do not commute: chaining
// two calls through an intermediate frame is a distinct operation from a
// single boost into the final frame, and callers rely on that.
func (v Vec4) BoostToRestFrameOf(frame Vec4) Vec4 {
	return v.boost(Vec3{
		X: -frame.Px / frame.E,
		Y: -frame.Py / frame.E,
		Z: -frame.Pz / frame.E,
	})
}

// boost applies the pure Lorentz boost with velocity beta (in units of c).
func (v Vec4) boost(beta Vec3) Vec4 {
	b2 := beta.Dot(beta)
	if b2 == 0 {
		return v
	}
	gamma := 1 / math.Sqrt(1-b2)
	bp := beta.Dot(v.Spatial())
	k := (gamma - 1) / b2 * bp
	return Vec4{
		Px: v.Px + (k+gamma*v.E)*beta.X,
		Py: v.Py + (k+gamma*v.E)*beta.Y,
		Pz: v.Pz + (k+gamma*v.E)*beta.Z,
		E:  gamma * (v.E + bp),
	}
}

// AngleBetween returns the opening angle between the spatial directions of
// v and o in radians.
func (v Vec4) AngleBetween(o Vec4) float64 {
	return v.Spatial().Angle(o.Spatial())
}

// Cross returns the cross product of the spatial parts of v and o.
func (v Vec4) Cross(o Vec4) Vec3 {
	return v.Spatial().Cross(o.Spatial())
}
