package kinematics

import "math"

// Vec2 is a transverse-plane momentum vector, used for recoil and missing
// transverse momentum style quantities.
type Vec2 struct {
	Px, Py float64
}

// FromPtPhi builds a transverse vector from magnitude and azimuth.
func FromPtPhi(pt, phi float64) Vec2 {
	return Vec2{Px: pt * math.Cos(phi), Py: pt * math.Sin(phi)}
}

// FromPxPy builds a transverse vector from Cartesian components.
func FromPxPy(px, py float64) Vec2 {
	return Vec2{Px: px, Py: py}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.Px + o.Px, v.Py + o.Py}
}

func (v Vec2) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

func (v Vec2) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}
