// Package kinematics provides vector math for relativistic event records:
// spatial three-vectors, Lorentz four-momenta and per-event batches built
// from parallel component arrays.
package kinematics

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a direction is requested from a vector
// with no spatial momentum.
var ErrZeroVector = errors.New("kinematics: zero-norm vector has no direction")

// Vec3 is a spatial three-vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the standard right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the direction of v. A zero-norm vector has no defined
// direction and yields ErrZeroVector.
func (v Vec3) Unit() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// CosAngle returns the cosine of the opening angle between v and o.
// The normalized dot product is clamped to [-1, 1] so that rounding can
// never push a downstream arccos out of its domain.
func (v Vec3) CosAngle(o Vec3) float64 {
	nv, no := v.Norm(), o.Norm()
	if nv == 0 || no == 0 {
		return math.NaN()
	}
	return clamp(v.Dot(o)/(nv*no), -1, 1)
}

// Angle returns the opening angle between v and o in radians.
func (v Vec3) Angle(o Vec3) float64 {
	return math.Acos(v.CosAngle(o))
}

// Theta returns the polar angle of v with respect to the +z axis.
func (v Vec3) Theta() float64 {
	n := v.Norm()
	if n == 0 {
		return math.NaN()
	}
	return math.Acos(clamp(v.Z/n, -1, 1))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
