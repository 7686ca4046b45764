package vmath

import "math"

// Vec3F is a world-space position or direction. X is east, Y up, Z north.
type Vec3F struct {
	X, Y, Z float64
}

// Unit directions
var (
	V3FUp      = Vec3F{0, 1, 0}
	V3FRight   = Vec3F{1, 0, 0}
	V3FLeft    = Vec3F{-1, 0, 0}
	V3FForward = Vec3F{0, 0, 1}
	V3FBack    = Vec3F{0, 0, -1}
)

func (v Vec3F) Add(o Vec3F) Vec3F { return Vec3F{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3F) Sub(o Vec3F) Vec3F { return Vec3F{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3F) Dot(o Vec3F) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross is the right-handed product v × o
func (v Vec3F) Cross(o Vec3F) Vec3F {
	return Vec3F{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3F) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit scales v to length 1; the zero vector stays zero
func (v Vec3F) Unit() Vec3F {
	l := v.Len()
	if l == 0 {
		return Vec3F{}
	}
	return Vec3F{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3F) IsZero() bool { return v == Vec3F{} }
