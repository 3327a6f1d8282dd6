package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is the 3D vector used for points, directions and RGB colours.
type Vec3 = r3.Vec

// Vec2 holds a surface parameterisation.
type Vec2 struct {
	U, V float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Reflect reflects direction d about the unit normal n: d - 2(d·n)n
func Reflect(d, n Vec3) Vec3 {
	return r3.Sub(d, r3.Scale(2*r3.Dot(d, n), n))
}

// MultiplyVec returns component-wise multiplication of two vectors
func MultiplyVec(a, b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Abs returns the component-wise absolute value
func Abs(v Vec3) Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// MaxElem returns the component-wise maximum of a and b
func MaxElem(a, b Vec3) Vec3 {
	return Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// MinElem returns the component-wise minimum of a and b
func MinElem(a, b Vec3) Vec3 {
	return Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxComponent returns the largest of the three components
func MaxComponent(v Vec3) float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// IsNear reports whether every component of a is within tolerance of b
func IsNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// AngleBetween returns the angle in radians between two non-zero vectors
func AngleBetween(a, b Vec3) float64 {
	return math.Acos(max(-1, min(1, r3.Cos(a, b))))
}
