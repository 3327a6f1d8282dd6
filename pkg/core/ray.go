package core

import "gonum.org/v1/gonum/spatial/r3"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}

// IsFinite reports whether both origin and direction are finite
func (r Ray) IsFinite() bool {
	return IsFinite(r.Origin) && IsFinite(r.Direction)
}
