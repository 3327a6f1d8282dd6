package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Distance returns the signed distance from p to the sphere surface
func (s *Sphere) Distance(p core.Vec3) float64 {
	return SphereDistance(p, s.Center, s.Radius)
}
