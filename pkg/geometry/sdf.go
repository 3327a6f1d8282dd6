package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphereDistance returns the signed distance from p to a sphere
func SphereDistance(p, origin core.Vec3, radius float64) float64 {
	return r3.Norm(r3.Sub(origin, p)) - radius
}

// PlaneDistance returns the signed distance from p to the plane p·normal = height
func PlaneDistance(p, normal core.Vec3, height float64) float64 {
	return r3.Dot(p, normal) - height
}

// BoxDistance returns the signed distance from p to an axis-aligned box
// centred on origin with the given half extents
func BoxDistance(p, origin, halfExtents core.Vec3) float64 {
	q := r3.Sub(core.Abs(r3.Sub(p, origin)), halfExtents)
	return r3.Norm(core.MaxElem(q, core.Vec3{})) + math.Min(core.MaxComponent(q), 0)
}
