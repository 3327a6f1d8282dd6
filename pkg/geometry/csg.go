package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Union combines shapes by taking the minimum distance
type Union []Shape

// Distance returns the distance to the nearest member shape
func (u Union) Distance(p core.Vec3) float64 {
	d := math.Inf(1)
	for _, s := range u {
		d = math.Min(d, s.Distance(p))
	}
	return d
}

// Intersection keeps the region inside every member shape.
// The result is a bound, not an exact distance.
type Intersection []Shape

// Distance returns the largest member distance
func (in Intersection) Distance(p core.Vec3) float64 {
	d := math.Inf(-1)
	for _, s := range in {
		d = math.Max(d, s.Distance(p))
	}
	return d
}
