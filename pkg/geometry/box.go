package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// Box represents an axis-aligned box
type Box struct {
	Center      core.Vec3
	HalfExtents core.Vec3
}

// NewBox creates a box from its center and half extents
func NewBox(center, halfExtents core.Vec3) *Box {
	return &Box{
		Center:      center,
		HalfExtents: halfExtents,
	}
}

// Distance returns the signed distance from p to the box surface
func (b *Box) Distance(p core.Vec3) float64 {
	return BoxDistance(p, b.Center, b.HalfExtents)
}
