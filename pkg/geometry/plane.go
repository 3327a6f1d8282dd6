package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane represents an infinite plane. Points with p·Normal > Height lie outside.
type Plane struct {
	Normal core.Vec3
	Height float64
}

// NewPlane creates a new plane, normalizing the normal
func NewPlane(normal core.Vec3, height float64) *Plane {
	return &Plane{
		Normal: r3.Unit(normal),
		Height: height,
	}
}

// NewGroundPlane creates a horizontal plane facing +Y at the given height
func NewGroundPlane(height float64) *Plane {
	return NewPlane(core.NewVec3(0, 1, 0), height)
}

// Distance returns the signed distance from p to the plane
func (pl *Plane) Distance(p core.Vec3) float64 {
	return PlaneDistance(p, pl.Normal, pl.Height)
}
