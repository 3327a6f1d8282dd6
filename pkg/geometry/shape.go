package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// Shape is a signed distance field. Distance must never overestimate the
// true distance to the surface, otherwise marching can step through it.
type Shape interface {
	Distance(p core.Vec3) float64
}

// ShapeFunc adapts a plain distance function to the Shape interface
type ShapeFunc func(p core.Vec3) float64

// Distance calls f(p)
func (f ShapeFunc) Distance(p core.Vec3) float64 {
	return f(p)
}
