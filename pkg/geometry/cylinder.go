package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder represents a finite, capped cylinder between two points
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
}

// NewCylinder creates a new cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64) *Cylinder {
	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
	}
}

// Distance returns the exact signed distance to the cylinder, caps included
func (c *Cylinder) Distance(p core.Vec3) float64 {
	ba := r3.Sub(c.TopCenter, c.BaseCenter)
	pa := r3.Sub(p, c.BaseCenter)
	baba := r3.Dot(ba, ba)
	paba := r3.Dot(pa, ba)

	// Radial and axial distances, both scaled by baba
	x := r3.Norm(r3.Sub(r3.Scale(baba, pa), r3.Scale(paba, ba))) - c.Radius*baba
	y := math.Abs(paba-baba*0.5) - baba*0.5

	x2 := x * x
	y2 := y * y * baba

	var d float64
	if math.Max(x, y) < 0 {
		d = -math.Min(x2, y2)
	} else {
		if x > 0 {
			d += x2
		}
		if y > 0 {
			d += y2
		}
	}

	return math.Copysign(math.Sqrt(math.Abs(d)), d) / baba
}
