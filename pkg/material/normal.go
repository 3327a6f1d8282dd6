package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Normal colours a surface by its normal, mapping [-1,1] onto [0,1] per channel
type Normal struct {
	Attenuation float64
}

// NewNormal creates an opaque normal-shaded material
func NewNormal() *Normal {
	return &Normal{Attenuation: Opaque}
}

// Evaluate returns (n + 1) / 2
func (m *Normal) Evaluate(s core.Sample) core.Response {
	n := hitNormal(s)
	return core.Response{
		Color:       r3.Scale(0.5, r3.Add(n, core.NewVec3(1, 1, 1))),
		Attenuation: m.Attenuation,
	}
}
