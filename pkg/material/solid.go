package material

import "github.com/df07/go-sphere-tracer/pkg/core"

// Solid is a single flat colour
type Solid struct {
	Albedo      core.Vec3
	Attenuation float64
}

// NewSolid creates an opaque solid colour
func NewSolid(albedo core.Vec3) *Solid {
	return &Solid{Albedo: albedo, Attenuation: Opaque}
}

// Evaluate returns the albedo
func (m *Solid) Evaluate(s core.Sample) core.Response {
	return core.Response{Color: m.Albedo, Attenuation: m.Attenuation}
}
