package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mirror tints its own colour and passes a share of the ray power on to the
// reflected ray. The integrator always reflects, so only the split matters here.
type Mirror struct {
	Albedo      core.Vec3 // Mirror tint
	Reflectance float64   // 0.0 = absorbs everything, 1.0 = perfect mirror
}

// NewMirror creates a new mirror material
func NewMirror(albedo core.Vec3, reflectance float64) *Mirror {
	// Clamp reflectance to valid range
	if reflectance > 1.0 {
		reflectance = 1.0
	}
	if reflectance < 0.0 {
		reflectance = 0.0
	}
	return &Mirror{Albedo: albedo, Reflectance: reflectance}
}

// Evaluate returns the tint weighted by the absorbed share
func (m *Mirror) Evaluate(s core.Sample) core.Response {
	attenuation := 1 - m.Reflectance
	return core.Response{
		Color:       r3.Scale(attenuation, m.Albedo),
		Attenuation: attenuation,
	}
}
