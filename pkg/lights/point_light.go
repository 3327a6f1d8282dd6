package lights

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// PointLight is a light at a single position with a soft-shadow penumbra
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
	Softness  float64 // Penumbra factor k passed to LightPower
	MaxSteps  int
}

// NewPointLight creates a white point light
func NewPointLight(position core.Vec3, intensity, softness float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     core.NewVec3(1, 1, 1),
		Intensity: intensity,
		Softness:  softness,
		MaxSteps:  DefaultShadowSteps,
	}
}

// Illuminate returns Color * Intensity * LightPower
func (l *PointLight) Illuminate(scene SurfaceSampler, s core.Sample) core.Vec3 {
	steps := l.MaxSteps
	if steps <= 0 {
		steps = DefaultShadowSteps
	}

	power := LightPower(scene, s, l.Position, l.Softness, steps)
	return r3.Scale(l.Intensity*power, l.Color)
}
