package lights

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// SpotLight is a point light restricted to a cone, with soft shadows
type SpotLight struct {
	PointLight
	Direction       core.Vec3 // Normalized direction the light is aimed along
	cosTotalWidth   float64   // Cosine of total cone angle (outer edge)
	cosFalloffStart float64   // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a white spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewSpotLight(from, to core.Vec3, intensity, softness, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	// Convert to radians and compute cosines
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &SpotLight{
		PointLight:      *NewPointLight(from, intensity, softness),
		Direction:       r3.Unit(r3.Sub(to, from)),
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Illuminate returns the point-light contribution scaled by the cone falloff.
// Points outside the cone skip the shadow march entirely.
func (sl *SpotLight) Illuminate(scene SurfaceSampler, s core.Sample) core.Vec3 {
	p, ok := s.Position()
	if !ok {
		panic("lights: spot light evaluated on a sample without a surface hit")
	}

	lightToPoint := r3.Sub(p, sl.Position)
	if r3.Norm(lightToPoint) == 0 {
		return core.Vec3{}
	}

	spot := sl.falloff(r3.Dot(sl.Direction, r3.Unit(lightToPoint)))
	if spot == 0 {
		return core.Vec3{}
	}

	return r3.Scale(spot, sl.PointLight.Illuminate(scene, s))
}

// falloff calculates the spot light falloff
// Based on the cosine of the angle between light direction and direction to point
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	// Outside the total cone width
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}

	// Inside the inner cone (full intensity)
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	// In the falloff transition region
	// Linear interpolation between falloff start and total width
	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)

	// Smooth falloff using quartic curve
	return delta * delta * delta * delta
}
