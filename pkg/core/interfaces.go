package core

// Logger interface for tracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Scene is the capability set the integrator traces against.
// A single scene is shared read-only by every pixel trace.
type Scene interface {
	// SampleSDF returns the signed distance from p to the nearest surface.
	SampleSDF(p Vec3) float64

	// SampleSurface evaluates the distance at p and, within the hit threshold,
	// fills in the hit position, normal and material.
	SampleSurface(p Vec3) Sample

	// SampleLight returns the light arriving at a confirmed hit.
	SampleLight(s Sample) Vec3

	// SampleSpace is reserved for volumetric effects between two points.
	SampleSpace(p0, p1 Vec3) Vec3
}

// Material shades a confirmed hit
type Material interface {
	Evaluate(s Sample) Response
}

// Response is a material's answer for one hit: an RGB colour plus the
// fraction of the remaining ray power absorbed at this bounce.
type Response struct {
	Color       Vec3
	Attenuation float64
}

// ClampedAttenuation returns the attenuation limited to [0, 1]
func (r Response) ClampedAttenuation() float64 {
	return max(0, min(1, r.Attenuation))
}
