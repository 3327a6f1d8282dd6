package lights

import "github.com/df07/go-sphere-tracer/pkg/core"

// SurfaceSampler is the part of a scene the shadow estimator marches through
type SurfaceSampler interface {
	SampleSurface(p core.Vec3) core.Sample
}

// Light contributes radiance to a confirmed surface hit
type Light interface {
	// Illuminate returns the light's colour reaching the sample, already
	// attenuated by the soft-shadow estimate
	Illuminate(scene SurfaceSampler, s core.Sample) core.Vec3
}
