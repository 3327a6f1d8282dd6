package lights

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// ShadowEpsilon is single-precision machine epsilon. A shadow ray whose
	// distance falls below it after the first step has reached an occluder.
	// It is much smaller than the scene hit threshold.
	ShadowEpsilon = 1.1920929e-07

	// DefaultShadowSteps bounds the shadow march
	DefaultShadowSteps = 256

	shadowStart       = 0.001
	shadowMaxDistance = 1000.0
)

// LightPower estimates how much of a light at lightPos reaches the hit in s,
// in [0,1]. k controls the penumbra width: larger values give harder shadows.
func LightPower(scene SurfaceSampler, s core.Sample, lightPos core.Vec3, k float64, maxSteps int) float64 {
	origin, ok := s.Position()
	if !ok {
		panic("lights: light power requested for a sample without a surface hit")
	}

	ray := core.NewRay(origin, r3.Unit(r3.Sub(lightPos, origin)))
	t := shadowStart
	res := 1.0

	for i := 0; i < maxSteps && t < shadowMaxDistance; i++ {
		p := ray.At(t)
		d := scene.SampleSurface(p).DistanceToSurface
		t += math.Abs(d)

		if i > 0 && d < ShadowEpsilon {
			return 0
		}
		res = math.Min(res, k*d/t)
	}

	return max(0, min(1, res))
}
