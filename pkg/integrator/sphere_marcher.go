package integrator

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphereMarcher steps along rays by the distance to the nearest surface,
// shading and reflecting at every hit until the ray escapes, runs out of
// steps or has given away almost all of its power
type SphereMarcher struct {
	config core.TraceConfig
}

// NewSphereMarcher creates a new sphere marching integrator
func NewSphereMarcher(config core.TraceConfig) *SphereMarcher {
	return &SphereMarcher{
		config: core.MergeTraceConfig(core.DefaultTraceConfig(), config),
	}
}

// Config returns the effective configuration
func (sm *SphereMarcher) Config() core.TraceConfig {
	return sm.config
}

// RayColor marches one primary ray through the scene. A non-finite ray is a
// caller bug and panics.
func (sm *SphereMarcher) RayColor(ray core.Ray, scene core.Scene) (core.Vec3, MarchStats) {
	if !ray.IsFinite() {
		panic(fmt.Sprintf("integrator: non-finite ray %v", ray))
	}

	var stats MarchStats
	color := core.Vec3{}
	power := 1.0
	t := sm.config.StartOffset
	travelled := 0.0 // ray parameter accumulated by earlier bounces

	for stats.Steps < sm.config.MaxSteps {
		if power < sm.config.PowerThreshold {
			stats.PowerExhausted = true
			break
		}
		if t >= sm.config.MaxDistance {
			break
		}

		sample := scene.SampleSurface(ray.At(t))
		sample.DistanceTravelled = travelled + t
		stats.Steps++

		t += sample.DistanceToSurface

		if !sample.IsHit() {
			continue
		}

		hit := sample.Hit
		stats.Hit = true
		stats.Bounces++

		if sample.Material != nil {
			response := sample.Material.Evaluate(sample)
			light := scene.SampleLight(sample)
			color = r3.Add(color, r3.Scale(power, core.MultiplyVec(response.Color, light)))
			power *= 1 - response.ClampedAttenuation()
		}

		// Restart from just above the surface in the mirrored direction
		travelled += t
		origin := r3.Add(hit.Position, r3.Scale(sm.config.SurfaceOffset, hit.Normal))
		ray = core.NewRay(origin, core.Reflect(ray.Direction, hit.Normal))
		t = sm.config.StartOffset
	}

	stats.DistanceTravelled = travelled + t
	if t >= sm.config.MaxDistance {
		stats.Escaped = true
	}

	// Escaped and non-convergent rays both see the background
	if !stats.PowerExhausted {
		color = r3.Add(color, r3.Scale(power, sm.config.Background))
	}

	return color, stats
}

// FirstHit marches ray until it reaches a surface, without shading or
// reflecting. It returns the hit sample and the number of steps taken; ok is
// false when the ray escaped or ran out of steps.
func (sm *SphereMarcher) FirstHit(ray core.Ray, scene core.Scene) (sample core.Sample, steps int, ok bool) {
	if !ray.IsFinite() {
		panic(fmt.Sprintf("integrator: non-finite ray %v", ray))
	}

	t := sm.config.StartOffset
	for steps < sm.config.MaxSteps && t < sm.config.MaxDistance {
		sample = scene.SampleSurface(ray.At(t))
		sample.DistanceTravelled = t
		steps++

		if sample.IsHit() {
			return sample, steps, true
		}
		t += sample.DistanceToSurface
	}

	return core.Sample{}, steps, false
}
