package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the colour carried back along a ray and reports
	// what the march did. Implementations must not keep per-ray state,
	// since one integrator serves every pixel concurrently.
	RayColor(ray core.Ray, scene core.Scene) (core.Vec3, MarchStats)
}

// MarchStats describes how a single primary ray terminated
type MarchStats struct {
	Steps             int     // Scene samples taken
	Bounces           int     // Surface hits that reflected the ray
	Hit               bool    // At least one surface was hit
	Escaped           bool    // The ray parameter passed the maximum distance
	PowerExhausted    bool    // Remaining power fell below the threshold
	DistanceTravelled float64 // Cumulative ray parameter over all bounces
}
