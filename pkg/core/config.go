package core

// TraceConfig contains marching and rendering configuration
type TraceConfig struct {
	MaxSteps       int     // Maximum march iterations per pixel
	MaxDistance    float64 // Ray parameter beyond which a ray has escaped
	PowerThreshold float64 // Remaining power below which marching stops
	StartOffset    float64 // Initial ray parameter, keeps the first sample off the origin
	SurfaceOffset  float64 // Distance a bounced ray starts above the surface
	Background     Vec3    // Colour picked up by escaping rays, weighted by remaining power
	Workers        int     // Parallel row workers; 0 uses every CPU, 1 renders sequentially
}

// DefaultTraceConfig returns sensible default values
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxSteps:       256,
		MaxDistance:    1000,
		PowerThreshold: 1e-5,
		StartOffset:    1e-4,
		SurfaceOffset:  0.002,
		Workers:        0,
	}
}

// MergeTraceConfig applies the non-zero fields of override onto base
func MergeTraceConfig(base, override TraceConfig) TraceConfig {
	result := base

	if override.MaxSteps != 0 {
		result.MaxSteps = override.MaxSteps
	}
	if override.MaxDistance != 0 {
		result.MaxDistance = override.MaxDistance
	}
	if override.PowerThreshold != 0 {
		result.PowerThreshold = override.PowerThreshold
	}
	if override.StartOffset != 0 {
		result.StartOffset = override.StartOffset
	}
	if override.SurfaceOffset != 0 {
		result.SurfaceOffset = override.SurfaceOffset
	}
	if override.Background != (Vec3{}) {
		result.Background = override.Background
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}

	return result
}
