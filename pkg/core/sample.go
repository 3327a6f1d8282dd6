package core

// SurfaceHit holds the hit point and the unit normal there. They describe
// the same event and are therefore always present together.
type SurfaceHit struct {
	Position Vec3
	Normal   Vec3
}

// Sample is the result of querying a scene at one point
type Sample struct {
	DistanceTravelled float64     // Cumulative ray parameter at this query
	DistanceToSurface float64     // Signed; negative inside geometry
	Hit               *SurfaceHit // Nil when no surface is within the hit threshold
	UV                *Vec2       // Optional surface parameterisation
	Material          Material    // Nil means no shading contribution
}

// NewMissSample creates a sample in free space
func NewMissSample(distance float64) Sample {
	return Sample{DistanceToSurface: distance}
}

// NewHitSample creates a sample at a surface
func NewHitSample(distance float64, position, normal Vec3, material Material) Sample {
	return Sample{
		DistanceToSurface: distance,
		Hit:               &SurfaceHit{Position: position, Normal: normal},
		Material:          material,
	}
}

// IsHit reports whether the sample lies on a surface
func (s Sample) IsHit() bool {
	return s.Hit != nil
}

// Position returns the hit position, if any
func (s Sample) Position() (Vec3, bool) {
	if s.Hit == nil {
		return Vec3{}, false
	}
	return s.Hit.Position, true
}

// Normal returns the hit normal, if any
func (s Sample) Normal() (Vec3, bool) {
	if s.Hit == nil {
		return Vec3{}, false
	}
	return s.Hit.Normal, true
}
