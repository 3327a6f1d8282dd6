package material

import "github.com/df07/go-sphere-tracer/pkg/core"

// Opaque absorbs all remaining ray power at the first hit
const Opaque = 1.0

// Every material in this package is a closed variant of core.Material.
var (
	_ core.Material = (*Normal)(nil)
	_ core.Material = (*Solid)(nil)
	_ core.Material = (*Checkerboard)(nil)
	_ core.Material = (*Mirror)(nil)
)

// hitNormal returns the sample normal, panicking if a material is asked to
// shade a point that is not a surface hit
func hitNormal(s core.Sample) core.Vec3 {
	n, ok := s.Normal()
	if !ok {
		panic("material: evaluated on a sample without a surface hit")
	}
	return n
}
