package geometry

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultNormalEpsilon is the finite-difference step used for surface normals
const DefaultNormalEpsilon = 1e-4

// NumericalNormal estimates the unit gradient of sdf at p using forward
// differences against the already evaluated distance d0. Forward differences
// carry a first-order bias on curved surfaces; callers rely on that bias
// staying stable, so central differences are not used here.
//
// A zero gradient means the field is degenerate at p and shading cannot
// proceed, so it panics.
func NumericalNormal(sdf func(core.Vec3) float64, d0 float64, p core.Vec3, eps float64) core.Vec3 {
	dx := sdf(r3.Add(p, core.NewVec3(eps, 0, 0))) - d0
	dy := sdf(r3.Add(p, core.NewVec3(0, eps, 0))) - d0
	dz := sdf(r3.Add(p, core.NewVec3(0, 0, eps))) - d0

	if dx == 0 && dy == 0 && dz == 0 {
		panic(fmt.Sprintf("geometry: degenerate distance field gradient at %v", p))
	}

	return r3.Unit(core.NewVec3(dx, dy, dz))
}
