package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cone represents a finite, capped cone or frustum
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for pointed cone, >0 for frustum
}

// NewCone creates a new cone or frustum
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64) (*Cone, error) {
	// Validate parameters
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius for a cone (got base=%f, top=%f). Use Cylinder for equal radii", baseRadius, topRadius)
	}
	if r3.Norm(r3.Sub(topCenter, baseCenter)) == 0 {
		return nil, fmt.Errorf("cone height must be positive")
	}

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
	}, nil
}

// Distance returns the exact signed distance to the capped cone
func (c *Cone) Distance(p core.Vec3) float64 {
	ba := r3.Sub(c.TopCenter, c.BaseCenter)
	pa := r3.Sub(p, c.BaseCenter)
	rba := c.TopRadius - c.BaseRadius
	baba := r3.Dot(ba, ba)
	papa := r3.Dot(pa, pa)
	paba := r3.Dot(pa, ba) / baba

	// Distance from the axis
	x := math.Sqrt(math.Max(0, papa-paba*paba*baba))

	// Nearest point on the caps
	capRadius := c.BaseRadius
	if paba >= 0.5 {
		capRadius = c.TopRadius
	}
	cax := math.Max(0, x-capRadius)
	cay := math.Abs(paba-0.5) - 0.5

	// Nearest point on the slanted side
	k := rba*rba + baba
	f := math.Max(0, math.Min(1, (rba*(x-c.BaseRadius)+paba*baba)/k))
	cbx := x - c.BaseRadius - f*rba
	cby := paba - f

	s := 1.0
	if cbx < 0 && cay < 0 {
		s = -1.0
	}

	return s * math.Sqrt(math.Min(cax*cax+cay*cay*baba, cbx*cbx+cby*cby*baba))
}
