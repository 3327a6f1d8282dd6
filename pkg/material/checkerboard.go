package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Checkerboard alternates two colours in square cells on the XZ plane.
// When the sample carries UV coordinates those are used instead.
type Checkerboard struct {
	Color1      core.Vec3
	Color2      core.Vec3
	CellSize    float64
	Attenuation float64
}

// NewCheckerboard creates an opaque checkerboard
func NewCheckerboard(color1, color2 core.Vec3, cellSize float64) *Checkerboard {
	return &Checkerboard{
		Color1:      color1,
		Color2:      color2,
		CellSize:    cellSize,
		Attenuation: Opaque,
	}
}

// Evaluate picks the colour of the cell containing the hit
func (m *Checkerboard) Evaluate(s core.Sample) core.Response {
	var a, b float64
	if s.UV != nil {
		a, b = s.UV.U, s.UV.V
	} else {
		p, ok := s.Position()
		if !ok {
			panic("material: evaluated on a sample without a surface hit")
		}
		a, b = p.X, p.Z
	}

	checkX := int(math.Floor(a / m.CellSize))
	checkY := int(math.Floor(b / m.CellSize))

	color := m.Color1
	if (checkX+checkY)%2 != 0 {
		color = m.Color2
	}

	return core.Response{Color: color, Attenuation: m.Attenuation}
}
