package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestPlane_Distance(t *testing.T) {
	ground := NewGroundPlane(-10)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"above", core.NewVec3(5, 0, -3), 10},
		{"on plane", core.NewVec3(1, -10, 1), 0},
		{"below", core.NewVec3(0, -12, 0), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ground.Distance(tt.point); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 4), 1)
	if got := plane.Distance(core.NewVec3(0, 0, 3)); math.Abs(got-2) > 1e-12 {
		t.Errorf("Expected distance 2 with normalized normal, got %f", got)
	}
}
