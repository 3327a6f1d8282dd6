package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestNewCone_Validation(t *testing.T) {
	base := core.NewVec3(0, 0, 0)
	top := core.NewVec3(0, 1, 0)

	tests := []struct {
		name       string
		baseRadius float64
		top        core.Vec3
		topRadius  float64
		wantErr    bool
	}{
		{"pointed cone", 1, top, 0, false},
		{"frustum", 1, top, 0.5, false},
		{"zero base radius", 0, top, 0, true},
		{"negative top radius", 1, top, -0.1, true},
		{"top wider than base", 1, top, 2, true},
		{"zero height", 1, base, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCone(base, tt.baseRadius, tt.top, tt.topRadius)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCone() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCone_Distance(t *testing.T) {
	// Cone of base radius 1 at y=0, apex at y=1
	cone, err := NewCone(core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 1, 0), 0)
	if err != nil {
		t.Fatalf("NewCone failed: %v", err)
	}

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"below base", core.NewVec3(0, -2, 0), 2},
		{"above apex", core.NewVec3(0, 3, 0), 2},
		{"base rim", core.NewVec3(1, 0, 0), 0},
		{"on slant", core.NewVec3(0.5, 0.5, 0), 0},
		{"outside slant", core.NewVec3(1, 1, 0), math.Sqrt2 / 2},
		{"inside near base", core.NewVec3(0, 0.1, 0), -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cone.Distance(tt.point); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}
