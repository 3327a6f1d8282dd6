package lights

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

func TestSpotLight_NewSpotLight(t *testing.T) {
	from := core.NewVec3(0, 5, 0)
	to := core.NewVec3(0, 0, 0)

	light := NewSpotLight(from, to, 1, 16, 45, 5)

	if light.Position != from {
		t.Errorf("Expected position %v, got %v", from, light.Position)
	}
	if light.Direction != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected direction (0,-1,0), got %v", light.Direction)
	}

	expectedCosTotalWidth := math.Cos(45 * math.Pi / 180.0)
	if math.Abs(light.cosTotalWidth-expectedCosTotalWidth) > 1e-9 {
		t.Errorf("Expected cosTotalWidth %v, got %v", expectedCosTotalWidth, light.cosTotalWidth)
	}
	expectedCosFalloffStart := math.Cos(40 * math.Pi / 180.0)
	if math.Abs(light.cosFalloffStart-expectedCosFalloffStart) > 1e-9 {
		t.Errorf("Expected cosFalloffStart %v, got %v", expectedCosFalloffStart, light.cosFalloffStart)
	}
}

func TestSpotLight_Falloff(t *testing.T) {
	light := NewSpotLight(core.NewVec3(0, 5, 0), core.Vec3{}, 1, 16, 30, 5)

	mid := (light.cosTotalWidth + light.cosFalloffStart) / 2

	tests := []struct {
		name     string
		cosAngle float64
		expected float64
	}{
		{"on axis", 1, 1},
		{"inner edge", light.cosFalloffStart, 1},
		{"outer edge", light.cosTotalWidth, 0},
		{"outside", 0, 0},
		{"halfway", mid, 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.falloff(tt.cosAngle)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("falloff(%v) = %v, expected %v", tt.cosAngle, got, tt.expected)
			}
		})
	}
}

func TestSpotLight_Illuminate(t *testing.T) {
	ground := fieldSampler{geometry.NewGroundPlane(-10)}
	light := NewSpotLight(core.NewVec3(0, 20, 0), core.NewVec3(0, -10, 0), 2, 16, 30, 5)
	up := core.NewVec3(0, 1, 0)

	inside := light.Illuminate(ground, surfaceAt(core.NewVec3(0, -10, 0), up))
	if math.Abs(inside.X-2) > 1e-9 || inside.X != inside.Y || inside.Y != inside.Z {
		t.Errorf("Expected full white light of 2 under the spot, got %v", inside)
	}

	outside := light.Illuminate(ground, surfaceAt(core.NewVec3(50, -10, 0), up))
	if outside != (core.Vec3{}) {
		t.Errorf("Expected no light outside the cone, got %v", outside)
	}
}

func TestSpotLight_Shadowed(t *testing.T) {
	light := NewSpotLight(core.NewVec3(0, 100, 0), core.NewVec3(0, -10, 0), 1, 16, 30, 5)

	lit := light.Illuminate(sphereAndGround(), surfaceAt(core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0)))
	if lit != (core.Vec3{}) {
		t.Errorf("Expected the sphere to block the spot, got %v", lit)
	}
}
