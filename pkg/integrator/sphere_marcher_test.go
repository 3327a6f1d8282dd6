package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// createSphereScene creates a red sphere in front of the origin lit only by ambient light
func createSphereScene() *scene.Scene {
	s := scene.NewScene("test-sphere")
	s.Ambient = core.NewVec3(1, 1, 1)
	s.Add("sphere", geometry.NewSphere(core.NewVec3(0, 0, 5), 1), material.NewSolid(core.NewVec3(1, 0, 0)))
	return s
}

// createCorridorScene creates two facing half-reflective mirrors at y=-1 and y=1
func createCorridorScene() *scene.Scene {
	s := scene.NewScene("test-corridor")
	s.Ambient = core.NewVec3(1, 1, 1)
	mirror := material.NewMirror(core.NewVec3(1, 1, 1), 0.5)
	s.Add("floor", geometry.NewPlane(core.NewVec3(0, 1, 0), -1), mirror)
	s.Add("ceiling", geometry.NewPlane(core.NewVec3(0, -1, 0), -1), mirror)
	return s
}

func TestSphereMarcher_Hit(t *testing.T) {
	sm := NewSphereMarcher(core.TraceConfig{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	color, stats := sm.RayColor(ray, createSphereScene())

	if !core.IsNear(color, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected red, got %v", color)
	}
	if !stats.Hit || stats.Bounces != 1 {
		t.Errorf("Expected a single hit, got %+v", stats)
	}
	if !stats.PowerExhausted {
		t.Errorf("Expected opaque hit to exhaust power, got %+v", stats)
	}
	if stats.Escaped {
		t.Error("Expected ray not to escape")
	}
}

func TestSphereMarcher_Miss(t *testing.T) {
	sm := NewSphereMarcher(core.TraceConfig{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color, stats := sm.RayColor(ray, createSphereScene())

	if color != (core.Vec3{}) {
		t.Errorf("Expected black background, got %v", color)
	}
	if stats.Hit {
		t.Error("Expected no hit")
	}
	if !stats.Escaped {
		t.Errorf("Expected ray to escape, got %+v", stats)
	}
	if stats.Steps >= sm.Config().MaxSteps {
		t.Errorf("Expected escape well before the step budget, took %d steps", stats.Steps)
	}
}

func TestSphereMarcher_OffsetRays(t *testing.T) {
	background := core.NewVec3(0, 0, 1)
	sm := NewSphereMarcher(core.TraceConfig{Background: background})
	sc := createSphereScene()

	// Rays parallel to the z axis pass the unit sphere at z=5 with closest
	// approach equal to their x offset
	tests := []struct {
		name   string
		offset float64
		hit    bool
	}{
		{"half radius", 0.5, true},
		{"0.9 radius", 0.9, true},
		{"0.99 radius", 0.99, true},
		{"0.999 radius", 0.999, true},
		{"just outside", 1.01, false},
		{"outside", 1.05, false},
		{"well outside", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.offset, 0, 0), core.NewVec3(0, 0, 1))
			color, stats := sm.RayColor(ray, sc)

			if stats.Steps > sm.Config().MaxSteps {
				t.Errorf("Expected at most %d steps, took %d", sm.Config().MaxSteps, stats.Steps)
			}
			if stats.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %+v", tt.hit, stats)
			}
			if tt.hit {
				if !core.IsNear(color, core.NewVec3(1, 0, 0), 1e-9) {
					t.Errorf("Expected red, got %v", color)
				}
				if _, _, ok := sm.FirstHit(ray, sc); !ok {
					t.Error("Expected FirstHit to agree with RayColor")
				}
				return
			}
			if !stats.Escaped {
				t.Errorf("Expected ray to escape, got %+v", stats)
			}
			if !core.IsNear(color, background, 1e-12) {
				t.Errorf("Expected background %v, got %v", background, color)
			}
		})
	}
}

func TestSphereMarcher_Background(t *testing.T) {
	background := core.NewVec3(0.1, 0.2, 0.3)
	sm := NewSphereMarcher(core.TraceConfig{Background: background})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color, _ := sm.RayColor(ray, createSphereScene())
	if !core.IsNear(color, background, 1e-12) {
		t.Errorf("Expected background %v, got %v", background, color)
	}

	// An opaque hit gives all its power away, so no background shows through
	ray = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	color, _ = sm.RayColor(ray, createSphereScene())
	if !core.IsNear(color, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected red, got %v", color)
	}
}

func TestSphereMarcher_StepBound(t *testing.T) {
	tests := []struct {
		name     string
		maxSteps int
	}{
		{"one step", 1},
		{"three steps", 3},
		{"five steps", 5},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSphereMarcher(core.TraceConfig{MaxSteps: tt.maxSteps})
			_, stats := sm.RayColor(ray, createSphereScene())
			if stats.Steps != tt.maxSteps {
				t.Errorf("Expected %d steps, got %d", tt.maxSteps, stats.Steps)
			}
			if stats.Escaped {
				t.Errorf("Expected ray to still be in flight after %d steps", tt.maxSteps)
			}
		})
	}
}

func TestSphereMarcher_PowerMonotonicity(t *testing.T) {
	sc := createCorridorScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	previous := 0.0
	for steps := 2; steps <= 60; steps += 2 {
		sm := NewSphereMarcher(core.TraceConfig{MaxSteps: steps})
		color, _ := sm.RayColor(ray, sc)
		if color.X < previous-1e-12 {
			t.Fatalf("Colour decreased from %f to %f at %d steps", previous, color.X, steps)
		}
		if color.X > 1+1e-9 {
			t.Fatalf("Colour %f exceeds the geometric bound at %d steps", color.X, steps)
		}
		previous = color.X
	}
}

func TestSphereMarcher_PowerThreshold(t *testing.T) {
	sm := NewSphereMarcher(core.TraceConfig{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	color, stats := sm.RayColor(ray, createCorridorScene())

	if !stats.PowerExhausted {
		t.Fatalf("Expected the power threshold to stop the march, got %+v", stats)
	}
	// Each bounce halves the power: 0.5^17 is the first value below 1e-5
	if stats.Bounces != 17 {
		t.Errorf("Expected 17 bounces, got %d", stats.Bounces)
	}
	if math.Abs(color.X-1) > 1e-4 {
		t.Errorf("Expected colour close to 1, got %f", color.X)
	}
	if stats.Steps >= sm.Config().MaxSteps {
		t.Errorf("Expected to stop before the step budget, took %d steps", stats.Steps)
	}
}

func TestSphereMarcher_NonFiniteRayPanics(t *testing.T) {
	sm := NewSphereMarcher(core.TraceConfig{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(math.NaN(), 0, 1))

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-finite ray")
		}
	}()
	sm.RayColor(ray, createSphereScene())
}

func TestSphereMarcher_FirstHit(t *testing.T) {
	sm := NewSphereMarcher(core.TraceConfig{})
	sc := createSphereScene()

	sample, steps, ok := sm.FirstHit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), sc)
	if !ok {
		t.Fatal("Expected first hit on the sphere")
	}
	pos, _ := sample.Position()
	if math.Abs(pos.Z-4) > 1e-3 {
		t.Errorf("Expected hit at z=4, got %v", pos)
	}
	if math.Abs(sample.DistanceTravelled-4) > 1e-3 {
		t.Errorf("Expected distance travelled 4, got %f", sample.DistanceTravelled)
	}
	if steps < 1 {
		t.Errorf("Expected at least one step, got %d", steps)
	}

	_, _, ok = sm.FirstHit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), sc)
	if ok {
		t.Error("Expected no hit looking away from the sphere")
	}
}
