package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates a scene exercising every primitive and material
// on a checkerboard ground, lit by two point lights and a spot light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("default")

	s.CameraConfig = geometry.CameraConfig{
		Center:       core.NewVec3(0, 4, -20), // Slightly above the ground, looking down
		LookAt:       core.NewVec3(0, 0, 0),
		Up:           core.NewVec3(0, 1, 0),
		FocalLength:  0.01,
		SensorWidth:  0.008,
		SensorHeight: 0.0045, // 16:9
		Rows:         225,
		Cols:         400,
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	s.TraceConfig.MaxSteps = 512
	s.Ambient = core.NewVec3(0.15, 0.15, 0.2)

	// Materials
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9), 0.8)
	red := material.NewSolid(core.NewVec3(0.8, 0.25, 0.2))
	normal := material.NewNormal()
	gold := material.NewSolid(core.NewVec3(0.85, 0.65, 0.2))
	ground := material.NewCheckerboard(core.NewVec3(0.85, 0.85, 0.8), core.NewVec3(0.15, 0.15, 0.2), 2.0)

	cone, err := geometry.NewCone(core.NewVec3(8, -3, 6), 2, core.NewVec3(8, 2, 6), 0)
	if err != nil {
		panic(err)
	}

	// A cube with its corners shaved off by a slightly smaller sphere
	roundedCube := geometry.Intersection{
		geometry.NewBox(core.NewVec3(4.5, -1, 0), core.NewVec3(2, 2, 2)),
		geometry.NewSphere(core.NewVec3(4.5, -1, 0), 2.7),
	}

	s.Add("mirror-sphere", geometry.NewSphere(core.NewVec3(0, 0, 2), 3), mirror)
	s.Add("box", geometry.NewBox(core.NewVec3(-5, -1.5, 0), core.NewVec3(1.5, 1.5, 1.5)), red)
	s.Add("rounded-cube", roundedCube, normal)
	s.Add("pillar", geometry.NewCylinder(core.NewVec3(-7.5, -3, 4), core.NewVec3(-7.5, 3, 4), 1), gold)
	s.Add("cone", cone, normal)
	s.Add("ground", geometry.NewGroundPlane(-3), ground)

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 40, -20), 0.8, 16))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 20, -10), 0.4, 8))
	s.AddLight(lights.NewSpotLight(core.NewVec3(0, 15, -5), core.NewVec3(0, -3, 2), 0.6, 16, 25, 8))

	return s
}
