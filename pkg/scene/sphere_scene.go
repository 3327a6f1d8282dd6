package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewSphereScene creates a normal-shaded sphere above a checkerboard ground plane,
// lit from high above and slightly behind the sphere. The camera looks at the
// sphere head on from level with its centre, so the sphere fills the middle of
// the frame while every corner ray misses it. The lower corner rays graze the
// ground too shallowly to converge within the step budget and render as background.
func NewSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("sphere")

	s.CameraConfig = SphereCameraConfig()
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	s.Ambient = core.NewVec3(0.25, 0.25, 0.25)

	s.Add("sphere", geometry.NewSphere(core.NewVec3(0, 0, 0), 2.5), material.NewNormal())
	s.Add("ground", geometry.NewGroundPlane(-10), material.NewCheckerboard(
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.2),
		5.0,
	))

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 100, 10), 1.0, 16))

	return s
}

// SphereCameraConfig returns the camera of the sphere scene: 100 units back
// with a narrow field of view of atan(0.02) either side of the axis
func SphereCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:       core.NewVec3(0, 0, -100),
		LookAt:       core.NewVec3(0, 0, 0),
		Up:           core.NewVec3(0, 1, 0),
		FocalLength:  0.01,
		SensorWidth:  0.0004,
		SensorHeight: 0.0004,
		Rows:         256,
		Cols:         256,
	}
}
