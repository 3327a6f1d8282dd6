package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewBoxScene creates an axis-aligned box in front of a camera at the origin
func NewBoxScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("box")

	s.CameraConfig = geometry.CameraConfig{
		Center:       core.NewVec3(0, 0, 0),
		LookAt:       core.NewVec3(0, 0, 1),
		Up:           core.NewVec3(0, 1, 0),
		FocalLength:  0.01,
		SensorWidth:  0.002,
		SensorHeight: 0.002,
		Rows:         128,
		Cols:         128,
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	s.Ambient = core.NewVec3(0.2, 0.2, 0.2)

	s.Add("box", geometry.NewBox(core.NewVec3(0, 0, 10), core.NewVec3(1, 2, 3)), material.NewNormal())
	s.Add("ground", geometry.NewGroundPlane(-3), material.NewSolid(core.NewVec3(0.6, 0.6, 0.5)))

	s.AddLight(lights.NewPointLight(core.NewVec3(-10, 20, -5), 1.0, 8))

	return s
}
