package geometry

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate convention seen from the camera: +x right, +y up, +z into the scene.

// Sensor is the image-plane rectangle in camera-local coordinates. Both
// corners lie on the z=0 plane; Corners[0] maps to (u,v) = (0,0).
type Sensor struct {
	Corners [2]core.Vec3
	Rows    int
	Cols    int
}

// NewSensor creates a sensor of the given physical size centred on the optical axis
func NewSensor(width, height float64, rows, cols int) Sensor {
	return Sensor{
		Corners: [2]core.Vec3{
			core.NewVec3(-width/2, height/2, 0),
			core.NewVec3(width/2, -height/2, 0),
		},
		Rows: rows,
		Cols: cols,
	}
}

// Width returns the sensor extent along x
func (s Sensor) Width() float64 {
	return s.Corners[1].X - s.Corners[0].X
}

// Height returns the sensor extent along y
func (s Sensor) Height() float64 {
	return s.Corners[0].Y - s.Corners[1].Y
}

// PlanePoint interpolates between the corners for u, v in [0,1]
func (s Sensor) PlanePoint(u, v float64) core.Vec3 {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		panic(fmt.Sprintf("geometry: sensor coordinates (%g, %g) outside [0,1]", u, v))
	}

	return core.NewVec3(
		s.Corners[0].X+u*(s.Corners[1].X-s.Corners[0].X),
		s.Corners[0].Y+v*(s.Corners[1].Y-s.Corners[0].Y),
		0,
	)
}

// Pinhole generates rays through a pinhole placed FocalLength in front of the sensor
type Pinhole struct {
	FocalLength    float64
	Sensor         Sensor
	SensorToCamera core.Transform
	// ToWorld places the camera. Directions are mapped with the transposed
	// rotation and origins with the translation. It may be changed between frames.
	ToWorld core.Transform
}

// NewPinhole creates a pinhole camera at the origin looking down +z
func NewPinhole(focalLength float64, sensor Sensor) *Pinhole {
	return &Pinhole{
		FocalLength:    focalLength,
		Sensor:         sensor,
		SensorToCamera: core.Identity(),
		ToWorld:        core.Identity(),
	}
}

// Ray returns the world-space ray through sensor coordinates (u, v)
func (c *Pinhole) Ray(u, v float64) core.Ray {
	pp := c.SensorToCamera.Apply(c.Sensor.PlanePoint(u, v))
	pp = r3.Add(pp, core.NewVec3(0, 0, -c.FocalLength))

	return core.NewRay(
		c.ToWorld.Translation,
		c.ToWorld.ApplyDirectionTransposed(r3.Unit(r3.Scale(-1, pp))),
	)
}

// Forward returns the world-space direction of the optical axis
func (c *Pinhole) Forward() core.Vec3 {
	return c.ToWorld.ApplyDirectionTransposed(core.NewVec3(0, 0, 1))
}

// Position returns the world-space pinhole position
func (c *Pinhole) Position() core.Vec3 {
	return c.ToWorld.Translation
}

// LookAt builds a camera placement at eye looking toward target. The
// rotation rows are the camera's right, up and forward axes, so its
// transpose maps camera-local directions into world space.
func LookAt(eye, target, up core.Vec3) core.Transform {
	forward := r3.Unit(r3.Sub(target, eye))
	right := r3.Unit(r3.Cross(up, forward))
	trueUp := r3.Cross(forward, right)

	return core.NewTransform([9]float64{
		right.X, right.Y, right.Z,
		trueUp.X, trueUp.Y, trueUp.Z,
		forward.X, forward.Y, forward.Z,
	}, eye)
}

// CameraConfig contains the parameters needed to build a Pinhole
type CameraConfig struct {
	Center       core.Vec3 // Pinhole position
	LookAt       core.Vec3 // Point the camera looks at
	Up           core.Vec3 // Up direction
	FocalLength  float64   // Distance from sensor to pinhole
	SensorWidth  float64   // Physical sensor width
	SensorHeight float64   // Physical sensor height
	Rows         int       // Image height in pixels
	Cols         int       // Image width in pixels
}

// DefaultCameraConfig returns the camera a new scene starts with
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:       core.NewVec3(0, 0, -25),
		LookAt:       core.NewVec3(0, 0, 0),
		Up:           core.NewVec3(0, 1, 0),
		FocalLength:  0.01,
		SensorWidth:  0.002,
		SensorHeight: 0.002,
		Rows:         256,
		Cols:         256,
	}
}

// MergeCameraConfig applies the non-zero fields of override onto base. A
// resolution override without a sensor height rescales the sensor height to
// the new aspect ratio.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	var zero core.Vec3

	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	if override.SensorWidth != 0 {
		result.SensorWidth = override.SensorWidth
	}
	if override.SensorHeight != 0 {
		result.SensorHeight = override.SensorHeight
	}
	if override.Rows != 0 {
		result.Rows = override.Rows
	}
	if override.Cols != 0 {
		result.Cols = override.Cols
	}

	// Keep pixels square when only the resolution changes
	if (override.Rows != 0 || override.Cols != 0) && override.SensorHeight == 0 {
		result.SensorHeight = result.SensorWidth * float64(result.Rows) / float64(result.Cols)
	}

	return result
}

// NewCamera creates a pinhole camera from a config
func NewCamera(config CameraConfig) *Pinhole {
	sensor := NewSensor(config.SensorWidth, config.SensorHeight, config.Rows, config.Cols)
	camera := NewPinhole(config.FocalLength, sensor)
	camera.ToWorld = LookAt(config.Center, config.LookAt, config.Up)
	return camera
}
