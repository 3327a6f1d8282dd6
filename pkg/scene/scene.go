package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultHitThreshold is the distance below which a point counts as on a surface
const DefaultHitThreshold = 0.001

// Object pairs a distance field with the material used when it is the nearest surface
type Object struct {
	Name     string
	Shape    geometry.Shape
	Material core.Material
}

// Scene is a union of objects lit by point lights. It implements core.Scene
// and holds no per-ray state, so one instance can be traced from many goroutines.
type Scene struct {
	Name          string
	Objects       []Object
	Lights        []lights.Light
	Ambient       core.Vec3 // Light reaching every hit regardless of shadows
	HitThreshold  float64
	NormalEpsilon float64
	CameraConfig  geometry.CameraConfig
	TraceConfig   core.TraceConfig
}

var _ core.Scene = (*Scene)(nil)

// NewScene creates an empty scene with default thresholds and configs
func NewScene(name string) *Scene {
	return &Scene{
		Name:          name,
		Objects:       make([]Object, 0),
		Lights:        make([]lights.Light, 0),
		HitThreshold:  DefaultHitThreshold,
		NormalEpsilon: geometry.DefaultNormalEpsilon,
		CameraConfig:  geometry.DefaultCameraConfig(),
		TraceConfig:   core.DefaultTraceConfig(),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(name string, shape geometry.Shape, material core.Material) *Scene {
	s.Objects = append(s.Objects, Object{Name: name, Shape: shape, Material: material})
	return s
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) *Scene {
	s.Lights = append(s.Lights, light)
	return s
}

// SampleSDF returns the distance to the nearest object
func (s *Scene) SampleSDF(p core.Vec3) float64 {
	d, _ := s.nearest(p)
	return d
}

// SampleSurface evaluates the field at p and fills in hit data when p is
// within the hit threshold of a surface. A hit found inside geometry is
// pushed back out along the normal so reflected rays start outside.
func (s *Scene) SampleSurface(p core.Vec3) core.Sample {
	d, obj := s.nearest(p)
	if math.Abs(d) >= s.HitThreshold {
		return core.NewMissSample(d)
	}

	normal := geometry.NumericalNormal(s.SampleSDF, d, p, s.NormalEpsilon)
	position := p
	if d < 0 {
		position = r3.Add(position, r3.Scale(-d, normal))
	}

	var material core.Material
	if obj != nil {
		material = obj.Material
	}

	return core.NewHitSample(d, position, normal, material)
}

// SampleLight returns ambient light plus every light's shadowed contribution
func (s *Scene) SampleLight(sample core.Sample) core.Vec3 {
	total := s.Ambient
	for _, light := range s.Lights {
		total = r3.Add(total, light.Illuminate(s, sample))
	}
	return total
}

// SampleSpace contributes nothing; the scene has no participating media
func (s *Scene) SampleSpace(p0, p1 core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// nearest returns the smallest object distance and that object.
// A NaN distance means a malformed shape and panics.
func (s *Scene) nearest(p core.Vec3) (float64, *Object) {
	best := math.Inf(1)
	var bestObj *Object

	for i := range s.Objects {
		obj := &s.Objects[i]
		d := obj.Shape.Distance(p)
		if math.IsNaN(d) {
			panic(fmt.Sprintf("scene %q: object %q returned NaN distance at %v", s.Name, obj.Name, p))
		}
		if d < best {
			best = d
			bestObj = obj
		}
	}

	return best, bestObj
}

// NearestObject returns the object closest to p
func (s *Scene) NearestObject(p core.Vec3) (Object, bool) {
	_, obj := s.nearest(p)
	if obj == nil {
		return Object{}, false
	}
	return *obj, true
}

// GetCamera builds the scene's recommended camera
func (s *Scene) GetCamera() *geometry.Pinhole {
	return geometry.NewCamera(s.CameraConfig)
}
