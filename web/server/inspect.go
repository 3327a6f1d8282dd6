package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       string                 `json:"object,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Steps        int                    `json:"steps"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = core.Clamp(c, 0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat core.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Normal:
		properties["attenuation"] = m.Attenuation
		return "normal", properties

	case *material.Solid:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["attenuation"] = m.Attenuation
		return "solid", properties

	case *material.Mirror:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["reflectance"] = m.Reflectance
		return "mirror", properties

	case *material.Checkerboard:
		properties["color1"] = hexColor(m.Color1)
		properties["color2"] = hexColor(m.Color2)
		properties["cellSize"] = m.CellSize
		return "checkerboard", properties

	case nil:
		return "none", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = toArray(geom.Normal)
		properties["height"] = geom.Height
		return "plane", properties

	case *geometry.Box:
		properties["center"] = toArray(geom.Center)
		properties["halfExtents"] = toArray(geom.HalfExtents)
		return "box", properties

	case *geometry.Cylinder:
		properties["baseCenter"] = toArray(geom.BaseCenter)
		properties["topCenter"] = toArray(geom.TopCenter)
		properties["radius"] = geom.Radius
		return "cylinder", properties

	case *geometry.Cone:
		properties["baseCenter"] = toArray(geom.BaseCenter)
		properties["baseRadius"] = geom.BaseRadius
		properties["topCenter"] = toArray(geom.TopCenter)
		properties["topRadius"] = geom.TopRadius
		return "cone", properties

	case geometry.Union:
		properties["children"] = len(geom)
		return "union", properties

	case geometry.Intersection:
		properties["children"] = len(geom)
		return "intersection", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel marches the ray through the centre of a pixel to its first hit
func inspectPixel(sceneObj *scene.Scene, row, col int) InspectResponse {
	camera := sceneObj.GetCamera()
	u, v := renderer.PixelUV(row, col, camera.Sensor.Rows, camera.Sensor.Cols)

	marcher := integrator.NewSphereMarcher(sceneObj.TraceConfig)
	sample, steps, ok := marcher.FirstHit(camera.Ray(u, v), sceneObj)
	if !ok {
		return InspectResponse{Hit: false, Steps: steps}
	}

	point, _ := sample.Position()
	normal, _ := sample.Normal()
	response := InspectResponse{
		Hit:      true,
		Point:    toArray(point),
		Normal:   toArray(normal),
		Distance: sample.DistanceTravelled,
		Steps:    steps,
	}

	materialType, materialProps := extractMaterialInfo(sample.Material)
	response.MaterialType = materialType
	response.Properties = map[string]interface{}{"material": materialProps}

	if obj, found := sceneObj.NearestObject(point); found {
		geometryType, geometryProps := extractGeometryInfo(obj.Shape)
		response.Object = obj.Name
		response.GeometryType = geometryType
		response.Properties["geometry"] = geometryProps
	}

	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "x and y are required"})
		return
	}
	col, err := parseIntParam(query, "x", 0, 0, sceneObj.CameraConfig.Cols-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	row, err := parseIntParam(query, "y", 0, 0, sceneObj.CameraConfig.Rows-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, row, col))
}
