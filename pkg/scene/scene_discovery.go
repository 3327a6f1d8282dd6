package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Scenes []SceneInfo `json:"scenes"`
}

type sceneEntry struct {
	description string
	create      func(...geometry.CameraConfig) *Scene
}

var builtInScenes = map[string]sceneEntry{
	"sphere": {
		description: "Normal-shaded sphere over a checkerboard plane",
		create:      NewSphereScene,
	},
	"box": {
		description: "Axis-aligned box seen from the origin",
		create:      NewBoxScene,
	},
	"default": {
		description: "Mirror sphere, box, rounded cube, cylinder and cone on a checkerboard under point and spot lights",
		create:      NewDefaultScene,
	},
}

// ListScenes returns every built-in scene sorted by id
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for id, entry := range builtInScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: entry.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// ListAllScenes wraps ListScenes for the web API
func ListAllScenes() ScenesResponse {
	return ScenesResponse{Scenes: ListScenes()}
}

// Create builds the named scene, applying any camera overrides
func Create(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return entry.create(cameraOverrides...), nil
}

// titleCase converts a string to title case (first letter of each word capitalized)
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
