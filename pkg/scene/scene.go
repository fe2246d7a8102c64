package scene

import (
	"sort"

	"golang.org/x/xerrors"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3              // Background color for rays pointing up
	BottomColor    core.Vec3              // Background color for rays pointing down
	World          *geometry.HittableList // Objects in the scene
	Lights         geometry.Hittable      // Objects to importance-sample, nil for none
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns everything a ray can hit
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetLights returns the importance-sampled objects
func (s *Scene) GetLights() geometry.Hittable {
	return s.Lights
}

// LogObjects writes one line per top-level object with its bounds
func (s *Scene) LogObjects(logger core.Logger) {
	for _, object := range s.World.Objects {
		if box, ok := object.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1); ok {
			logger.Printf("  %s: %v to %v", geometry.NameOf(object), box.Min, box.Max)
		} else {
			logger.Printf("  %s: unbounded", geometry.NameOf(object))
		}
	}
}

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = xerrors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builtin struct {
	info SceneInfo
	new  func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info: SceneInfo{Name: "default", Description: "Spheres of every material, a moving sphere and a rotated crate under a sky"},
		new:  NewDefaultScene,
	},
	"cornell": {
		info: SceneInfo{Name: "cornell", Description: "Cornell box with two rotated boxes and an area light"},
		new:  NewCornellScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// ByName builds the built-in scene called name
func ByName(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, xerrors.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return b.new(), nil
}
