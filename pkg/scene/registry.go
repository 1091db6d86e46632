package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name isn't registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Builder creates a scene for an image of width x height pixels. Scenes with random
// content draw it from seed.
type Builder func(width, height int, seed int64) *Scene

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string // Name passed to Create
	DisplayName string
	Description string
}

type entry struct {
	description string
	build       Builder
}

var registry = map[string]entry{
	"wide-angle": {"Blue and red spheres framed by a 90 degree vertical view", NewWideAngleScene},
	"cover":      {"Random field of moving diffuse, metal and glass spheres", NewCoverScene},
	"red-sphere": {"A single red diffuse sphere under the sky", NewRedSphereScene},
	"materials":  {"One sphere per scattering model, including a hollow glass bubble", NewMaterialsScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns information about every registered scene, sorted by ID
func List() []SceneInfo {
	names := Names()
	infos := make([]SceneInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
		})
	}
	return infos
}

// Create builds the named scene. Non-positive sizes fall back to the default image size.
func Create(name string, width, height int, seed int64) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}

	defaults := renderer.DefaultSamplingConfig()
	if width <= 0 {
		width = defaults.Width
	}
	if height <= 0 {
		height = defaults.Height
	}

	s := e.build(width, height, seed)
	s.Name = name
	return s, nil
}

// titleCase converts a scene ID like "red-sphere" to "Red Sphere"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
