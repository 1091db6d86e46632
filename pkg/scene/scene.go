package scene

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.World
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Camera builds the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// samplingConfig returns the default sampling settings at the given image size
func samplingConfig(width, height int) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Width = width
	config.Height = height
	return config
}

// horizontalFov converts a vertical field of view into the camera's edge-to-edge
// angle for an image of the given aspect ratio
func horizontalFov(verticalFov, aspectRatio float64) float64 {
	halfHeight := math.Tan(verticalFov * math.Pi / 360)
	return 2 * math.Atan(halfHeight*aspectRatio) * 180 / math.Pi
}
