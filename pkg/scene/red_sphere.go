package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewRedSphereScene creates a single red diffuse unit sphere at the point the camera aims at
func NewRedSphereScene(width, height int, seed int64) *Scene {
	aspect := float64(width) / float64(height)
	red := material.NewLambertian(core.NewVec3(1, 0, 0))

	return &Scene{
		World: geometry.NewWorld([]geometry.Shape{geometry.NewSphere(core.NewVec3(0, 0, 0), 1, red)}, 0, 0),
		CameraConfig: renderer.CameraConfig{
			Origin:        core.NewVec3(0, 0.5, 4),
			Target:        core.NewVec3(0, 0, 0),
			AspectRatio:   aspect,
			Fov:           horizontalFov(40, aspect),
			FocusDistance: 4,
		},
		SamplingConfig: samplingConfig(width, height),
	}
}
