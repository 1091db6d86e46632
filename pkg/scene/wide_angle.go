package scene

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewWideAngleScene creates two spheres side by side that just touch the top and
// bottom edges of a 90 degree vertical view, and its sides at a 2:1 aspect ratio
func NewWideAngleScene(width, height int, seed int64) *Scene {
	aspect := float64(width) / float64(height)

	// Tangent to the 45 degree lines through the origin
	radius := math.Cos(math.Pi / 4)

	blue := material.NewLambertian(core.NewVec3(0, 0, 1))
	red := material.NewLambertian(core.NewVec3(1, 0, 0))

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(-radius, 0, -1), radius, blue),
		geometry.NewSphere(core.NewVec3(radius, 0, -1), radius, red),
	}

	return &Scene{
		World: geometry.NewWorld(shapes, 0, 0),
		CameraConfig: renderer.CameraConfig{
			Origin:        core.NewVec3(0, 0, 0),
			Target:        core.NewVec3(0, 0, -1),
			AspectRatio:   aspect,
			Fov:           horizontalFov(90, aspect),
			FocusDistance: 1,
		},
		SamplingConfig: samplingConfig(width, height),
	}
}
