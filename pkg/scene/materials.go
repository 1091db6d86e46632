package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewMaterialsScene lines up one sphere per scattering model on a diffuse ground
func NewMaterialsScene(width, height int, seed int64) *Scene {
	aspect := float64(width) / float64(height)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	glass := material.NewGlass()

	row := []material.Material{
		material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)),
		material.NewSpherical(core.NewVec3(0.2, 0.6, 0.3)),
		material.NewHemispherical(core.NewVec3(0.1, 0.2, 0.5)),
		material.NewSpecular(core.NewVec3(0.8, 0.6, 0.2), 0.3),
		material.NewSpecular(core.NewVec3(0.8, 0.8, 0.8), 0),
		glass,
	}

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	}
	for i, mat := range row {
		x := float64(i) - float64(len(row)-1)/2
		shapes = append(shapes, geometry.NewSphere(core.NewVec3(x*1.1, 0, -1), 0.5, mat))
	}

	// Hollow glass bubble in front: the negative radius flips the inner surface's normal
	bubbleCenter := core.NewVec3(0, -0.2, 0.4)
	shapes = append(shapes,
		geometry.NewSphere(bubbleCenter, 0.3, glass),
		geometry.NewSphere(bubbleCenter, -0.27, glass),
	)

	return &Scene{
		World: geometry.NewWorld(shapes, 0, 0),
		CameraConfig: renderer.CameraConfig{
			Origin:        core.NewVec3(0, 1.2, 4),
			Target:        core.NewVec3(0, 0, -1),
			AspectRatio:   aspect,
			Fov:           horizontalFov(50, aspect),
			Aperture:      0.02,
			FocusDistance: 5.1,
		},
		SamplingConfig: samplingConfig(width, height),
	}
}
