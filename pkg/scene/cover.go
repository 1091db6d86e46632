package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewCoverScene creates the classic field of small random spheres around three large
// ones. Diffuse spheres bounce upward while the shutter is open, so they blur.
func NewCoverScene(width, height int, seed int64) *Scene {
	aspect := float64(width) / float64(height)
	random := rand.New(rand.NewSource(seed))
	sampler := core.NewRandomSampler(random)

	glass := material.NewGlass()

	shapes := []geometry.Shape{
		// The globe
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),

		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewSpecular(core.NewVec3(0.7, 0.6, 0.5), 0)),
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for i := -11; i < 11; i++ {
		for j := -11; j < 11; j++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(i)+0.9*random.Float64(), 0.2, float64(j)+0.9*random.Float64())

			// Keep the front of the metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomInUnitCube(sampler).MultiplyVec(core.RandomInUnitCube(sampler))
				bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
				shapes = append(shapes, geometry.NewMovingSphere(
					center, center.Add(bounce), 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.RandomInCube(sampler, 0.5, 1)
				shapes = append(shapes, geometry.NewSphere(
					center, 0.2, material.NewSpecular(albedo, 0.5*random.Float64())))
			default:
				shapes = append(shapes, geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	camera := renderer.CameraConfig{
		Origin:        core.NewVec3(13, 2, 3),
		Target:        core.NewVec3(0, 0, 0),
		AspectRatio:   aspect,
		Fov:           coverFov(aspect),
		Aperture:      0.1,
		FocusDistance: 10,
		ShutterOpen:   0,
		ShutterClose:  1,
	}

	return &Scene{
		World:          geometry.NewWorld(shapes, camera.ShutterOpen, camera.ShutterClose),
		CameraConfig:   camera,
		SamplingConfig: samplingConfig(width, height),
	}
}

// coverFov is the classic cover framing: atan(aspect * tan 20°), about 36° at 2:1.
// It is narrower than a true 20° vertical view.
func coverFov(aspectRatio float64) float64 {
	return math.Atan(aspectRatio*math.Tan(20*math.Pi/180)) * 180 / math.Pi
}
