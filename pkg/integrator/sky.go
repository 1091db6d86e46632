package integrator

import "github.com/df07/go-stochastic-raytracer/pkg/core"

// Sky is the implicit light source: a vertical gradient seen by rays that leave the scene
type Sky struct {
	Horizon core.Vec3 // Color looking straight down, blending to Zenith
	Zenith  core.Vec3 // Color looking straight up
}

// DefaultSky returns the white-to-blue daylight gradient
func DefaultSky() Sky {
	return Sky{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the sky color seen along direction. The direction is normalized
// before its y is mapped from [-1,1] to [0,1], so a non-unit direction left by
// Spherical scattering blends like its unit vector rather than by its raw y.
func (s Sky) Color(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return s.Horizon.Lerp(s.Zenith, t)
}
