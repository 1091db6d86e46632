package integrator

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Config contains path tracing configuration
type Config struct {
	MinDistance float64 // Closest accepted hit; keeps bounced rays off their own surface
	MaxDistance float64 // Farthest accepted hit (exclusive)
	MaxDepth    int     // Maximum number of bounces before the path is dropped
	Sky         Sky
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MinDistance: 0.001,
		MaxDistance: math.Inf(1),
		MaxDepth:    10,
		Sky:         DefaultSky(),
	}
}

// PathTracingIntegrator implements unidirectional path tracing lit only by the sky
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, sampler).Color
}

// Trace follows ray through the world, multiplying in each material's albedo,
// until it escapes to the sky, is absorbed, or runs out of bounces
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Shape, sampler core.Sampler) PathResult {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		hit, isHit := world.Hit(ray, pt.config.MinDistance, pt.config.MaxDistance)
		if !isHit {
			return PathResult{
				Color:       throughput.MultiplyVec(pt.config.Sky.Color(ray.Direction)),
				Bounces:     depth,
				Termination: Escaped,
			}
		}

		scatter, didScatter := hit.Material.Scatter(*hit, sampler)
		if !didScatter {
			// Absorption discards everything gathered so far
			return PathResult{Bounces: depth, Termination: Absorbed}
		}

		ray = scatter.Scattered
		throughput = throughput.MultiplyVec(scatter.Attenuation)
	}

	return PathResult{Bounces: pt.config.MaxDepth, Termination: Exhausted}
}
