package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the color arriving along ray from the world
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3

	// Trace is RayColor with details about how the path ended
	Trace(ray core.Ray, world geometry.Shape, sampler core.Sampler) PathResult
}

// Termination describes why a path stopped bouncing
type Termination int

const (
	// Escaped paths left the scene and picked up the sky color
	Escaped Termination = iota
	// Absorbed paths were stopped by a material
	Absorbed
	// Exhausted paths ran out of bounces
	Exhausted
)

// String returns a human readable name for the termination
func (t Termination) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case Absorbed:
		return "absorbed"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of tracing one camera ray
type PathResult struct {
	Color       core.Vec3
	Bounces     int // Number of surfaces the path scattered off
	Termination Termination
}
