package renderer

import (
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int // Pixels written to the image
	TotalSamples int // Camera rays traced

	// How the traced paths ended
	Escaped   int
	Absorbed  int
	Exhausted int

	TotalBounces int // Surfaces scattered off, summed over all paths

	Tiles    int
	Workers  int
	Duration time.Duration
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// AverageBounces returns the mean path length in bounces
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.TotalBounces) / float64(s.TotalSamples)
}

// Merge adds the counters of other into s. Workers and Duration describe the whole
// render and are left alone.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Escaped += other.Escaped
	s.Absorbed += other.Absorbed
	s.Exhausted += other.Exhausted
	s.TotalBounces += other.TotalBounces
	s.Tiles += other.Tiles
}

// recordPath counts one traced path
func (s *RenderStats) recordPath(result integrator.PathResult) {
	s.TotalSamples++
	s.TotalBounces += result.Bounces
	switch result.Termination {
	case integrator.Escaped:
		s.Escaped++
	case integrator.Absorbed:
		s.Absorbed++
	case integrator.Exhausted:
		s.Exhausted++
	}
}

// PixelStats accumulates the samples taken for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Sum of sample colors
	SampleCount int
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average of the samples taken so far
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}
