package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/log"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	MinDistance     float64 // Closest accepted hit along a ray
	MaxDistance     float64 // Farthest accepted hit along a ray (exclusive)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 75,
		MaxDepth:        10,
		MinDistance:     0.001,
		MaxDistance:     math.Inf(1),
	}
}

// Validate reports the first setting that can't produce an image
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d must be positive", ErrInvalidConfig, c.MaxDepth)
	case math.IsNaN(c.MinDistance) || c.MinDistance < 0:
		return fmt.Errorf("%w: min distance %f must not be negative", ErrInvalidConfig, c.MinDistance)
	case math.IsNaN(c.MaxDistance) || c.MaxDistance <= c.MinDistance:
		return fmt.Errorf("%w: max distance %f must exceed min distance %f", ErrInvalidConfig, c.MaxDistance, c.MinDistance)
	}
	return nil
}

// Options control how a render is scheduled rather than what it produces, except
// Seed, which fixes every random stream
type Options struct {
	NumWorkers int   // Worker goroutines; 0 means runtime.NumCPU()
	TileSize   int   // Tile edge length in pixels
	Seed       int64 // Base seed; tile i uses Seed+i
	Sky        integrator.Sky
	Logger     log.Logger
	Progress   ProgressObserver // Optional
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: runtime.NumCPU(),
		TileSize:   32,
		Seed:       42,
		Sky:        integrator.DefaultSky(),
		Logger:     log.New("renderer"),
	}
}

// withDefaults fills in zero-valued fields
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.NumWorkers <= 0 {
		o.NumWorkers = defaults.NumWorkers
	}
	if o.TileSize <= 0 {
		o.TileSize = defaults.TileSize
	}
	if o.Sky == (integrator.Sky{}) {
		o.Sky = defaults.Sky
	}
	if o.Logger == nil {
		o.Logger = defaults.Logger
	}
	return o
}

// Raytracer renders a world through a camera
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	config     SamplingConfig
	options    Options
	integrator integrator.Integrator
}

// NewRaytracer creates a raytracer using a path tracing integrator built from config
func NewRaytracer(world geometry.Shape, camera *Camera, config SamplingConfig, options Options) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is required", ErrInvalidConfig)
	}
	if world == nil {
		return nil, fmt.Errorf("%w: world is required", ErrInvalidConfig)
	}

	options = options.withDefaults()
	pathTracer := integrator.NewPathTracingIntegrator(integrator.Config{
		MinDistance: config.MinDistance,
		MaxDistance: config.MaxDistance,
		MaxDepth:    config.MaxDepth,
		Sky:         options.Sky,
	})

	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		options:    options,
		integrator: pathTracer,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Render traces the whole image and returns its linear RGB pixels in row-major order,
// row 0 at the top. It stops early with ErrInterrupted when ctx is cancelled and with
// ErrNonFiniteSample when a sample isn't a finite color.
func (rt *Raytracer) Render(ctx context.Context) ([]core.Vec3, RenderStats, error) {
	start := time.Now()
	logger := rt.options.Logger

	width, height := rt.config.Width, rt.config.Height
	totalPixels := width * height
	pixels := make([]core.Vec3, totalPixels)
	tiles := NewTileGrid(width, height, rt.options.TileSize)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(rt, len(tiles), rt.options.NumWorkers)
	logger.Infof("rendering %dx%d at %d spp, depth %d: %d tiles on %d workers",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), pool.NumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Pixels: pixels})
	}
	go pool.Stop()

	stats := RenderStats{Workers: pool.NumWorkers()}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
				cancel()
			}
			continue
		}

		stats.Merge(result.Stats)
		if rt.options.Progress != nil {
			rt.options.Progress.OnProgress(stats.TotalPixels, totalPixels)
		}
	}
	stats.Duration = time.Since(start)

	if renderErr != nil {
		logger.Warningf("render stopped after %d of %d tiles: %v", stats.Tiles, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	logger.Infof("rendered %d samples in %v", stats.TotalSamples, stats.Duration)
	return pixels, stats, nil
}

// RenderBounds renders the pixels inside bounds into the row-major pixels slice,
// drawing every random number from sampler
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixels []core.Vec3, sampler core.Sampler) (RenderStats, error) {
	var stats RenderStats
	width, height := float64(rt.config.Width), float64(rt.config.Height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				u := (float64(x) + sampler.Get1D()) / width
				v := (float64(y) + sampler.Get1D()) / height
				ray := rt.camera.GetRay(u, v, sampler)

				result := rt.integrator.Trace(ray, rt.world, sampler)
				if !result.Color.IsFinite() {
					return stats, fmt.Errorf("%w: pixel (%d,%d) sample %d is %v", ErrNonFiniteSample, x, y, s, result.Color)
				}

				ps.AddSample(result.Color)
				stats.recordPath(result)
			}

			pixels[y*rt.config.Width+x] = ps.GetColor()
			stats.TotalPixels++
		}
	}

	return stats, nil
}

// Render traces a width x height image of world through camera with the default
// options and returns its linear RGB pixels in row-major order. Invalid arguments
// and non-finite samples panic.
func Render(width, height int, camera *Camera, minDistance, maxDistance float64, samplesPerPixel, maxDepth int, world geometry.Shape) []core.Vec3 {
	config := SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		MinDistance:     minDistance,
		MaxDistance:     maxDistance,
	}

	rt, err := NewRaytracer(world, camera, config, DefaultOptions())
	if err != nil {
		panic(err)
	}

	pixels, _, err := rt.Render(context.Background())
	if err != nil {
		panic(err)
	}
	return pixels
}
