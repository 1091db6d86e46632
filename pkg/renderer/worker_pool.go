package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	Pixels []core.Vec3 // Shared row-major image; tiles never overlap
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines rendering tiles for raytracer.
// Both queues hold capacity tasks so submitting never blocks on a slow collector.
func NewWorkerPool(raytracer *Raytracer, capacity, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, capacity),
		resultQueue: make(chan TileResult, capacity),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Tasks taken after ctx is done are reported as interrupted
// without being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for id := 0; id < wp.numWorkers; id++ {
		wp.wg.Add(1)
		go wp.run(ctx, id)
	}
}

// Stop waits for queued tasks to drain, then closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result; ok is false once the pool has stopped
// and every result has been read
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context, id int) {
	defer wp.wg.Done()

	logger := wp.raytracer.options.Logger
	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{
				TileID: task.Tile.ID,
				Error:  fmt.Errorf("%w: %w", ErrInterrupted, err),
			}
			continue
		}

		// Each tile owns its random stream so results don't depend on scheduling
		sampler := core.NewSeededSampler(wp.raytracer.options.Seed + int64(task.Tile.ID))
		stats, err := wp.raytracer.RenderBounds(task.Tile.Bounds, task.Pixels, sampler)
		stats.Tiles = 1

		logger.Debugf("worker %d finished tile %d %v", id, task.Tile.ID, task.Tile.Bounds)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats, Error: err}
	}
}
