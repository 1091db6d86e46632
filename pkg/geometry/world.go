package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// World is an unordered, immutable collection of shapes searched linearly for the
// nearest hit. A bounding box over the shutter interval lets rays that miss the
// whole scene skip the scan.
type World struct {
	shapes    []Shape
	bounds    core.AABB
	hasBounds bool // false when empty or when some shape reports unusable bounds
	time0     float64
	time1     float64
}

// NewWorld creates a world from shapes, bounding them over the shutter interval [time0, time1]
func NewWorld(shapes []Shape, time0, time1 float64) *World {
	// Copy so later changes to the caller's slice can't race with rendering
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	w := &World{
		shapes: shapesCopy,
		time0:  time0,
		time1:  time1,
	}

	if len(shapesCopy) > 0 {
		w.bounds = shapesCopy[0].BoundingBox(time0, time1)
		for _, shape := range shapesCopy[1:] {
			w.bounds = w.bounds.Union(shape.BoundingBox(time0, time1))
		}
		w.hasBounds = w.bounds.IsValid()
	}

	return w
}

// Shapes returns the shapes in the world
func (w *World) Shapes() []Shape {
	return w.shapes
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.shapes)
}

// Hit finds the nearest intersection among all shapes in [tMin, tMax)
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if len(w.shapes) == 0 {
		return nil, false
	}

	// The bounds only hold for rays cast within the shutter interval
	if w.hasBounds && ray.Time >= w.time0 && ray.Time <= w.time1 && !w.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the bounds of every shape in the world over [time0, time1]
func (w *World) BoundingBox(time0, time1 float64) core.AABB {
	if time0 == w.time0 && time1 == w.time1 {
		return w.bounds
	}

	var bounds core.AABB
	for i, shape := range w.shapes {
		if i == 0 {
			bounds = shape.BoundingBox(time0, time1)
			continue
		}
		bounds = bounds.Union(shape.BoundingBox(time0, time1))
	}
	return bounds
}
