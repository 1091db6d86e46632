package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Sphere represents a sphere whose center may move over time
type Sphere struct {
	Center   core.MotionCurve
	Radius   float64
	Material material.Material
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return NewSphereOnCurve(core.NewStationaryCurve(center), radius, mat)
}

// NewMovingSphere creates a sphere at center0 at time0 moving linearly to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *Sphere {
	return NewSphereOnCurve(core.NewLinearCurve(center0, center1, time0, time1), radius, mat)
}

// NewSphereOnCurve creates a sphere that follows the given motion curve.
// A negative radius turns the sphere inside out (normals point inward), which
// is how hollow glass bubbles are modelled. A zero or NaN radius panics.
func NewSphereOnCurve(center core.MotionCurve, radius float64, mat material.Material) *Sphere {
	if radius == 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		panic("geometry: sphere radius must be finite and non-zero")
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.Center.At(ray.Time)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// If the nearer root is already too far the farther one is as well
	root := (-halfB - sqrtD) / a
	if root >= tMax {
		return nil, false
	}

	// Too close (e.g. the point the ray just left): try the far side
	if root < tMin {
		root = (-halfB + sqrtD) / a
		if root < tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		Ray:      ray,
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box swept by the sphere over [time0, time1].
// Only the endpoints are sampled, which is exact for linear motion.
func (s *Sphere) BoundingBox(time0, time1 float64) core.AABB {
	radius := math.Abs(s.Radius)
	if !s.Center.IsMoving() {
		return core.NewAABBAround(s.Center.At(time0), radius)
	}
	return core.NewAABBAround(s.Center.At(time0), radius).
		Union(core.NewAABBAround(s.Center.At(time1), radius))
}
