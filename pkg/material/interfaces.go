package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Material interface for surfaces that redirect or absorb rays.
// Implementations are immutable and may be shared by many shapes and workers.
type Material interface {
	// Scatter returns the continuation of the path at hit, or false if the ray is absorbed
	Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, starting at the hit point
	Attenuation core.Vec3 // Color attenuation (the material's albedo)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Ray       core.Ray  // The ray that produced this hit
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// A ray travelling along or tangent to the outward normal is leaving the
// surface, so the normal is flipped and the hit is a back face.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// scatterFrom builds the result for a path continuing from hit in direction
func scatterFrom(hit HitRecord, direction, albedo core.Vec3) ScatterResult {
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, direction, hit.Ray.Time),
		Attenuation: albedo,
	}
}
