package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material.
// Offsetting the normal by a point on the unit sphere gives a cosine-weighted direction.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomOnUnitSphere(sampler)).Normalize()
	return scatterFrom(hit, direction, l.Albedo), true
}

// Spherical is the older diffuse approximation that offsets the normal by a point
// inside the unit sphere. The direction is left unnormalized, which skews the
// distribution towards the normal compared to Lambertian.
type Spherical struct {
	Albedo core.Vec3
}

// NewSpherical creates a new spherical diffuse material
func NewSpherical(albedo core.Vec3) *Spherical {
	return &Spherical{Albedo: albedo}
}

// Scatter implements the Material interface for in-sphere diffuse scattering
func (s *Spherical) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(sampler))
	return scatterFrom(hit, direction, s.Albedo), true
}

// Hemispherical scatters uniformly over the hemisphere around the normal
type Hemispherical struct {
	Albedo core.Vec3
}

// NewHemispherical creates a new hemispherical diffuse material
func NewHemispherical(albedo core.Vec3) *Hemispherical {
	return &Hemispherical{Albedo: albedo}
}

// Scatter implements the Material interface for uniform hemisphere scattering.
// The flipped in-sphere sample is used directly, not added to the normal, so
// the mean cosine with the normal is 1/2.
func (h *Hemispherical) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.RandomInUnitSphere(sampler)
	if direction.Dot(hit.Normal) < 0 {
		direction = direction.Negate()
	}
	return scatterFrom(hit, direction.Normalize(), h.Albedo), true
}
