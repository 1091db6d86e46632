package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Refractive represents a transparent material like glass that can both reflect and refract
type Refractive struct {
	Albedo          core.Vec3
	RefractiveIndex float64 // Index of refraction (air ~= 1.0, glass ~= 1.5)
}

// NewRefractive creates a new refractive material
func NewRefractive(albedo core.Vec3, refractiveIndex float64) *Refractive {
	if refractiveIndex <= 0 || math.IsNaN(refractiveIndex) {
		panic("material: refractive index must be positive")
	}
	return &Refractive{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// NewGlass creates a clear refractive material with the index of glass
func NewGlass() *Refractive {
	return NewRefractive(core.NewVec3(1, 1, 1), 1.5)
}

// Scatter implements the Material interface for refractive scattering
func (r *Refractive) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	d := hit.Ray.Direction
	n := hit.Normal
	cosTheta := -d.Dot(n)

	// Entering the material from outside or leaving it from inside
	ratio := r.RefractiveIndex
	if hit.FrontFace {
		ratio = 1.0 / r.RefractiveIndex
	}

	// NaN when Snell's law has no real solution (total internal reflection)
	cosRefracted := math.Sqrt(1.0 - ratio*ratio*(1.0-cosTheta*cosTheta))

	if math.IsNaN(cosRefracted) || sampler.Get1D() < Schlick(cosTheta, r.RefractiveIndex) {
		mirror := Specular{Albedo: r.Albedo}
		return mirror.Scatter(hit, sampler)
	}

	direction := d.Add(n.Multiply(cosTheta)).Multiply(ratio).Subtract(n.Multiply(cosRefracted))
	return scatterFrom(hit, direction, r.Albedo), true
}

// Schlick approximates the Fresnel reflectance for the cosine of the incidence angle
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
