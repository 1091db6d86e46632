package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Specular represents a metallic material with mirror reflection
type Specular struct {
	Albedo    core.Vec3 // Metal color
	Fuzziness float64   // 0.0 = perfect mirror
}

// NewSpecular creates a new specular material
func NewSpecular(albedo core.Vec3, fuzziness float64) *Specular {
	if fuzziness < 0 {
		fuzziness = 0
	}
	return &Specular{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter implements the Material interface for specular reflection.
// Fuzzy reflections that end up below the surface are absorbed.
func (s *Specular) Scatter(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := reflect(hit.Ray.Direction, hit.Normal)

	if s.Fuzziness > 0 {
		perturbation := core.RandomInUnitSphere(sampler).Multiply(s.Fuzziness)
		direction = direction.Add(perturbation).Normalize()
	}

	if direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	return scatterFrom(hit, direction, s.Albedo), true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
