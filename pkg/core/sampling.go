package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Samplers are not safe for concurrent use; every worker owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic stream
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ (-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitSphere generates a uniform random point inside the unit sphere
// using the inverse CDF of the radius instead of rejection sampling
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Cbrt(sample.X)
	return SampleOnUnitSphere(NewVec2(sample.Y, sample.Z)).Multiply(r)
}

// SamplePointInUnitDisk generates a uniform random point in the unit disk (z = 0)
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	theta := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SamplePointInCube generates a uniform random point in [lo, hi)³
func SamplePointInCube(sample Vec3, lo, hi float64) Vec3 {
	span := hi - lo
	return NewVec3(lo+span*sample.X, lo+span*sample.Y, lo+span*sample.Z)
}

// RandomOnUnitSphere draws a unit direction from the sampler
func RandomOnUnitSphere(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

// RandomInUnitSphere draws a point inside the unit sphere from the sampler
func RandomInUnitSphere(sampler Sampler) Vec3 {
	return SamplePointInUnitSphere(sampler.Get3D())
}

// RandomInUnitDisk draws a point in the unit disk from the sampler (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	return SamplePointInUnitDisk(sampler.Get2D())
}

// RandomInUnitCube draws a point in [0, 1)³ from the sampler
func RandomInUnitCube(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomInCube draws a point in [lo, hi)³ from the sampler
func RandomInCube(sampler Sampler, lo, hi float64) Vec3 {
	return SamplePointInCube(sampler.Get3D(), lo, hi)
}
