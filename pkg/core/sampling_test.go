package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		p := RandomOnUnitSphere(sampler)
		if math.Abs(p.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %v is not on the unit sphere (length %f)", p, p.Length())
		}
		mean = mean.Add(p)
	}

	// A uniform distribution on the sphere is centered at the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.03 {
		t.Errorf("Samples are biased: mean %v", mean)
	}
}

func TestSamplePointInUnitSphere_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	inner := 0
	const n = 20000
	for i := 0; i < n; i++ {
		p := RandomInUnitSphere(sampler)
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Sample %v is outside the unit sphere", p)
		}
		if p.Length() < 0.5 {
			inner++
		}
	}

	// Volume fraction of the inner half-radius ball is 1/8
	fraction := float64(inner) / n
	if math.Abs(fraction-0.125) > 0.015 {
		t.Errorf("Expected ~12.5%% of samples within r<0.5, got %.3f", fraction)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 5000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample %v should lie in the z=0 plane", p)
		}
		if p.X*p.X+p.Y*p.Y > 1.0+1e-12 {
			t.Fatalf("Disk sample %v is outside the unit disk", p)
		}
	}
}

func TestRandomInCube(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))

	for i := 0; i < 5000; i++ {
		p := RandomInCube(sampler, 0.5, 1.0)
		for axis := 0; axis < 3; axis++ {
			if c := p.Axis(axis); c < 0.5 || c >= 1.0 {
				t.Fatalf("Cube sample %v has component outside [0.5, 1.0)", p)
			}
		}

		u := RandomInUnitCube(sampler)
		if u.X < 0 || u.X >= 1 || u.Y < 0 || u.Y >= 1 || u.Z < 0 || u.Z >= 1 {
			t.Fatalf("Unit cube sample %v out of range", u)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed should produce identical streams")
		}
	}
}
