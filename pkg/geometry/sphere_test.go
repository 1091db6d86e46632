package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_AimedAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Vec3
		center core.Vec3
		radius float64
	}{
		{"unit sphere from +z", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), 1.0},
		{"offset sphere", core.NewVec3(1, 2, 3), core.NewVec3(-2, 0, -4), 0.75},
		{"large sphere", core.NewVec3(0, 50, 0), core.NewVec3(0, -1000, 0), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, testMaterial)
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			expectedT := tt.center.Subtract(tt.origin).Length() - tt.radius
			if math.Abs(hit.T-expectedT) > 1e-9*math.Max(1, expectedT) {
				t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
			}

			expectedNormal := tt.origin.Subtract(tt.center).Normalize()
			if hit.Normal.Subtract(expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
			}
			if !hit.FrontFace {
				t.Error("Expected front face hit from outside")
			}
			if hit.Material != testMaterial {
				t.Error("Hit should carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_SkipsNearRootFromSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	// Ray leaving the front surface into the sphere, as after a refraction
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected to hit the far side of the sphere")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected far-side hit at t=2, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Far-side hit from inside should be a back face")
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"tMax before sphere", 0.001, 0.5, false, 0},
		{"tMax exactly at near root is exclusive", 0.001, 1.0, false, 0},
		{"tMin past sphere", 3.5, 1000.0, false, 0},
		{"tMin between roots", 1.5, 1000.0, true, 3.0},
		{"tMax exactly at far root is exclusive", 1.5, 3.0, false, 0},
		{"tMin exactly at near root is inclusive", 1.0, 1000.0, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_RandomRaysRespectInvariants(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)
	sphere := NewSphere(core.NewVec3(0.3, -0.2, 0.1), 1.0, testMaterial)

	for i := 0; i < 5000; i++ {
		origin := core.RandomInCube(sampler, -3, 3)
		direction := core.RandomOnUnitSphere(sampler)
		tMin := random.Float64() * 0.5
		tMax := tMin + random.Float64()*6

		hit, isHit := sphere.Hit(core.NewRay(origin, direction), tMin, tMax)
		if !isHit {
			continue
		}
		if hit.T < tMin || hit.T >= tMax {
			t.Fatalf("Hit distance %f outside [%f, %f)", hit.T, tMin, tMax)
		}
		d := direction.Dot(hit.Normal)
		if d > 0 {
			t.Fatalf("Normal %v points along ray direction %v", hit.Normal, direction)
		}

		outward := hit.Point.Subtract(sphere.Center.At(0)).Divide(sphere.Radius)
		if hit.FrontFace != (direction.Dot(outward) < 0) {
			t.Fatalf("Face flag %t inconsistent with outward normal %v", hit.FrontFace, outward)
		}
	}
}

func TestSphere_Hit_Moving(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 4, 0), 0, 1, 0.5, testMaterial)
	direction := core.NewVec3(0, 0, -1)

	tests := []struct {
		name      string
		time      float64
		rayY      float64
		expectHit bool
	}{
		{"at start, aimed at start", 0, 0, true},
		{"at start, aimed at end", 0, 4, false},
		{"at end, aimed at end", 1, 4, true},
		{"midway", 0.5, 2, true},
		{"midway, aimed at start", 0.5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayAt(core.NewVec3(0, tt.rayY, 5), direction, tt.time)
			_, isHit := sphere.Hit(ray, 0.001, 100)
			if isHit != tt.expectHit {
				t.Errorf("Expected hit=%t at time %f, got %t", tt.expectHit, tt.time, isHit)
			}
		})
	}
}

func TestSphere_NegativeRadiusFlipsNormal(t *testing.T) {
	bubble := NewSphere(core.NewVec3(0, 0, 0), -0.5, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := bubble.Hit(ray, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit on inverted sphere")
	}
	if hit.FrontFace {
		t.Error("Entering an inverted sphere should register as a back face")
	}
	if hit.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("Normal %v should face the ray", hit.Normal)
	}
}

func TestSphere_ZeroRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero radius")
		}
	}()
	NewSphere(core.NewVec3(0, 0, 0), 0, testMaterial)
}

func TestSphere_BoundingBox(t *testing.T) {
	stationary := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial)
	box := stationary.BoundingBox(0, 1)
	if !box.Min.Equals(core.NewVec3(0.5, 1.5, 2.5)) || !box.Max.Equals(core.NewVec3(1.5, 2.5, 3.5)) {
		t.Errorf("Unexpected stationary bounds %v", box)
	}

	moving := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 1, testMaterial)
	box = moving.BoundingBox(0, 1)
	if !box.Min.Equals(core.NewVec3(-1, -1, -1)) || !box.Max.Equals(core.NewVec3(3, 1, 1)) {
		t.Errorf("Unexpected moving bounds %v", box)
	}

	bubble := NewSphere(core.NewVec3(0, 0, 0), -1, testMaterial)
	if !bubble.BoundingBox(0, 0).IsValid() {
		t.Error("Inverted sphere should still have valid bounds")
	}
}
