package geometry

import (
	"math"
	"testing"

	"github.com/pmellor/go-pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

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
			name:           "back face hit from inside",
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

func TestSphere_Hit_CenteredRay(t *testing.T) {
	// A ray aimed at the sphere's center hits at distance to the surface,
	// with the normal pointing straight back at the ray
	sphere := NewSphere(core.NewVec3(0, 0, -5), 2.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3 (distance to surface), got t=%f", hit.T)
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected normal %v pointing away from center, got %v", expectedNormal, hit.Normal)
	}
}

func TestSphere_Hit_RootSelection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{name: "near root in range", tMin: 0.001, tMax: 1000, expectHit: true, expectedT: 1.0},
		{name: "near root excluded, far root chosen", tMin: 2.0, tMax: 1000, expectHit: true, expectedT: 3.0},
		{name: "both roots beyond tMax", tMin: 0.001, tMax: 0.5, expectHit: false},
		{name: "both roots before tMin", tMin: 5.0, tMax: 1000, expectHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if tt.expectHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.0, 1.0, 0.5, nil,
	)

	tests := []struct {
		name     string
		time     float64
		expected core.Vec3
	}{
		{name: "at time0", time: 0.0, expected: core.NewVec3(0, 0, 0)},
		{name: "midway", time: 0.5, expected: core.NewVec3(1, 0, 0)},
		{name: "at time1", time: 1.0, expected: core.NewVec3(2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := sphere.Center(tt.time)
			if center.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected center %v, got %v", tt.expected, center)
			}
		})
	}
}

func TestMovingSphere_ZeroIntervalIsStationary(t *testing.T) {
	// A degenerate shutter interval must not divide by zero; the sphere
	// stays at its first center
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -3), core.NewVec3(5, 0, -3),
		0.0, 0.0, 1.0, nil,
	)

	for _, time := range []float64{0.0, 0.5, 1.0} {
		center := sphere.Center(time)
		if center.Subtract(core.NewVec3(0, 0, -3)).Length() > 1e-9 {
			t.Errorf("Expected stationary center at time %f, got %v", time, center)
		}
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on stationary sphere, got miss")
	}
	if math.IsNaN(hit.T) || math.IsNaN(hit.Point.X) || math.IsNaN(hit.Normal.Z) {
		t.Fatalf("Hit record contains NaN: t=%f point=%v normal=%v", hit.T, hit.Point, hit.Normal)
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
}

func TestMovingSphere_HitUsesRayTime(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(-2, 0, -3), core.NewVec3(2, 0, -3),
		0.0, 1.0, 0.5, nil,
	)

	// At time 0.5 the sphere is centered on the ray's axis
	ray := core.Ray{
		Origin:    core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0, -1),
		Time:      0.5,
	}
	if _, isHit := sphere.Hit(ray, 0.001, 1000.0); !isHit {
		t.Error("Expected hit at shutter midpoint")
	}

	// At time 0 the sphere has not yet reached the axis
	ray.Time = 0.0
	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss at shutter open, got hit at t=%f", hit.T)
	}
}
