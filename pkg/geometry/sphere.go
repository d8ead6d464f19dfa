package geometry

import (
	"math"

	"github.com/pmellor/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape whose center may move linearly between
// two points over a time interval (for motion blur)
type Sphere struct {
	center0, center1 core.Vec3
	time0, time1     float64
	moving           bool

	Radius   float64
	Material core.Material
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		center0:  center,
		center1:  center,
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere whose center moves linearly from center0
// at time0 to center1 at time1. Rays outside the interval extrapolate along
// the same line. A zero-length interval has no motion to resolve, so the
// sphere stays at center0.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1 float64, radius float64, material core.Material) *Sphere {
	if time1 == time0 {
		return NewSphere(center0, radius, material)
	}
	return &Sphere{
		center0:  center0,
		center1:  center1,
		time0:    time0,
		time1:    time1,
		moving:   true,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	if !s.moving {
		return s.center0
	}
	frac := (time - s.time0) / (s.time1 - s.time0)
	return s.center0.Add(s.center1.Subtract(s.center0).Multiply(frac))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
