package scene

import (
	"github.com/pmellor/go-pathtracer/pkg/core"
	"github.com/pmellor/go-pathtracer/pkg/geometry"
)

// Scene contains the objects to render, the camera parameters and the
// background colors. Read-only during rendering, safely shared by reference
// across all workers.
type Scene struct {
	Objects          []core.Hittable
	CameraConfig     geometry.CameraConfig
	BackgroundTop    core.Vec3 // Sky color straight up
	BackgroundBottom core.Vec3 // Sky color at the horizon and below
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		CameraConfig:     cameraConfig,
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(object core.Hittable) {
	s.Objects = append(s.Objects, object)
}

// Hit scans all objects linearly and returns the hit with the smallest t in
// (tMin, tMax), or false if nothing is hit
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range s.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Background returns the sky color for a ray that hit nothing: a vertical
// gradient from BackgroundBottom at the horizon to BackgroundTop straight up
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the direction's y from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return s.BackgroundBottom.Multiply(1.0 - t).Add(s.BackgroundTop.Multiply(t))
}
