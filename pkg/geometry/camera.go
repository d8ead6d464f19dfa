package geometry

import (
	"math"
	"math/rand"

	"github.com/pmellor/go-pathtracer/pkg/core"
)

// CameraConfig contains the user-facing parameters a camera is built from
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up vector (defaults to +Y)
	VerticalFOV   float64   // Vertical field of view in degrees
	AspectRatio   float64   // Viewport width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focus plane; defaults to |LookAt - LookFrom|
	ShutterOpen   float64   // Start of the shutter interval
	ShutterClose  float64   // End of the shutter interval; equal to ShutterOpen for a static exposure
}

// Camera maps normalized screen coordinates to world-space rays, with
// optional depth of field and shutter time. Immutable once constructed.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera creates a camera from user-facing parameters
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.NearZero() {
		up = core.NewVec3(0, 1, 0)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	theta := config.VerticalFOV * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points back toward the viewer, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		shutterOpen:     config.ShutterOpen,
		shutterClose:    config.ShutterClose,
	}
}

// GetRay generates a ray through screen coordinates (s, t) where 0 <= s,t <= 1,
// jittering the origin within the lens disk and drawing a time in the shutter
// interval. Jitter of (s, t) within the pixel footprint is the renderer's job.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time = c.shutterOpen + random.Float64()*(c.shutterClose-c.shutterOpen)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset).
		Normalize()

	return core.Ray{
		Origin:    c.origin.Add(offset),
		Direction: direction,
		Time:      time,
	}
}
