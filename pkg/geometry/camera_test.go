package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pmellor/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFOV: 90,
		AspectRatio: 2.0,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	// The ray through the viewport center goes straight at the target
	ray := camera.GetRay(0.5, 0.5, random)

	if ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected ray origin at camera position, got %v", ray.Origin)
	}

	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	// With a 90 degree vertical fov, the ray through the top edge center
	// makes a 45 degree angle with the view direction
	ray := camera.GetRay(0.5, 1.0, random)
	cosAngle := ray.Direction.Dot(core.NewVec3(0, 0, -1))
	if math.Abs(cosAngle-math.Cos(math.Pi/4)) > 1e-9 {
		t.Errorf("Expected 45 degree edge angle, got cos=%f", cosAngle)
	}

	// Aspect ratio 2 doubles the horizontal extent
	ray = camera.GetRay(1.0, 0.5, random)
	tanAngle := math.Abs(ray.Direction.X / ray.Direction.Z)
	if math.Abs(tanAngle-2.0) > 1e-9 {
		t.Errorf("Expected horizontal half-extent 2, got %f", tanAngle)
	}
}

func TestCamera_UnitDirections(t *testing.T) {
	config := testCameraConfig()
	config.LookFrom = core.NewVec3(3, 2, 1)
	config.LookAt = core.NewVec3(0, 1, -4)
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for _, st := range [][2]float64{{0, 0}, {0.25, 0.75}, {1, 1}} {
		ray := camera.GetRay(st[0], st[1], random)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit direction at (%v), got length %f", st, ray.Direction.Length())
		}
	}
}

func TestCamera_ZeroApertureFixedOrigin(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.3, 0.7, random)
		if ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length() > 0 {
			t.Fatalf("Expected fixed origin with zero aperture, got %v", ray.Origin)
		}
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 1.0
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	sawJitter := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		dist := ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length()
		if dist > config.Aperture/2+1e-9 {
			t.Fatalf("Ray origin %v outside lens disk", ray.Origin)
		}
		if dist > 0 {
			sawJitter = true
		}
	}
	if !sawJitter {
		t.Error("Expected lens sampling to move the ray origin")
	}
}

func TestCamera_ShutterInterval(t *testing.T) {
	config := testCameraConfig()
	config.ShutterOpen = 0.25
	config.ShutterClose = 0.75
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	sawSpread := false
	first := camera.GetRay(0.5, 0.5, random).Time
	for i := 0; i < 100; i++ {
		time := camera.GetRay(0.5, 0.5, random).Time
		if time < config.ShutterOpen || time >= config.ShutterClose {
			t.Fatalf("Ray time %f outside shutter interval", time)
		}
		if time != first {
			sawSpread = true
		}
	}
	if !sawSpread {
		t.Error("Expected ray times to spread across the shutter interval")
	}

	// An empty interval pins the time
	config.ShutterClose = config.ShutterOpen
	camera = NewCamera(config)
	if time := camera.GetRay(0.5, 0.5, random).Time; time != 0.25 {
		t.Errorf("Expected fixed time 0.25, got %f", time)
	}
}
