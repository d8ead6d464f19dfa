package scene

import (
	"math"
	"math/rand"

	"github.com/pmellor/go-pathtracer/pkg/core"
	"github.com/pmellor/go-pathtracer/pkg/geometry"
	"github.com/pmellor/go-pathtracer/pkg/material"
)

// NewWideAngleScene creates a two-sphere scene whose spheres line up exactly
// with the left and right edges of a 90 degree viewport
func NewWideAngleScene(aspectRatio float64) *Scene {
	s := NewScene(geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VerticalFOV:   90,
		AspectRatio:   aspectRatio,
		FocusDistance: 1.0,
	})

	radius := math.Cos(math.Pi / 4)

	// The blue sphere on the left
	s.Add(geometry.NewSphere(core.NewVec3(-radius, 0, -1), radius,
		material.NewLambertian(core.NewVec3(0, 0, 1))))

	// The red sphere on the right
	s.Add(geometry.NewSphere(core.NewVec3(radius, 0, -1), radius,
		material.NewLambertian(core.NewVec3(1, 0, 0))))

	return s
}

// NewCoverScene creates the book-cover scene: three large feature spheres on
// a gray globe, surrounded by a field of small random spheres. The field is
// generated from the given seed so renders are reproducible.
func NewCoverScene(aspectRatio float64, seed int64) *Scene {
	s := NewScene(geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VerticalFOV:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	})

	// The globe
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// The diffuse sphere in the back
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))

	// The glass sphere in the middle
	glass := material.NewDielectric(1.5)
	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	// The metal sphere in the front
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	random := rand.New(rand.NewSource(seed))

	for i := -11; i < 11; i++ {
		for j := -11; j < 11; j++ {
			chooseMat := random.Float64()

			center := core.NewVec3(
				float64(i)+0.9*random.Float64(),
				0.2,
				float64(j)+0.9*random.Float64(),
			)

			// Keep the field clear of the front feature sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				// Diffuse spheres bob upward while the shutter is open
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColorIn(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorIn(random *rand.Rand, minVal, maxVal float64) core.Vec3 {
	span := maxVal - minVal
	return core.NewVec3(
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
		minVal+span*random.Float64(),
	)
}
