package renderer

import (
	"math"
	"math/rand"

	"github.com/pmellor/go-pathtracer/pkg/core"
)

// Scene interface to avoid circular imports
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	Background(ray core.Ray) core.Vec3
}

// Hits closer than this are ignored to stop scattered rays from re-hitting
// the surface they left (shadow acne)
const tMinHit = 0.001

// Raytracer resolves rays against a scene into radiance values
type Raytracer struct {
	scene Scene
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{scene: scene}
}

// RayColor returns the color for a given ray, recursing on scattered rays
// until absorption, background, or depth exhaustion
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(r, tMinHit, math.Inf(1))
	if !isHit {
		return rt.scene.Background(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, random))
}

// quantizeColor converts a linear color to 8-bit channels with gamma 2
// correction (square root) and clamping
func quantizeColor(colorVec core.Vec3) (r, g, b uint8) {
	corrected := colorVec.Clamp(0.0, math.Inf(1)).GammaCorrect(2.0)
	return quantizeChannel(corrected.X), quantizeChannel(corrected.Y), quantizeChannel(corrected.Z)
}

func quantizeChannel(value float64) uint8 {
	return uint8(math.Min(value*256.0, 255.0))
}
