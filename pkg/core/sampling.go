package core

import (
	"math"
	"math/rand"
)

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// RandomInUnitSphere generates a uniform random point inside the unit sphere
// using the inverse CDF method rather than rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	// For a uniform distribution inside the sphere the radius must be
	// distributed as the cube root of a uniform draw (volume scaling)
	r := math.Pow(random.Float64(), 1.0/3.0)
	return RandomUnitVector(random).Multiply(r)
}

// RandomInUnitDisk generates a uniform random point in the unit disk in the
// z=0 plane (for lens sampling)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	angle := 2.0 * math.Pi * random.Float64()
	// Area scaling: radius is the square root of a uniform draw
	radius := math.Sqrt(random.Float64())
	return NewVec3(radius*math.Cos(angle), radius*math.Sin(angle), 0)
}
