package core

import "math/rand"

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// RandomVec3InRange returns a vector with each component uniform in [min, max)
func RandomVec3InRange(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		randomInRange(random, min, max),
		randomInRange(random, min, max),
		randomInRange(random, min, max),
	)
}

func randomInRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomInUnitSphere rejection-samples the unit cube [0,1)^3 until the point
// lies strictly inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector normalizes a vector drawn from the unit cube [0,1)^3.
// The result is not uniform on the sphere and always lies in the positive octant.
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomVec3(random).UnitVector()
}

// RandomOnHemisphere returns a unit vector in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	onUnitSphere := RandomVec3InRange(random, -1, 1).UnitVector()
	if onUnitSphere.Dot(normal) < 0 {
		return onUnitSphere.Negate()
	}
	return onUnitSphere
}

// SampleSquare returns a random offset in the unit square [0,1)x[0,1) on the XY plane
func SampleSquare(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), 0)
}
