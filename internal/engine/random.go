package engine

import (
	"math"
	"math/rand"
)

// Sampling helpers take an explicit *rand.Rand so renders can be reproduced
// from a seed. A rand.Rand is not safe for concurrent use; each worker
// goroutine owns its own instance.

// RandomVec3 returns a vector with each component uniform in [0,1).
func RandomVec3(rng *rand.Rand) Vec3 {
	return Vec3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
}

// RandomVec3In returns a vector with each component uniform in [min,max).
func RandomVec3In(rng *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*rng.Float64(),
		Y: min + span*rng.Float64(),
		Z: min + span*rng.Float64(),
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere.
// Candidates are rejection sampled from the cube; the lower bound on the
// squared length guards against normalizing a degenerate draw.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3In(rng, -1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Div(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk returns a uniform point on the z=0 unit disk.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
