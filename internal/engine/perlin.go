package engine

import (
	"math"
	"math/rand"
)

const perlinPointCount = 256

// perlin holds a fixed table of unit gradient vectors and one permutation
// per axis, generated once from the given source and reused for every
// sample afterwards.
type perlin struct {
	randvec [perlinPointCount]Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

func newPerlin(rng *rand.Rand) *perlin {
	p := &perlin{}
	for i := range p.randvec {
		p.randvec[i] = RandomVec3In(rng, -1, 1).Unit()
	}

	p.permX = perlinGeneratePerm(rng)
	p.permY = perlinGeneratePerm(rng)
	p.permZ = perlinGeneratePerm(rng)
	return p
}

// Noise returns gradient noise in [-1,1] for p. The &255 wrap keeps lattice
// lookups in range for negative coordinates too.
func (pl *perlin) Noise(p Point3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pl.permX[(i+di)&255] ^ pl.permY[(j+dj)&255] ^ pl.permZ[(k+dk)&255]
				c[di][dj][dk] = pl.randvec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums depth octaves of noise at doubling frequency and halving
// amplitude.
func (pl *perlin) Turbulence(p Point3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pl.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Mul(2)
	}

	return math.Abs(accum)
}

func perlinGeneratePerm(rng *rand.Rand) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}

	for i := perlinPointCount - 1; i >= 1; i-- {
		target := rng.Intn(i)
		p[i], p[target] = p[target], p[i]
	}

	return p
}

// perlinInterp fades u, v and w a second time on top of the smoothing done
// in Noise, then blends the eight corner gradients.
func perlinInterp(c [2][2][2]Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	accum := 0.0

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weightV := NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}

	return accum
}
