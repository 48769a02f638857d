package main

import (
	"fmt"
	"math/rand"

	"github.com/brady131313/rtiow/internal/engine"
)

func buildScene(id string, rng *rand.Rand) (*engine.HittableList, error) {
	switch id {
	case "cover":
		return bookCover(rng), nil
	case "checkered_spheres":
		return checkeredSpheres(), nil
	case "earth":
		return earth()
	case "perlin_spheres":
		return perlinSpheres(rng), nil
	case "quads":
		return quads()
	default:
		return nil, fmt.Errorf("invalid scene id: %q", id)
	}
}

// bookCover is the random sphere field from the cover of the first book,
// wrapped in a BVH.
func bookCover(rng *rand.Rand) *engine.HittableList {
	world := engine.NewHittableList()

	checker := engine.NewCheckerTextureColors("checker", 0.32,
		engine.NewVec3(0.2, 0.3, 0.1), engine.NewVec3(0.9, 0.9, 0.9))
	world.Add(engine.NewSphere(engine.NewVec3(0, -1000, 0), 1000, engine.NewLambertianTexture(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := engine.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())

			if center.Sub(engine.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				name := fmt.Sprintf("diffuse_%d_%d", a, b)
				albedo := engine.RandomVec3(rng).MulVec(engine.RandomVec3(rng))
				center2 := center.Add(engine.NewVec3(0, 0.5*rng.Float64(), 0))
				world.Add(engine.NewMovingSphere(center, center2, 0.2, engine.NewLambertian(name, albedo)))
			case chooseMat < 0.95:
				name := fmt.Sprintf("metal_%d_%d", a, b)
				albedo := engine.RandomVec3In(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				world.Add(engine.NewSphere(center, 0.2, engine.NewMetal(name, albedo, fuzz)))
			default:
				name := fmt.Sprintf("glass_%d_%d", a, b)
				world.Add(engine.NewSphere(center, 0.2, engine.NewDielectric(name, 1.5)))
			}
		}
	}

	world.Add(engine.NewSphere(engine.NewVec3(0, 1, 0), 1, engine.NewDielectric("material_1", 1.5)))
	world.Add(engine.NewSphere(engine.NewVec3(-4, 1, 0), 1,
		engine.NewLambertian("material_2", engine.NewVec3(0.4, 0.2, 0.1))))
	world.Add(engine.NewSphere(engine.NewVec3(4, 1, 0), 1,
		engine.NewMetal("material_3", engine.NewVec3(0.7, 0.6, 0.5), 0)))

	return engine.NewHittableList(engine.NewBVH(world.Objects()))
}

func checkeredSpheres() *engine.HittableList {
	checker := engine.NewCheckerTextureColors("checker", 0.32,
		engine.NewVec3(0.2, 0.3, 0.1), engine.NewVec3(0.9, 0.9, 0.9))

	return engine.NewHittableList(
		engine.NewSphere(engine.NewVec3(0, -10, 0), 10, engine.NewLambertianTexture(checker)),
		engine.NewSphere(engine.NewVec3(0, 10, 0), 10, engine.NewLambertianTexture(checker)),
	)
}

func earth() (*engine.HittableList, error) {
	earthTexture, err := engine.NewImageTexture("textures/earthmap.jpg")
	if err != nil {
		return nil, err
	}

	globe := engine.NewSphere(engine.NewVec3(0, 0, 0), 2, engine.NewLambertianTexture(earthTexture))
	return engine.NewHittableList(globe), nil
}

func perlinSpheres(rng *rand.Rand) *engine.HittableList {
	pertext := engine.NewLambertianTexture(engine.NewNoiseTexture(4, rng))

	return engine.NewHittableList(
		engine.NewSphere(engine.NewVec3(0, -1000, 0), 1000, pertext),
		engine.NewSphere(engine.NewVec3(0, 2, 0), 2, pertext),
	)
}

func quads() (*engine.HittableList, error) {
	earthTexture, err := engine.NewImageTexture("textures/earthmap.jpg")
	if err != nil {
		return nil, err
	}
	earthSurface := engine.NewLambertianTexture(earthTexture)

	leftRed := engine.NewLambertian("left_red", engine.NewVec3(1.0, 0.2, 0.2))
	rightBlue := engine.NewLambertian("right_blue", engine.NewVec3(0.2, 0.2, 1.0))
	upperOrange := engine.NewLambertian("upper_orange", engine.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := engine.NewLambertian("lower_teal", engine.NewVec3(0.2, 0.8, 0.8))

	return engine.NewHittableList(
		engine.NewQuad(engine.NewVec3(-3, -2, 5), engine.NewVec3(0, 0, -4), engine.NewVec3(0, 4, 0), leftRed),
		engine.NewQuad(engine.NewVec3(-2, -2, 0), engine.NewVec3(4, 0, 0), engine.NewVec3(0, 4, 0), earthSurface),
		engine.NewQuad(engine.NewVec3(3, -2, 1), engine.NewVec3(0, 0, 4), engine.NewVec3(0, 4, 0), rightBlue),
		engine.NewQuad(engine.NewVec3(-2, 3, 1), engine.NewVec3(4, 0, 0), engine.NewVec3(0, 0, 4), upperOrange),
		engine.NewQuad(engine.NewVec3(-2, -3, 5), engine.NewVec3(4, 0, 0), engine.NewVec3(0, 0, -4), lowerTeal),
	), nil
}
