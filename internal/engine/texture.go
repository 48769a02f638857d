package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/brady131313/rtiow/internal/scene"
)

// Texture maps a surface coordinate plus hit point to a color. The set of
// implementations is fixed: SolidColor, CheckerTexture, ImageTexture and
// NoiseTexture. Each carries a name used purely for serialization; register
// adds the texture (and any children, children first) to the registry and
// returns that name.
type Texture interface {
	Value(u, v float64, p Point3) Color
	Name() string
	register(reg *resourceRegistry) string
}

type SolidColor struct {
	name   string
	albedo Color
}

func NewSolidColor(name string, albedo Color) *SolidColor {
	return &SolidColor{name: name, albedo: albedo}
}

func NewSolidColorRGB(name string, red, green, blue float64) *SolidColor {
	return NewSolidColor(name, NewVec3(red, green, blue))
}

func (s *SolidColor) Value(u, v float64, p Point3) Color {
	return s.albedo
}

func (s *SolidColor) Name() string { return s.name }

func (s *SolidColor) register(reg *resourceRegistry) string {
	albedo := sceneColor(s.albedo)
	reg.registerTexture(scene.Texture{
		Name:   s.name,
		Type:   scene.TextureSolid,
		Albedo: &albedo,
	})
	return s.name
}

// CheckerTexture alternates two child textures on a 3D lattice with cells of
// the given scale.
type CheckerTexture struct {
	name     string
	invScale float64
	even     Texture
	odd      Texture
}

func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{
		name:     fmt.Sprintf("checker_%s_%s", even.Name(), odd.Name()),
		invScale: 1 / scale,
		even:     even,
		odd:      odd,
	}
}

func NewCheckerTextureColors(name string, scale float64, even, odd Color) *CheckerTexture {
	return &CheckerTexture{
		name:     name,
		invScale: 1 / scale,
		even:     NewSolidColor(fmt.Sprintf("checker_%s_even", name), even),
		odd:      NewSolidColor(fmt.Sprintf("checker_%s_odd", name), odd),
	}
}

func (c *CheckerTexture) Value(u, v float64, p Point3) Color {
	xInt := int(math.Floor(c.invScale * p.X))
	yInt := int(math.Floor(c.invScale * p.Y))
	zInt := int(math.Floor(c.invScale * p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.even.Value(u, v, p)
	}
	return c.odd.Value(u, v, p)
}

func (c *CheckerTexture) Name() string { return c.name }

func (c *CheckerTexture) register(reg *resourceRegistry) string {
	even := c.even.register(reg)
	odd := c.odd.register(reg)
	reg.registerTexture(scene.Texture{
		Name:  c.name,
		Type:  scene.TextureChecker,
		Scale: 1 / c.invScale,
		Even:  even,
		Odd:   odd,
	})
	return c.name
}

// NoiseTexture is a marble-like texture: a sine along z phase-shifted by
// Perlin turbulence. The permutation tables come from the given source, so
// two textures built from equally seeded sources sample identically.
type NoiseTexture struct {
	name  string
	noise *perlin
	scale float64
}

func NewNoiseTexture(scale float64, rng *rand.Rand) *NoiseTexture {
	return &NoiseTexture{
		name:  fmt.Sprintf("perlin_%g", scale),
		noise: newPerlin(rng),
		scale: scale,
	}
}

func (n *NoiseTexture) Value(u, v float64, p Point3) Color {
	return NewVec3(0.5, 0.5, 0.5).Mul(1 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
}

func (n *NoiseTexture) Name() string { return n.name }

func (n *NoiseTexture) register(reg *resourceRegistry) string {
	reg.registerTexture(scene.Texture{
		Name:  n.name,
		Type:  scene.TextureNoise,
		Scale: n.scale,
	})
	return n.name
}
