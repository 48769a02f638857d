package engine

import (
	"math"
	"math/rand"

	"github.com/brady131313/rtiow/internal/scene"
)

// ScatterRecord is a material's answer to an incoming ray: the color
// attenuation to apply and the ray to continue with.
type ScatterRecord struct {
	Attenuation Color
	Scattered   Ray
}

// Material decides how a ray interacts with a surface. Scatter reports
// false when the ray is absorbed. The set of implementations is fixed:
// Lambertian, Metal and Dielectric. Names exist purely for serialization;
// register adds the material (and any textures it holds) to the registry
// and returns the name.
type Material interface {
	Scatter(rIn Ray, rec HitRecord, rng *rand.Rand) (ScatterRecord, bool)
	Name() string
	register(reg *resourceRegistry) string
}

// Lambertian is a diffuse surface tinted by a texture. It has no name of
// its own; it answers with its texture's.
type Lambertian struct {
	tex Texture
}

func NewLambertian(name string, albedo Color) *Lambertian {
	return NewLambertianTexture(NewSolidColor(name, albedo))
}

func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{tex: tex}
}

func (l *Lambertian) Scatter(rIn Ray, rec HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	scatterDirection := rec.Normal.Add(RandomUnitVector(rng))

	// Catch degenerate scatter direction.
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return ScatterRecord{
		Attenuation: l.tex.Value(rec.U, rec.V, rec.P),
		Scattered:   NewRayWithTime(rec.P, scatterDirection, rIn.Time),
	}, true
}

func (l *Lambertian) Name() string { return l.tex.Name() }

func (l *Lambertian) register(reg *resourceRegistry) string {
	tex := l.tex.register(reg)
	name := l.Name()
	reg.registerMaterial(scene.Material{
		Name:    name,
		Type:    scene.MaterialLambertian,
		Texture: tex,
	})
	return name
}

// Metal reflects incoming rays, perturbed by a fuzz factor clamped to
// [0,1]. A perturbed ray that ends up under the surface is absorbed.
type Metal struct {
	name   string
	albedo Color
	fuzz   float64
}

func NewMetal(name string, albedo Color, fuzz float64) *Metal {
	return &Metal{
		name:   name,
		albedo: albedo,
		fuzz:   NewInterval(0, 1).Clamp(fuzz),
	}
}

func (m *Metal) Scatter(rIn Ray, rec HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	reflected := Reflect(rIn.Direction, rec.Normal)
	reflected = reflected.Unit().Add(RandomUnitVector(rng).Mul(m.fuzz))

	scattered := NewRayWithTime(rec.P, reflected, rIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{Attenuation: m.albedo, Scattered: scattered}, true
}

func (m *Metal) Name() string { return m.name }

func (m *Metal) register(reg *resourceRegistry) string {
	albedo := sceneColor(m.albedo)
	reg.registerMaterial(scene.Material{
		Name:   m.name,
		Type:   scene.MaterialMetal,
		Albedo: &albedo,
		Fuzz:   m.fuzz,
	})
	return m.name
}

// Dielectric is clear glass: it always scatters, choosing between
// reflection and refraction via Schlick's approximation, and never tints
// the ray.
type Dielectric struct {
	name string
	// Refractive index in vacuum or air, or the ratio of the material's
	// index over that of the enclosing medium.
	refractionIndex float64
}

func NewDielectric(name string, refractionIndex float64) *Dielectric {
	return &Dielectric{name: name, refractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rIn Ray, rec HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	ri := d.refractionIndex
	if rec.FrontFace {
		ri = 1 / d.refractionIndex
	}

	unitDirection := rIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Neg().Dot(rec.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1
	var direction Vec3
	if cannotRefract || reflectance(cosTheta, ri) > rng.Float64() {
		direction = Reflect(unitDirection, rec.Normal)
	} else {
		direction = Refract(unitDirection, rec.Normal, ri)
	}

	return ScatterRecord{
		Attenuation: NewVec3(1, 1, 1),
		Scattered:   NewRayWithTime(rec.P, direction, rIn.Time),
	}, true
}

func (d *Dielectric) Name() string { return d.name }

func (d *Dielectric) register(reg *resourceRegistry) string {
	reg.registerMaterial(scene.Material{
		Name:            d.name,
		Type:            scene.MaterialDielectric,
		RefractionIndex: d.refractionIndex,
	})
	return d.name
}

// reflectance is Schlick's approximation of Fresnel reflectance.
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
