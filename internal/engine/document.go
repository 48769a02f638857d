package engine

import (
	"fmt"
	"math/rand"

	"github.com/brady131313/rtiow/internal/scene"
)

// BuildWorld resolves a scene document into a hittable world. Name
// references resolve against entries defined earlier in their table; a
// dangling reference fails the whole load and no partial world is returned.
// The random source seeds Perlin noise tables.
func BuildWorld(doc *scene.Document, rng *rand.Rand) (*HittableList, error) {
	textures := make(map[string]Texture, len(doc.Textures))
	for _, spec := range doc.Textures {
		tex, err := buildTexture(spec, textures, rng)
		if err != nil {
			return nil, err
		}
		textures[spec.Name] = tex
	}

	materials := make(map[string]Material, len(doc.Materials))
	for _, spec := range doc.Materials {
		mat, err := buildMaterial(spec, textures)
		if err != nil {
			return nil, err
		}
		materials[spec.Name] = mat
	}

	world := NewHittableList()
	for _, spec := range doc.Shapes {
		obj, err := buildShape(spec, materials)
		if err != nil {
			return nil, err
		}
		world.Add(obj)
	}

	return world, nil
}

// DumpWorld serializes a world back into a scene document. Shared textures
// and materials are registered once, keyed by name, no matter how many
// shapes reference them.
func DumpWorld(world *HittableList) *scene.Document {
	reg := newResourceRegistry()

	shapes := make([]scene.Shape, 0, len(world.Objects()))
	for _, obj := range world.Objects() {
		shapes = append(shapes, obj.encode(reg))
	}

	return &scene.Document{
		Textures:  reg.textures,
		Materials: reg.materials,
		Shapes:    shapes,
	}
}

func buildTexture(spec scene.Texture, textures map[string]Texture, rng *rand.Rand) (Texture, error) {
	switch spec.Type {
	case scene.TextureSolid:
		if spec.Albedo == nil {
			return nil, fmt.Errorf("solid texture %q missing albedo", spec.Name)
		}
		return NewSolidColor(spec.Name, colorFromScene(*spec.Albedo)), nil

	case scene.TextureChecker:
		even, ok := textures[spec.Even]
		if !ok {
			return nil, fmt.Errorf("checker texture %q references unknown texture %q", spec.Name, spec.Even)
		}
		odd, ok := textures[spec.Odd]
		if !ok {
			return nil, fmt.Errorf("checker texture %q references unknown texture %q", spec.Name, spec.Odd)
		}
		return NewCheckerTexture(spec.Scale, even, odd), nil

	case scene.TextureImage:
		return NewImageTexture(spec.Path)

	case scene.TextureNoise:
		return NewNoiseTexture(spec.Scale, rng), nil

	default:
		return nil, fmt.Errorf("texture %q has unknown type %q", spec.Name, spec.Type)
	}
}

func buildMaterial(spec scene.Material, textures map[string]Texture) (Material, error) {
	switch spec.Type {
	case scene.MaterialLambertian:
		tex, ok := textures[spec.Texture]
		if !ok {
			return nil, fmt.Errorf("material %q references unknown texture %q", spec.Name, spec.Texture)
		}
		return NewLambertianTexture(tex), nil

	case scene.MaterialMetal:
		if spec.Albedo == nil {
			return nil, fmt.Errorf("metal material %q missing albedo", spec.Name)
		}
		return NewMetal(spec.Name, colorFromScene(*spec.Albedo), spec.Fuzz), nil

	case scene.MaterialDielectric:
		return NewDielectric(spec.Name, spec.RefractionIndex), nil

	default:
		return nil, fmt.Errorf("material %q has unknown type %q", spec.Name, spec.Type)
	}
}

func buildShape(spec scene.Shape, materials map[string]Material) (Hittable, error) {
	switch spec.Type {
	case scene.ShapeCircle:
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("circle references unknown material %q", spec.Material)
		}
		if spec.Center == nil {
			return nil, fmt.Errorf("circle missing center")
		}
		origin := vec3FromScene(spec.Center.Origin)
		direction := vec3FromScene(spec.Center.Direction)
		return NewMovingSphere(origin, origin.Add(direction), spec.Radius, mat), nil

	case scene.ShapeQuad:
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("quad references unknown material %q", spec.Material)
		}
		if spec.Q == nil || spec.U == nil || spec.V == nil {
			return nil, fmt.Errorf("quad missing corner or edge vectors")
		}
		return NewQuad(vec3FromScene(*spec.Q), vec3FromScene(*spec.U), vec3FromScene(*spec.V), mat), nil

	case scene.ShapeList:
		list := NewHittableList()
		for _, child := range spec.Shapes {
			obj, err := buildShape(child, materials)
			if err != nil {
				return nil, err
			}
			list.Add(obj)
		}
		return list, nil

	case scene.ShapeBVH:
		if spec.Left == nil || spec.Right == nil {
			return nil, fmt.Errorf("bvh missing left or right child")
		}
		left, err := buildShape(*spec.Left, materials)
		if err != nil {
			return nil, err
		}
		right, err := buildShape(*spec.Right, materials)
		if err != nil {
			return nil, err
		}
		return NewBVH([]Hittable{left, right}), nil

	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}
}

// resourceRegistry accumulates the texture and material tables during a
// dump, suppressing duplicate registrations of the same name so shared
// resources appear exactly once, in first-registration order.
type resourceRegistry struct {
	textures     []scene.Texture
	materials    []scene.Material
	textureSeen  map[string]bool
	materialSeen map[string]bool
}

func newResourceRegistry() *resourceRegistry {
	return &resourceRegistry{
		textureSeen:  make(map[string]bool),
		materialSeen: make(map[string]bool),
	}
}

func (reg *resourceRegistry) registerTexture(spec scene.Texture) {
	if reg.textureSeen[spec.Name] {
		return
	}
	reg.textureSeen[spec.Name] = true
	reg.textures = append(reg.textures, spec)
}

func (reg *resourceRegistry) registerMaterial(spec scene.Material) {
	if reg.materialSeen[spec.Name] {
		return
	}
	reg.materialSeen[spec.Name] = true
	reg.materials = append(reg.materials, spec)
}

func sceneVec3(v Vec3) scene.Vec3 { return scene.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func vec3FromScene(v scene.Vec3) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func sceneColor(c Color) scene.Color { return scene.Color{R: c.X, G: c.Y, B: c.Z} }

func colorFromScene(c scene.Color) Color { return Vec3{X: c.R, Y: c.G, Z: c.B} }
