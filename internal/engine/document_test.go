package engine

import (
	"bytes"
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brady131313/rtiow/internal/scene"
)

func sampleDocument() *scene.Document {
	return &scene.Document{
		Textures: []scene.Texture{
			{Name: "red", Type: scene.TextureSolid, Albedo: &scene.Color{R: 0.9, G: 0.1, B: 0.1}},
			{Name: "white", Type: scene.TextureSolid, Albedo: &scene.Color{R: 1, G: 1, B: 1}},
			{Name: "tiles", Type: scene.TextureChecker, Scale: 0.5, Even: "red", Odd: "white"},
		},
		Materials: []scene.Material{
			{Name: "tiles", Type: scene.MaterialLambertian, Texture: "tiles"},
			{Name: "glass", Type: scene.MaterialDielectric, RefractionIndex: 1.5},
		},
		Shapes: []scene.Shape{
			{
				Type:     scene.ShapeCircle,
				Radius:   1,
				Center:   &scene.Ray{Origin: scene.Vec3{Y: 1}},
				Material: "glass",
			},
			{
				Type:     scene.ShapeQuad,
				Q:        &scene.Vec3{X: -2, Z: -2},
				U:        &scene.Vec3{X: 4},
				V:        &scene.Vec3{Z: 4},
				Material: "tiles",
			},
		},
	}
}

func TestBuildWorldResolvesReferences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	world, err := BuildWorld(sampleDocument(), rng)
	require.NoError(t, err)
	require.Len(t, world.Objects(), 2)

	// The glass sphere sits at (0,1,0) with radius 1.
	r := NewRay(NewVec3(0, 1, -5), NewVec3(0, 0, 1))
	rec, ok := world.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 4.0, rec.T, eps)
	assert.Equal(t, "glass", rec.Mat.Name())

	// The checkered quad spans x,z in [-2,2] at y=0.
	r = NewRay(NewVec3(0.5, 3, -0.5), NewVec3(0, -1, 0))
	rec, ok = world.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 3.0, rec.T, eps)
	assert.Equal(t, "tiles", rec.Mat.Name())
}

func TestBuildWorldMovingSphere(t *testing.T) {
	doc := &scene.Document{
		Materials: []scene.Material{
			{Name: "steel", Type: scene.MaterialMetal, Albedo: &scene.Color{R: 0.8, G: 0.8, B: 0.8}},
		},
		Shapes: []scene.Shape{
			{
				Type:   scene.ShapeCircle,
				Radius: 0.2,
				Center: &scene.Ray{
					Origin:    scene.Vec3{},
					Direction: scene.Vec3{X: 1},
				},
				Material: "steel",
			},
		},
	}

	world, err := BuildWorld(doc, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	// At time 0.5 the sphere has drifted to x=0.5.
	r := NewRayWithTime(NewVec3(0.5, 0, -3), NewVec3(0, 0, 1), 0.5)
	rec, ok := world.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 2.8, rec.T, eps)
}

func TestBuildWorldReferentialIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	cases := []struct {
		name    string
		mutate  func(doc *scene.Document)
		wantErr string
	}{
		{
			"checker references an unknown texture",
			func(doc *scene.Document) { doc.Textures[2].Odd = "missing" },
			`references unknown texture "missing"`,
		},
		{
			"forward texture reference is rejected",
			func(doc *scene.Document) {
				doc.Textures[0], doc.Textures[2] = doc.Textures[2], doc.Textures[0]
			},
			"references unknown texture",
		},
		{
			"material references an unknown texture",
			func(doc *scene.Document) { doc.Materials[0].Texture = "nope" },
			`references unknown texture "nope"`,
		},
		{
			"shape references an unknown material",
			func(doc *scene.Document) { doc.Shapes[0].Material = "vapor" },
			`references unknown material "vapor"`,
		},
		{
			"solid texture without albedo",
			func(doc *scene.Document) { doc.Textures[0].Albedo = nil },
			"missing albedo",
		},
		{
			"unknown texture type",
			func(doc *scene.Document) { doc.Textures[0].Type = "velvet" },
			`unknown type "velvet"`,
		},
		{
			"unknown material type",
			func(doc *scene.Document) { doc.Materials[1].Type = "plasma" },
			`unknown type "plasma"`,
		},
		{
			"circle without center",
			func(doc *scene.Document) { doc.Shapes[0].Center = nil },
			"circle missing center",
		},
		{
			"quad without edges",
			func(doc *scene.Document) { doc.Shapes[1].U = nil },
			"quad missing corner or edge vectors",
		},
		{
			"unknown shape type",
			func(doc *scene.Document) { doc.Shapes[0].Type = "torus" },
			`unknown shape type "torus"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleDocument()
			tc.mutate(doc)
			_, err := BuildWorld(doc, rng)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestBuildWorldBVHNeedsBothChildren(t *testing.T) {
	doc := &scene.Document{
		Shapes: []scene.Shape{
			{Type: scene.ShapeBVH, Left: &scene.Shape{Type: scene.ShapeQuad}},
		},
	}
	_, err := BuildWorld(doc, rand.New(rand.NewSource(4)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bvh missing left or right child")
}

func TestDumpWorldDeduplicatesSharedResources(t *testing.T) {
	shared := NewLambertianTexture(NewCheckerTextureColors("floor", 0.32,
		NewVec3(0.2, 0.3, 0.1), NewVec3(0.9, 0.9, 0.9)))

	world := NewHittableList(
		NewSphere(NewVec3(0, -10, 0), 10, shared),
		NewSphere(NewVec3(0, 10, 0), 10, shared),
	)

	doc := DumpWorld(world)

	require.Len(t, doc.Textures, 3, "the checker plus its two solids")
	assert.Equal(t, "checker_floor_even", doc.Textures[0].Name)
	assert.Equal(t, "checker_floor_odd", doc.Textures[1].Name)
	assert.Equal(t, "floor", doc.Textures[2].Name)

	require.Len(t, doc.Materials, 1, "the shared material appears once")
	assert.Equal(t, "floor", doc.Materials[0].Name)

	require.Len(t, doc.Shapes, 2)
	assert.Equal(t, "floor", doc.Shapes[0].Material)
	assert.Equal(t, "floor", doc.Shapes[1].Material)
}

func TestDumpBuildRoundTrip(t *testing.T) {
	world := NewHittableList(
		NewBVH([]Hittable{
			NewSphere(NewVec3(0, 1, 0), 1, NewDielectric("glass", 1.5)),
			NewMovingSphere(NewVec3(2, 0.5, 0), NewVec3(2, 1, 0), 0.5,
				NewLambertian("mover", NewVec3(0.5, 0.2, 0.1))),
			NewSphere(NewVec3(-2, 1, 0), 1, NewMetal("steel", NewVec3(0.7, 0.6, 0.5), 0.2)),
		}),
		NewQuad(NewVec3(-5, 0, -5), NewVec3(10, 0, 0), NewVec3(0, 0, 10),
			NewLambertian("ground", NewVec3(0.5, 0.5, 0.5))),
	)

	first := DumpWorld(world)

	var buf bytes.Buffer
	require.NoError(t, scene.Write(&buf, first))

	var decoded scene.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	rebuilt, err := BuildWorld(&decoded, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	second := DumpWorld(rebuilt)
	assert.Equal(t, first, second, "dump, rebuild and dump again is stable")
}
