// Package scene defines the on-disk scene description: three ordered tables
// of named textures, named materials, and a shape tree. Entries reference
// earlier entries by name; the engine package resolves the references when it
// builds a world from a Document.
package scene

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Color is an RGB color in linear space.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Ray describes a motion path: a shape sits at Origin at time 0 and at
// Origin plus Direction at time 1. A zero Direction means a static shape.
type Ray struct {
	Origin    Vec3 `json:"origin"`
	Direction Vec3 `json:"direction"`
}

// TextureType enumerates supported texture kinds.
type TextureType string

const (
	TextureSolid   TextureType = "solid"
	TextureChecker TextureType = "checker"
	TextureImage   TextureType = "image"
	TextureNoise   TextureType = "noise"
)

// Texture is one named entry in the document's texture table. Only the
// fields for its Type are meaningful; the rest stay zero and are omitted
// from the JSON encoding.
type Texture struct {
	Name string      `json:"name"`
	Type TextureType `json:"type"`

	Albedo *Color  `json:"albedo,omitempty"` // solid
	Scale  float64 `json:"scale,omitempty"`  // checker, noise
	Even   string  `json:"even,omitempty"`   // checker: name of an earlier texture
	Odd    string  `json:"odd,omitempty"`    // checker: name of an earlier texture
	Path   string  `json:"path,omitempty"`   // image
}

// MaterialType enumerates supported material kinds.
type MaterialType string

const (
	MaterialLambertian MaterialType = "lambertian"
	MaterialMetal      MaterialType = "metal"
	MaterialDielectric MaterialType = "dielectric"
)

// Material is one named entry in the document's material table.
type Material struct {
	Name string       `json:"name"`
	Type MaterialType `json:"type"`

	Texture         string  `json:"texture,omitempty"`          // lambertian: name of a texture
	Albedo          *Color  `json:"albedo,omitempty"`           // metal
	Fuzz            float64 `json:"fuzz,omitempty"`             // metal
	RefractionIndex float64 `json:"refraction_index,omitempty"` // dielectric
}

// ShapeType enumerates supported shape-tree nodes.
type ShapeType string

const (
	ShapeCircle ShapeType = "circle"
	ShapeQuad   ShapeType = "quad"
	ShapeList   ShapeType = "list"
	ShapeBVH    ShapeType = "bvh"
)

// Shape is a node of the document's shape tree. Circles carry their center
// as a motion Ray so static and moving spheres share one representation.
type Shape struct {
	Type ShapeType `json:"type"`

	Radius   float64 `json:"radius,omitempty"`   // circle
	Center   *Ray    `json:"center,omitempty"`   // circle
	Material string  `json:"material,omitempty"` // circle, quad: name of a material

	Q *Vec3 `json:"q,omitempty"` // quad corner
	U *Vec3 `json:"u,omitempty"` // quad edge
	V *Vec3 `json:"v,omitempty"` // quad edge

	Shapes []Shape `json:"shapes,omitempty"` // list

	Left  *Shape `json:"left,omitempty"`  // bvh
	Right *Shape `json:"right,omitempty"` // bvh
}

// Document is a complete scene description. The tables are ordered: a
// checker texture may only reference textures defined before it, a material
// may only reference textures already in the table, and a shape may only
// reference materials already in the table.
type Document struct {
	Textures  []Texture  `json:"textures"`
	Materials []Material `json:"materials"`
	Shapes    []Shape    `json:"shapes"`
}
