package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaterial() Material {
	return NewLambertian("test", NewVec3(0.5, 0.5, 0.5))
}

func TestSetFaceNormal(t *testing.T) {
	outward := NewVec3(0, 0, 1)

	var rec HitRecord
	rec.SetFaceNormal(NewRay(Vec3{}, NewVec3(0, 0, -1)), outward)
	assert.True(t, rec.FrontFace)
	vec3Near(t, outward, rec.Normal, "outside arrival keeps the outward normal")

	rec.SetFaceNormal(NewRay(Vec3{}, NewVec3(0, 0, 1)), outward)
	assert.False(t, rec.FrontFace)
	vec3Near(t, outward.Neg(), rec.Normal, "inside arrival flips the normal")
}

func TestHittableListPicksNearest(t *testing.T) {
	list := NewHittableList(
		NewSphere(NewVec3(0, 0, -10), 1, testMaterial()),
		NewSphere(NewVec3(0, 0, -4), 1, testMaterial()),
		NewSphere(NewVec3(0, 0, -7), 1, testMaterial()),
	)

	rec, ok := list.Hit(NewRay(Vec3{}, NewVec3(0, 0, -1)), NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 3.0, rec.T, eps, "nearest sphere wins regardless of order")
}

func TestHittableListEmpty(t *testing.T) {
	list := NewHittableList()
	_, ok := list.Hit(NewRay(Vec3{}, NewVec3(0, 0, -1)), NewInterval(0.001, math.Inf(1)))
	assert.False(t, ok)
}

func TestHittableListBoundingBoxGrowsWithAdd(t *testing.T) {
	list := NewHittableList()
	assert.Equal(t, EmptyAABB, list.BoundingBox())

	list.Add(NewSphere(NewVec3(0, 0, 0), 1, testMaterial()))
	list.Add(NewSphere(NewVec3(5, 0, 0), 1, testMaterial()))

	box := list.BoundingBox()
	assert.InDelta(t, -1.0, box.X.Min, eps)
	assert.InDelta(t, 6.0, box.X.Max, eps)
}
