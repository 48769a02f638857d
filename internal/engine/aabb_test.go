package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABBHitAndMiss(t *testing.T) {
	box := AABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	through := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))
	if !box.Hit(through, NewInterval(0.001, math.Inf(1))) {
		t.Error("axis ray through the box should hit")
	}

	above := NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0))
	if box.Hit(above, NewInterval(0.001, math.Inf(1))) {
		t.Error("parallel ray above the box should miss")
	}

	behind := NewRay(NewVec3(5, 0, 0), NewVec3(1, 0, 0))
	if box.Hit(behind, NewInterval(0.001, math.Inf(1))) {
		t.Error("box behind the ray origin should miss")
	}

	diagonal := NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1))
	if !box.Hit(diagonal, NewInterval(0.001, math.Inf(1))) {
		t.Error("diagonal ray into the box should hit")
	}
}

func TestAABBHitRespectsInterval(t *testing.T) {
	box := AABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	r := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))

	if box.Hit(r, NewInterval(0.001, 3)) {
		t.Error("entry at t=4 lies outside [0.001,3]")
	}
	if !box.Hit(r, NewInterval(0.001, 5)) {
		t.Error("entry at t=4 lies inside [0.001,5]")
	}
}

func TestAABBFromPointsOrdersExtrema(t *testing.T) {
	box := AABBFromPoints(NewVec3(3, -1, 5), NewVec3(-2, 4, 0))
	assert.Equal(t, -2.0, box.X.Min)
	assert.Equal(t, 3.0, box.X.Max)
	assert.Equal(t, -1.0, box.Y.Min)
	assert.Equal(t, 4.0, box.Y.Max)
	assert.Equal(t, 0.0, box.Z.Min)
	assert.Equal(t, 5.0, box.Z.Max)
}

func TestAABBUnion(t *testing.T) {
	a := AABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := AABBFromPoints(NewVec3(2, -3, 0.5), NewVec3(3, 0, 0.75))
	u := AABBFromBoxes(a, b)

	assert.Equal(t, 0.0, u.X.Min)
	assert.Equal(t, 3.0, u.X.Max)
	assert.Equal(t, -3.0, u.Y.Min)
	assert.Equal(t, 1.0, u.Y.Max)

	// The empty box is the identity element.
	assert.Equal(t, a, AABBFromBoxes(EmptyAABB, a))
}

func TestAABBLongestAxis(t *testing.T) {
	assert.Equal(t, AxisX, AABBFromPoints(NewVec3(0, 0, 0), NewVec3(5, 1, 1)).LongestAxis())
	assert.Equal(t, AxisY, AABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 1)).LongestAxis())
	assert.Equal(t, AxisZ, AABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 5)).LongestAxis())
}

func TestAABBPadsDegenerateAxes(t *testing.T) {
	flat := AABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	if flat.Z.Size() < 0.00009 {
		t.Errorf("flat axis should be padded, size %g", flat.Z.Size())
	}

	// A ray aimed straight at the slab still registers a hit.
	r := NewRay(NewVec3(0.5, 0.5, 1), NewVec3(0, 0, -1))
	if !flat.Hit(r, NewInterval(0.001, math.Inf(1))) {
		t.Error("ray into the padded slab should hit")
	}
}
