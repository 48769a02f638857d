package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereHitFrontFace(t *testing.T) {
	s := NewSphere(NewVec3(0, 0, -2), 1, testMaterial())
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))

	rec, ok := s.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 1.0, rec.T, eps)
	vec3Near(t, NewVec3(0, 0, -1), rec.P, "hit point")
	vec3Near(t, NewVec3(0, 0, 1), rec.Normal, "normal faces the ray")
	assert.True(t, rec.FrontFace)
}

func TestSphereHitFromInside(t *testing.T) {
	s := NewSphere(NewVec3(0, 0, 0), 2, testMaterial())
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))

	rec, ok := s.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 2.0, rec.T, eps)
	assert.False(t, rec.FrontFace)
	vec3Near(t, NewVec3(0, 0, 1), rec.Normal, "normal flipped back against the ray")
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(NewVec3(0, 0, -2), 1, testMaterial())
	r := NewRay(NewVec3(0, 2, 0), NewVec3(0, 0, -1))

	_, ok := s.Hit(r, NewInterval(0.001, math.Inf(1)))
	assert.False(t, ok)
}

func TestSphereHitRespectsInterval(t *testing.T) {
	s := NewSphere(NewVec3(0, 0, -2), 1, testMaterial())
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))

	// Both roots (t=1 and t=3) fall outside [0.001, 0.5].
	_, ok := s.Hit(r, NewInterval(0.001, 0.5))
	assert.False(t, ok)

	// When the near root is excluded the far root wins.
	rec, ok := s.Hit(r, NewInterval(2, 4))
	require.True(t, ok)
	assert.InDelta(t, 3.0, rec.T, eps)
}

func TestSphereNegativeRadiusClampsToZero(t *testing.T) {
	s := NewSphere(NewVec3(0, 0, -2), -1, testMaterial())

	// Without the clamp this ray would intersect a radius-one sphere.
	r := NewRay(NewVec3(0, 0.5, 0), NewVec3(0, 0, -1))
	_, ok := s.Hit(r, NewInterval(0.001, math.Inf(1)))
	assert.False(t, ok)
}

func TestMovingSphereFollowsCenter(t *testing.T) {
	s := NewMovingSphere(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 0.2, testMaterial())

	// At time 0.5 the center sits at x=0.5.
	r := NewRayWithTime(NewVec3(0.5, 0, -3), NewVec3(0, 0, 1), 0.5)
	rec, ok := s.Hit(r, NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 2.8, rec.T, eps)
	vec3Near(t, NewVec3(0, 0, -1), rec.Normal, "front normal at time 0.5")

	// The same ray at time 0 misses: the sphere is still at the origin.
	r0 := NewRayWithTime(NewVec3(0.5, 0, -3), NewVec3(0, 0, 1), 0)
	_, ok = s.Hit(r0, NewInterval(0.001, math.Inf(1)))
	assert.False(t, ok)
}

func TestMovingSphereBoundingBoxCoversPath(t *testing.T) {
	s := NewMovingSphere(NewVec3(0, 0, 0), NewVec3(3, 0, 0), 1, testMaterial())
	box := s.BoundingBox()

	assert.InDelta(t, -1.0, box.X.Min, eps)
	assert.InDelta(t, 4.0, box.X.Max, eps)
	assert.InDelta(t, -1.0, box.Y.Min, eps)
	assert.InDelta(t, 1.0, box.Y.Max, eps)
}

func TestSphereUV(t *testing.T) {
	cases := []struct {
		p    Point3
		u, v float64
	}{
		{NewVec3(1, 0, 0), 0.5, 0.5},
		{NewVec3(0, 1, 0), 0.5, 1.0},
		{NewVec3(0, -1, 0), 0.5, 0.0},
		{NewVec3(0, 0, 1), 0.25, 0.5},
		{NewVec3(0, 0, -1), 0.75, 0.5},
	}
	for _, tc := range cases {
		u, v := sphereUV(tc.p)
		if math.Abs(u-tc.u) > eps || math.Abs(v-tc.v) > eps {
			t.Errorf("uv(%v): want (%g, %g), got (%g, %g)", tc.p, tc.u, tc.v, u, v)
		}
	}
}
