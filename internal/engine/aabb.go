package engine

import "math"

// AABB is an axis-aligned bounding box stored as one interval per axis.
// Every constructor pads degenerate axes to a minimum width so that slab
// tests against flat geometry (an axis-aligned quad, say) stay well behaved.
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains nothing and is the identity for AABBFromBoxes.
// Treat it as a constant.
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

func NewAABB(x, y, z Interval) AABB {
	return AABB{
		X: padToMinimums(x),
		Y: padToMinimums(y),
		Z: padToMinimums(z),
	}
}

// AABBFromPoints treats a and b as extrema of the box.
func AABBFromPoints(a, b Point3) AABB {
	return NewAABB(
		Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	)
}

// AABBFromBoxes returns the union of two boxes.
func AABBFromBoxes(box0, box1 AABB) AABB {
	return AABB{
		X: box0.X.Union(box1.X),
		Y: box0.Y.Union(box1.Y),
		Z: box0.Z.Union(box1.Z),
	}
}

func (b AABB) AxisInterval(axis Axis) Interval {
	switch axis {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	default:
		return b.Z
	}
}

// Hit runs the slab test: the valid-t interval is intersected with the
// ray's overlap of each axis slab and fails as soon as it empties.
func (b AABB) Hit(r Ray, rayT Interval) bool {
	for axis := AxisX; axis <= AxisZ; axis++ {
		ax := b.AxisInterval(axis)
		adinv := 1.0 / r.Direction.Component(axis)
		orig := r.Origin.Component(axis)

		t0 := (ax.Min - orig) * adinv
		t1 := (ax.Max - orig) * adinv
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis of greatest extent, preferring X, then Z,
// then Y when sizes tie.
func (b AABB) LongestAxis() Axis {
	if b.X.Size() > b.Y.Size() {
		if b.X.Size() > b.Z.Size() {
			return AxisX
		}
		return AxisZ
	}
	if b.Y.Size() > b.Z.Size() {
		return AxisY
	}
	return AxisZ
}

func padToMinimums(in Interval) Interval {
	const delta = 0.0001
	if in.Size() < delta {
		return in.Expand(delta)
	}
	return in
}
