package engine

import (
	"github.com/brady131313/rtiow/internal/scene"
)

// HitRecord carries everything a material needs to scatter off an
// intersection. Records are ephemeral; intersection routines build one per
// hit and callers drop it after use.
type HitRecord struct {
	P         Point3
	Normal    Vec3
	Mat       Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients the stored normal against the incoming ray.
// outwardNormal must be unit length. A negative dot product means the ray
// arrived from outside, so the geometric normal already opposes it.
func (rec *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	rec.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can intersect. The set of implementations is
// fixed: Sphere, Quad, HittableList and BVH. The unexported encode method
// keeps the set closed and lets a world serialize itself back into a
// scene.Document.
type Hittable interface {
	Hit(r Ray, rayT Interval) (HitRecord, bool)
	BoundingBox() AABB
	encode(reg *resourceRegistry) scene.Shape
}

// HittableList is an ordered group of hittables, used both as the scene
// root and for generic grouping inside the shape tree. Build one with
// NewHittableList so the running bounding box starts out empty.
type HittableList struct {
	objects []Hittable
	bbox    AABB
}

func NewHittableList(objects ...Hittable) *HittableList {
	l := &HittableList{bbox: EmptyAABB}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

func (l *HittableList) Add(obj Hittable) {
	l.objects = append(l.objects, obj)
	l.bbox = AABBFromBoxes(l.bbox, obj.BoundingBox())
}

func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit scans every member, shrinking the valid interval to the closest hit
// found so far, so later members only win by being strictly nearer.
func (l *HittableList) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, obj := range l.objects {
		if rec, ok := obj.Hit(r, NewInterval(rayT.Min, closestSoFar)); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

func (l *HittableList) BoundingBox() AABB {
	return l.bbox
}

func (l *HittableList) encode(reg *resourceRegistry) scene.Shape {
	shapes := make([]scene.Shape, 0, len(l.objects))
	for _, obj := range l.objects {
		shapes = append(shapes, obj.encode(reg))
	}
	return scene.Shape{Type: scene.ShapeList, Shapes: shapes}
}
