package engine

import (
	"math"

	"github.com/brady131313/rtiow/internal/scene"
)

// Quad is the parallelogram spanned by edge vectors u and v from corner q.
// The constructor precomputes the plane (unit normal plus offset d) and the
// basis vector w used to express hit points in (alpha, beta) plane
// coordinates with one dot product each.
type Quad struct {
	q      Point3
	u, v   Vec3
	w      Vec3
	mat    Material
	bbox   AABB
	normal Vec3
	d      float64
}

func NewQuad(q Point3, u, v Vec3, mat Material) *Quad {
	diag1 := AABBFromPoints(q, q.Add(u.Add(v)))
	diag2 := AABBFromPoints(q.Add(u), q.Add(v))

	n := u.Cross(v)
	normal := n.Unit()

	return &Quad{
		q:      q,
		u:      u,
		v:      v,
		w:      n.Div(n.Dot(n)),
		mat:    mat,
		bbox:   AABBFromBoxes(diag1, diag2),
		normal: normal,
		d:      normal.Dot(q),
	}
}

func (q *Quad) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)

	// No hit if the ray is parallel to the plane.
	if math.Abs(denom) < 1e-8 {
		return HitRecord{}, false
	}

	// No hit if the hit point parameter t is outside the ray interval.
	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Contains(t) {
		return HitRecord{}, false
	}

	// Express the hit point in plane coordinates and require it to fall
	// inside the unit square spanned by the edges.
	intersection := r.At(t)
	planarHit := intersection.Sub(q.q)
	alpha := q.w.Dot(planarHit.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(planarHit))

	unit := NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return HitRecord{}, false
	}

	rec := HitRecord{P: intersection, Mat: q.mat, T: t, U: alpha, V: beta}
	rec.SetFaceNormal(r, q.normal)
	return rec, true
}

func (q *Quad) BoundingBox() AABB {
	return q.bbox
}

func (q *Quad) encode(reg *resourceRegistry) scene.Shape {
	corner := sceneVec3(q.q)
	edgeU := sceneVec3(q.u)
	edgeV := sceneVec3(q.v)
	return scene.Shape{
		Type:     scene.ShapeQuad,
		Q:        &corner,
		U:        &edgeU,
		V:        &edgeV,
		Material: q.mat.register(reg),
	}
}
