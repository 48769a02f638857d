package engine

import (
	"math"

	"github.com/brady131313/rtiow/internal/scene"
)

// Sphere stores its center as a Ray: the sphere sits at center.At(0) at time
// zero and at center.At(1) at time one, which unifies static and linearly
// moving spheres. The bounding box covers both endpoints.
type Sphere struct {
	center Ray
	radius float64
	mat    Material
	bbox   AABB
}

func NewSphere(staticCenter Point3, radius float64, mat Material) *Sphere {
	radius = math.Max(radius, 0)

	rvec := NewVec3(radius, radius, radius)
	bbox := AABBFromPoints(staticCenter.Sub(rvec), staticCenter.Add(rvec))

	return &Sphere{
		center: NewRay(staticCenter, Vec3{}),
		radius: radius,
		mat:    mat,
		bbox:   bbox,
	}
}

func NewMovingSphere(center1, center2 Point3, radius float64, mat Material) *Sphere {
	radius = math.Max(radius, 0)
	center := NewRay(center1, center2.Sub(center1))

	rvec := NewVec3(radius, radius, radius)
	box1 := AABBFromPoints(center.At(0).Sub(rvec), center.At(0).Add(rvec))
	box2 := AABBFromPoints(center.At(1).Sub(rvec), center.At(1).Add(rvec))

	return &Sphere{
		center: center,
		radius: radius,
		mat:    mat,
		bbox:   AABBFromBoxes(box1, box2),
	}
}

func (s *Sphere) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	currentCenter := s.center.At(r.Time)
	oc := currentCenter.Sub(r.Origin)
	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtd := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range.
	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return HitRecord{}, false
		}
	}

	p := r.At(root)
	outwardNormal := p.Sub(currentCenter).Div(s.radius)
	u, v := sphereUV(outwardNormal)

	rec := HitRecord{P: p, Mat: s.mat, T: root, U: u, V: v}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

func (s *Sphere) BoundingBox() AABB {
	return s.bbox
}

func (s *Sphere) encode(reg *resourceRegistry) scene.Shape {
	return scene.Shape{
		Type:   scene.ShapeCircle,
		Radius: s.radius,
		Center: &scene.Ray{
			Origin:    sceneVec3(s.center.Origin),
			Direction: sceneVec3(s.center.Direction),
		},
		Material: s.mat.register(reg),
	}
}

// sphereUV maps a point on the unit sphere to texture coordinates: u is the
// angle around the y axis measured from x=-1, v the angle from y=-1 up to
// y=+1, both normalized to [0,1].
func sphereUV(p Point3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}
