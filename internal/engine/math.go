package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec3 is a three component vector used for points, directions and colors
// alike. It is a plain value type; all operations return new values.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 and Color are aliases of Vec3. They carry no extra behavior and
// exist only to make signatures read naturally.
type (
	Point3 = Vec3
	Color  = Vec3
)

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
func (a Vec3) Mul(t float64) Vec3 {
	return Vec3{X: a.X * t, Y: a.Y * t, Z: a.Z * t}
}
func (a Vec3) Div(t float64) Vec3 { return a.Mul(1 / t) }
func (a Vec3) Neg() Vec3          { return Vec3{X: -a.X, Y: -a.Y, Z: -a.Z} }

// MulVec multiplies component-wise, e.g. attenuating one color by another.
func (a Vec3) MulVec(b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float64        { return math.Sqrt(a.LengthSquared()) }
func (a Vec3) LengthSquared() float64 { return a.X*a.X + a.Y*a.Y + a.Z*a.Z }

// Unit returns the vector scaled to length one.
func (a Vec3) Unit() Vec3 { return a.Div(a.Length()) }

// NearZero reports whether every component is close to zero.
func (a Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(a.X) < s && math.Abs(a.Y) < s && math.Abs(a.Z) < s
}

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Component returns the coordinate along the given axis.
func (a Vec3) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return a.X
	case AxisY:
		return a.Y
	default:
		return a.Z
	}
}

// Reflect mirrors v about the normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with normal n, where
// etaiOverEtat is the ratio of refractive indices across the boundary.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// ParseVec3 parses a vector given as "x,y,z".
func ParseVec3(s string) (Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("invalid vector %q: want x,y,z", s)
	}

	var c [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		c[i] = f
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Ray is a half line with an origin, a direction and a time in [0,1] used
// for motion blur. It is immutable after construction.
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func NewRayWithTime(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point reached after parameter t.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
