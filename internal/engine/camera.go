package engine

import (
	"math"
	"math/rand"
	"time"
)

// CameraConfig is everything a Camera derives from. The zero value is not
// useful; start from DefaultCameraConfig and override.
type CameraConfig struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int

	// VFov is the vertical view angle in degrees.
	VFov     float64
	LookFrom Point3
	LookAt   Point3
	VUp      Vec3

	// DefocusAngle is the variation angle of rays through each pixel;
	// FocusDist is the distance from LookFrom to the plane of perfect
	// focus.
	DefocusAngle float64
	FocusDist    float64

	// Seed drives all sampling. Zero means seed from the clock.
	Seed int64
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        NewVec3(0, 0, 0),
		LookAt:          NewVec3(0, 0, -1),
		VUp:             NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Camera holds the derived, immutable per-render state. Build one with
// NewCamera; rebuilding is the only way to change parameters.
type Camera struct {
	imageWidth        int
	imageHeight       int
	samplesPerPixel   int
	pixelSamplesScale float64
	maxDepth          int
	center            Point3
	pixel00Loc        Point3
	pixelDeltaU       Vec3
	pixelDeltaV       Vec3
	defocusAngle      float64
	defocusDiskU      Vec3
	defocusDiskV      Vec3
	seed              int64
}

func NewCamera(cfg CameraConfig) *Camera {
	// Image height follows from width and aspect ratio, bounded below by 1.
	imageHeight := max(int(float64(cfg.ImageWidth)/cfg.AspectRatio), 1)

	center := cfg.LookFrom

	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	// The effective aspect ratio is width over the rounded height, not the
	// configured ratio.
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(imageHeight))

	// Orthonormal camera basis.
	w := cfg.LookFrom.Sub(cfg.LookAt).Unit()
	u := cfg.VUp.Cross(w).Unit()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges.
	viewportU := u.Mul(viewportWidth)
	viewportV := v.Neg().Mul(viewportHeight)

	pixelDeltaU := viewportU.Div(float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Div(float64(imageHeight))

	viewportUpperLeft := center.
		Sub(w.Mul(cfg.FocusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(degreesToRadians(cfg.DefocusAngle/2))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Camera{
		imageWidth:        cfg.ImageWidth,
		imageHeight:       imageHeight,
		samplesPerPixel:   cfg.SamplesPerPixel,
		pixelSamplesScale: 1 / float64(cfg.SamplesPerPixel),
		maxDepth:          cfg.MaxDepth,
		center:            center,
		pixel00Loc:        pixel00Loc,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		defocusAngle:      cfg.DefocusAngle,
		defocusDiskU:      u.Mul(defocusRadius),
		defocusDiskV:      v.Mul(defocusRadius),
		seed:              seed,
	}
}

func (c *Camera) ImageWidth() int  { return c.imageWidth }
func (c *Camera) ImageHeight() int { return c.imageHeight }

// getRay builds a camera ray through a jittered sample around pixel (i, j),
// originating on the defocus disk when one is configured, at a random time
// in [0,1) for motion blur.
func (c *Camera) getRay(i, j int, rng *rand.Rand) Ray {
	offset := sampleSquare(rng)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Mul(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Mul(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.defocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(rng)
	}

	return NewRayWithTime(rayOrigin, pixelSample.Sub(rayOrigin), rng.Float64())
}

func (c *Camera) defocusDiskSample(rng *rand.Rand) Point3 {
	p := RandomInUnitDisk(rng)
	return c.center.Add(c.defocusDiskU.Mul(p.X)).Add(c.defocusDiskV.Mul(p.Y))
}

// sampleSquare returns the vector to a random point in the
// [-0.5,-0.5]..[+0.5,+0.5] unit square.
func sampleSquare(rng *rand.Rand) Vec3 {
	return NewVec3(rng.Float64()-0.5, rng.Float64()-0.5, 0)
}

func (c *Camera) rayColor(r Ray, depth int, world Hittable, rng *rand.Rand) Color {
	// Past the bounce limit no more light is gathered.
	if depth <= 0 {
		return Vec3{}
	}

	// The 0.001 lower bound skips self-intersections right at the surface.
	if rec, ok := world.Hit(r, NewInterval(0.001, math.Inf(1))); ok {
		scatter, ok := rec.Mat.Scatter(r, rec, rng)
		if !ok {
			return Vec3{}
		}
		return scatter.Attenuation.MulVec(c.rayColor(scatter.Scattered, depth-1, world, rng))
	}

	// No hit: blend white down to sky blue by ray height.
	unitDirection := r.Direction.Unit()
	a := 0.5 * (unitDirection.Y + 1)

	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1)
	return white.Mul(1 - a).Add(blue.Mul(a))
}
