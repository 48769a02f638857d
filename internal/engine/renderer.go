package engine

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// ProgressTracker observes a render. Init is called once with the total
// number of work units, then Tick once per completed unit with the running
// count, from arbitrary worker goroutines. Implementations must tolerate
// concurrent Tick calls.
type ProgressTracker interface {
	Init(total int)
	Tick(completed int)
}

// NopTracker discards all progress.
type NopTracker struct{}

func (NopTracker) Init(total int)     {}
func (NopTracker) Tick(completed int) {}

// Framebuffer is a fixed-size row-major pixel buffer holding linear,
// sample-averaged colors. Workers fill disjoint rows concurrently; output
// is emitted in row-major order afterwards, so the stream never depends on
// scheduling.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

func (f *Framebuffer) At(x, y int) Color { return f.pixels[y*f.width+x] }

func (f *Framebuffer) set(x, y int, c Color) { f.pixels[y*f.width+x] = c }

// Render traces the world into a fresh framebuffer, one image row per work
// unit, across runtime.NumCPU() workers. Each row gets its own random
// source seeded with the camera seed plus the row index, so a fixed seed
// reproduces the image no matter how rows are scheduled. A nil tracker is
// allowed.
func (c *Camera) Render(world Hittable, tracker ProgressTracker) *Framebuffer {
	if tracker == nil {
		tracker = NopTracker{}
	}

	fb := NewFramebuffer(c.imageWidth, c.imageHeight)
	tracker.Init(c.imageHeight)

	rows := make(chan int, c.imageHeight)
	for j := 0; j < c.imageHeight; j++ {
		rows <- j
	}
	close(rows)

	var completed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				rng := rand.New(rand.NewSource(c.seed + int64(j)))
				c.renderRow(j, world, fb, rng)
				tracker.Tick(int(completed.Add(1)))
			}
		}()
	}
	wg.Wait()

	return fb
}

func (c *Camera) renderRow(j int, world Hittable, fb *Framebuffer, rng *rand.Rand) {
	for i := 0; i < c.imageWidth; i++ {
		pixelColor := Vec3{}
		for sample := 0; sample < c.samplesPerPixel; sample++ {
			r := c.getRay(i, j, rng)
			pixelColor = pixelColor.Add(c.rayColor(r, c.maxDepth, world, rng))
		}
		fb.set(i, j, pixelColor.Mul(c.pixelSamplesScale))
	}
}

// WritePPM streams the buffer as plain-text P3: a magic line, the
// dimensions, the 255 channel maximum, then one gamma-corrected pixel per
// line in row-major order.
func (f *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.width, f.height); err != nil {
		return err
	}

	for _, pixel := range f.pixels {
		r, g, b := quantize(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Image converts the buffer into an 8-bit RGBA image using the same gamma
// and quantization as the PPM stream.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b := quantize(f.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// intensity is the clamp range before 8-bit conversion; the 0.999 top keeps
// a full 1.0 channel at 255 instead of overflowing to 256.
var intensity = NewInterval(0, 0.999)

func quantize(c Color) (r, g, b int) {
	r = int(256 * intensity.Clamp(linearToGamma(c.X)))
	g = int(256 * intensity.Clamp(linearToGamma(c.Y)))
	b = int(256 * intensity.Clamp(linearToGamma(c.Z)))
	return r, g, b
}

func linearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}
