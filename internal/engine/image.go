package engine

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/brady131313/rtiow/internal/scene"
)

// rtwImage is a decoded raster asset held as linear-space RGB, one Color per
// pixel in row-major order.
type rtwImage struct {
	width  int
	height int
	pixels []Color
}

func loadImage(path string) (*rtwImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]Color, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns channels in [0, 65535]. Image files carry
			// sRGB-encoded values; sampling wants linear space.
			pixels = append(pixels, NewVec3(
				srgbToLinear(float64(r)/65535.0),
				srgbToLinear(float64(g)/65535.0),
				srgbToLinear(float64(b)/65535.0),
			))
		}
	}

	return &rtwImage{width: width, height: height, pixels: pixels}, nil
}

// pixelAt clamps out-of-range coordinates to the border pixel.
func (im *rtwImage) pixelAt(x, y int) Color {
	x = min(max(x, 0), im.width-1)
	y = min(max(y, 0), im.height-1)
	return im.pixels[y*im.width+x]
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ImageTexture samples a raster asset by surface coordinates. Its name is
// the asset path, which is also what serialization stores.
type ImageTexture struct {
	path  string
	image *rtwImage
}

func NewImageTexture(path string) (*ImageTexture, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return &ImageTexture{path: path, image: img}, nil
}

// Value returns solid cyan when no image data is present, as an obvious
// debugging aid.
func (t *ImageTexture) Value(u, v float64, p Point3) Color {
	if t.image.height <= 0 {
		return NewVec3(0, 1, 1)
	}

	u = NewInterval(0, 1).Clamp(u)
	v = 1 - NewInterval(0, 1).Clamp(v) // image rows run top to bottom

	i := int(u * float64(t.image.width))
	j := int(v * float64(t.image.height))
	return t.image.pixelAt(i, j)
}

func (t *ImageTexture) Name() string { return t.path }

func (t *ImageTexture) register(reg *resourceRegistry) string {
	reg.registerTexture(scene.Texture{
		Name: t.path,
		Type: scene.TextureImage,
		Path: t.path,
	})
	return t.path
}
