package engine

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStripPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "strip.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestImageTextureSamplesPixels(t *testing.T) {
	path := writeStripPNG(t)

	tex, err := NewImageTexture(path)
	require.NoError(t, err)
	assert.Equal(t, path, tex.Name())

	left := tex.Value(0.1, 0.5, Vec3{})
	right := tex.Value(0.9, 0.5, Vec3{})
	vec3Near(t, NewVec3(1, 0, 0), left, "left pixel is red")
	vec3Near(t, NewVec3(0, 1, 0), right, "right pixel is green")
}

func TestImageTextureClampsCoordinates(t *testing.T) {
	tex, err := NewImageTexture(writeStripPNG(t))
	require.NoError(t, err)

	vec3Near(t, NewVec3(1, 0, 0), tex.Value(-3, 0.5, Vec3{}), "u below zero clamps left")
	vec3Near(t, NewVec3(0, 1, 0), tex.Value(7, 0.5, Vec3{}), "u above one clamps right")
}

func TestImageTextureMissingFile(t *testing.T) {
	_, err := NewImageTexture("no/such/file.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open image")
}

func TestImageTextureRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := NewImageTexture(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}
