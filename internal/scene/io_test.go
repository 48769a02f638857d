package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	return &Document{
		Textures: []Texture{
			{Name: "gray", Type: TextureSolid, Albedo: &Color{R: 0.5, G: 0.5, B: 0.5}},
		},
		Materials: []Material{
			{Name: "gray", Type: MaterialLambertian, Texture: "gray"},
		},
		Shapes: []Shape{
			{
				Type:     ShapeCircle,
				Radius:   2,
				Center:   &Ray{Origin: Vec3{Y: 1}},
				Material: "gray",
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	doc := testDocument()

	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open scene")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"textures": [`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode scene")
}

func TestWriteIndentsAndOmitsUnsetFields(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, testDocument()))

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"textures\""), "top-level keys are indented")
	assert.True(t, strings.HasSuffix(out, "}\n"), "encoder terminates with a newline")
	assert.NotContains(t, out, `"scale"`, "unset variant fields are omitted")
	assert.NotContains(t, out, `"q"`, "sphere entries carry no quad fields")
}
