package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "swatch.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestPut_StoresImageAndThumbnail(t *testing.T) {
	root := t.TempDir()
	s := New(root)
	src := writePNG(t, 960, 240)

	obj, err := s.Put("furniture", "sofa-sets", src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "furniture", "sofa-sets"), filepath.Dir(obj.Path))
	assert.True(t, strings.HasSuffix(obj.Path, ".png"))
	assert.True(t, strings.HasPrefix(obj.URL, "file://"))
	assert.True(t, strings.HasSuffix(obj.URL, filepath.Base(obj.Path)))

	f, err := os.Open(obj.ThumbPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, ThumbnailSize, cfg.Width)
	assert.Equal(t, ThumbnailSize/4, cfg.Height)

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	stored, err := os.ReadFile(obj.Path)
	require.NoError(t, err)
	assert.Equal(t, orig, stored)
}

func TestPut_RejectsNonImages(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o644))

	_, err := New(t.TempDir()).Put("interiors", "kitchens", src)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestPut_MissingFile(t *testing.T) {
	_, err := New(t.TempDir()).Put("interiors", "kitchens", "/does/not/exist.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPathPart(t *testing.T) {
	assert.Equal(t, "misc", pathPart(""))
	assert.Equal(t, "misc", pathPart(".."))
	assert.Equal(t, "a-b", pathPart("a/b"))
	assert.Equal(t, "kitchens", pathPart(" kitchens "))
}
