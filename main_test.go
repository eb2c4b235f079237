package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db    string
	media string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	return testEnv{
		db:    filepath.Join(dir, "showroom.db"),
		media: filepath.Join(dir, "media"),
	}
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--db", e.db, "--media-dir", e.media}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "showroom %s", strings.Join(args, " "))
	return out
}

// createdID returns the id column of an add command's output.
func createdID(t *testing.T, out string) string {
	t.Helper()
	id, _, ok := strings.Cut(strings.TrimSpace(out), "\t")
	require.True(t, ok, "unexpected output %q", out)
	return id
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for x := range 64 {
		for y := range 32 {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 59, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestCategoryCommands(t *testing.T) {
	env := newTestEnv(t)

	id := createdID(t, env.mustRun(t, "category", "add", "furniture", "Sofa Sets"))
	env.mustRun(t, "category", "add", "interiors", "Modular Kitchens")

	out := env.mustRun(t, "category", "list", "furniture")
	assert.Contains(t, out, "Sofa Sets")
	assert.Contains(t, out, "sofa-sets")
	assert.NotContains(t, out, "Modular Kitchens")

	env.mustRun(t, "category", "rename", id, "Lounge Sofas")
	out = env.mustRun(t, "category", "list", "furniture")
	assert.Contains(t, out, "lounge-sofas")

	env.mustRun(t, "category", "rm", id)
	out = env.mustRun(t, "category", "list", "furniture")
	assert.Contains(t, out, "No furniture categories yet.")
}

func TestCategoryCommands_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "category", "add", "garden", "Planters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to create category 'garden': unknown collection")

	_, err = env.run(t, "category", "rename", "missing", "Beds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = env.run(t, "category", "add", "furniture")
	assert.Error(t, err, "missing name argument")
}

func TestProductCommands(t *testing.T) {
	env := newTestEnv(t)
	catID := createdID(t, env.mustRun(t, "category", "add", "furniture", "Sofa Sets"))

	id := createdID(t, env.mustRun(t, "product", "add", catID, "Chesterfield",
		"--description", "Tufted leather", "--price", "85000"))
	env.mustRun(t, "product", "add", catID, "Sectional")

	out := env.mustRun(t, "product", "list", catID)
	assert.Contains(t, out, "Chesterfield\t₹85,000")
	assert.Contains(t, out, "Sectional\ton request")

	env.mustRun(t, "product", "update", id, "--price", "79000")
	out = env.mustRun(t, "product", "list", catID)
	assert.Contains(t, out, "Chesterfield\t₹79,000")

	env.mustRun(t, "product", "rm", id)
	out = env.mustRun(t, "product", "list", catID)
	assert.NotContains(t, out, "Chesterfield")

	_, err := env.run(t, "product", "list", "missing")
	assert.Error(t, err)
}

func TestProductCommands_Image(t *testing.T) {
	env := newTestEnv(t)
	catID := createdID(t, env.mustRun(t, "category", "add", "interiors", "Modular Kitchens"))

	src := filepath.Join(t.TempDir(), "kitchen.png")
	writePNG(t, src)

	env.mustRun(t, "product", "add", catID, "L-shaped Kitchen", "--image", src)

	out := env.mustRun(t, "product", "list", catID)
	assert.Contains(t, out, "file://"+filepath.Join(env.media, "interiors", "modular-kitchens"))

	notImage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("not an image"), 0o644))
	_, err := env.run(t, "product", "add", catID, "Island Kitchen", "--image", notImage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to store image")
}
