// Package media stores product images and their thumbnails on disk.
package media

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// ThumbnailSize bounds both sides of a generated thumbnail.
const ThumbnailSize = 480

var ErrUnsupportedImage = errors.New("unsupported image")

// Object describes a stored image.
type Object struct {
	Path      string
	ThumbPath string
	URL       string
}

// Store writes images under root/<collection>/<category>/.
type Store struct {
	root string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the directory images are stored under.
func (s *Store) Root() string {
	return s.root
}

// Put copies the image at src into the store and writes a thumbnail next to
// it. The returned URL points at the full-size copy.
func (s *Store) Put(collection, category, src string) (Object, error) {
	f, err := os.Open(src)
	if err != nil {
		return Object{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Object{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, filepath.Base(src))
	}
	ext, err := extension(format)
	if err != nil {
		return Object{}, err
	}

	dir := filepath.Join(s.root, pathPart(collection), pathPart(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, err
	}

	name := uuid.NewString()
	obj := Object{
		Path:      filepath.Join(dir, name+ext),
		ThumbPath: filepath.Join(dir, name+".thumb"+ext),
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Object{}, err
	}
	if err := copyFile(f, obj.Path); err != nil {
		return Object{}, err
	}

	thumb := resize.Thumbnail(ThumbnailSize, ThumbnailSize, img, resize.Lanczos3)
	if err := writeImage(obj.ThumbPath, format, thumb); err != nil {
		os.Remove(obj.Path)
		return Object{}, err
	}

	abs, err := filepath.Abs(obj.Path)
	if err != nil {
		return Object{}, err
	}
	obj.URL = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	return obj, nil
}

func extension(format string) (string, error) {
	switch format {
	case "jpeg":
		return ".jpg", nil
	case "png":
		return ".png", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
}

func copyFile(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeImage(path, format string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if format == "png" {
		err = png.Encode(out, img)
	} else {
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// pathPart keeps a caller-supplied name from escaping its directory.
func pathPart(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, string(filepath.Separator), "-")
	s = strings.ReplaceAll(s, "/", "-")
	if s == "" || s == "." || s == ".." {
		return "misc"
	}
	return s
}
