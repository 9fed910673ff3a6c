// Package assetdir serves bundled static assets (country flags,
// country shapes, icons) from a directory tree:
//
//	<base>/flags/<country>.png
//	<base>/shapes/<country>_<variant>.png
//	<base>/icons/<icon>.png
//
// Country file names are the lowercased country name with spaces
// replaced by underscores.
package assetdir

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Store implements ports.AssetStore over a local asset directory.
// Loaded images are cached; the asset set is small and read-only.
type Store struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer

	mu    sync.Mutex
	cache map[string]image.Image
}

// New creates a new Store.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Store {
	return &Store{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
		cache:    make(map[string]image.Image),
	}
}

// Flag returns the flag image for a country name.
func (s *Store) Flag(country string) (image.Image, error) {
	return s.load(filepath.Join("flags", slug(country)+".png"))
}

// Shape returns the boundary-shape image for a country name in the
// requested color variant.
func (s *Store) Shape(country string, variant ports.ShapeVariant) (image.Image, error) {
	return s.load(filepath.Join("shapes", fmt.Sprintf("%s_%s.png", slug(country), variant)))
}

// Icon returns one of the fixed icon images.
func (s *Store) Icon(icon ports.Icon) (image.Image, error) {
	return s.load(filepath.Join("icons", string(icon)+".png"))
}

func (s *Store) load(rel string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.cache[rel]; ok {
		return img, nil
	}
	data, err := s.fs.ReadFile(filepath.Join(s.baseDir, rel))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", rel, err)
	}
	img, err := s.renderer.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", rel, err)
	}
	s.cache[rel] = img
	return img, nil
}

func slug(country string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(country)), " ", "_")
}

var _ ports.AssetStore = (*Store)(nil)
