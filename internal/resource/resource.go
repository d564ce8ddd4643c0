// Package resource loads the media the renderer consumes. Only
// textures exist today; the manager keeps room for sounds or models
// later.
package resource

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
)

const (
	texturePath = "tex"
	terrainFile = "terrain.png"

	// FallbackSize is the edge length of the generated placeholder atlas
	FallbackSize = 64
)

// Manager owns the loaded textures.
type Manager struct {
	terrain *image.RGBA
}

// LoadAll loads every texture from the resource directory. A missing
// or undecodable terrain atlas is replaced with a generated
// checkerboard so the viewer still comes up.
func LoadAll(dir string) *Manager {
	path := filepath.Join(dir, texturePath, terrainFile)

	terrain, err := loadRGBA(path)
	if err != nil {
		fmt.Printf("Warning: %v, using placeholder atlas\n", err)
		terrain = checkerboard(FallbackSize)
	}

	return &Manager{terrain: terrain}
}

// Terrain returns the terrain atlas image in RGBA layout, ready for
// GPU upload.
func (m *Manager) Terrain() *image.RGBA {
	return m.terrain
}

func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	return rgba, nil
}

// checkerboard generates a magenta/black placeholder texture.
func checkerboard(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	cell := size / 8
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}
