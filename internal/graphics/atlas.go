package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"terravox/internal/meshing"
)

// LoadAtlas loads the terrain texture atlas from a file and normalizes
// it to the atlas resolution the mesher computes tile coordinates for.
func LoadAtlas(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas file: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas image: %v", err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, meshing.AtlasSize, meshing.AtlasSize))
	// Nearest keeps tile edges crisp when resampling pixel art.
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	return rgba, nil
}

// FallbackAtlas builds a flat-colored atlas so the renderer can run
// without any asset files on disk. Each block face tile gets a
// distinct solid color.
func FallbackAtlas() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, meshing.AtlasSize, meshing.AtlasSize))

	tiles := []struct {
		col, row int
		c        color.RGBA
	}{
		{0, 0, color.RGBA{86, 152, 63, 255}},   // grass top
		{1, 0, color.RGBA{128, 128, 128, 255}}, // stone
		{2, 0, color.RGBA{134, 96, 67, 255}},   // dirt
		{3, 0, color.RGBA{110, 120, 70, 255}},  // grass side
	}

	for _, t := range tiles {
		x0 := t.col * meshing.TileSize
		y0 := t.row * meshing.TileSize
		for y := y0; y < y0+meshing.TileSize; y++ {
			for x := x0; x < x0+meshing.TileSize; x++ {
				rgba.SetRGBA(x, y, t.c)
			}
		}
	}

	return rgba
}

// LoadAtlasOrFallback tries the configured path first and falls back
// to the built-in atlas when the file is missing or unreadable.
func LoadAtlasOrFallback(path string) (*image.RGBA, error) {
	if path == "" {
		return FallbackAtlas(), nil
	}
	rgba, err := LoadAtlas(path)
	if err != nil {
		return FallbackAtlas(), err
	}
	return rgba, nil
}
