package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid_Coverage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"partial edge tiles", 100, 70, 32, 12},
		{"single tile when size is zero", 50, 40, 0, 1},
		{"tile larger than image", 10, 10, 64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}

			if len(covered) != tt.width*tt.height {
				t.Errorf("Expected %d covered pixels, got %d", tt.width*tt.height, len(covered))
			}
			for p, n := range covered {
				if n != 1 {
					t.Errorf("Pixel %v covered %d times", p, n)
				}
			}
		})
	}
}

func TestNewTile_SeededSampler(t *testing.T) {
	a := NewTile(3, image.Rect(0, 0, 8, 8), 42)
	b := NewTile(3, image.Rect(0, 0, 8, 8), 42)
	c := NewTile(4, image.Rect(8, 0, 16, 8), 42)

	va, vb, vc := a.Sampler.Get1D(), b.Sampler.Get1D(), c.Sampler.Get1D()
	if va != vb {
		t.Errorf("Expected identical streams for the same tile, got %f and %f", va, vb)
	}
	if va == vc {
		t.Errorf("Expected different streams for different tiles")
	}
}

func TestNewTileGrid_EmptyImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
	}{
		{"zero size, default tile", 0, 0, 0},
		{"zero width", 0, 10, 4},
		{"zero height", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 1); len(tiles) != 0 {
				t.Errorf("Expected no tiles, got %d", len(tiles))
			}
		})
	}
}
