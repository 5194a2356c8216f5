package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// TileMap is an immutable row-major grid of terrain codes.
// Cells are stored in row-major order: index = row*W + col.
type TileMap struct {
	w       int
	h       int
	codes   []uint8
	mirages bool // When false, mirage cells read as walls
}

// NewTileMap creates a tile map from raw codes. The slice is copied.
// Codes outside the known set are kept as-is so the map round-trips,
// but they read as walls.
func NewTileMap(w, h int, codes []uint8) (*TileMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("tilemap: invalid size %dx%d", w, h)
	}
	if len(codes) != w*h {
		return nil, fmt.Errorf("tilemap: have %d codes, expected %d for %dx%d", len(codes), w*h, w, h)
	}
	c := make([]uint8, len(codes))
	copy(c, codes)
	return &TileMap{w: w, h: h, codes: c, mirages: true}, nil
}

// MustTileMap is like NewTileMap but panics on error.
// Intended for built-in maps and tests.
func MustTileMap(w, h int, codes []uint8) *TileMap {
	m, err := NewTileMap(w, h, codes)
	if err != nil {
		panic(err)
	}
	return m
}

// WithoutMirages returns a view of the same grid in which mirage cells
// read as walls. The classic variant has no illusions.
func (m *TileMap) WithoutMirages() *TileMap {
	return &TileMap{w: m.w, h: m.h, codes: m.codes, mirages: false}
}

// Width returns the number of columns.
func (m *TileMap) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *TileMap) Height() int {
	return m.h
}

// Code returns the raw code at (col, row), or CodeWall out of bounds.
func (m *TileMap) Code(col, row int) uint8 {
	if col < 0 || col >= m.w || row < 0 || row >= m.h {
		return CodeWall
	}
	return m.codes[row*m.w+col]
}

// Codes returns a copy of the raw row-major codes.
func (m *TileMap) Codes() []uint8 {
	c := make([]uint8, len(m.codes))
	copy(c, m.codes)
	return c
}

// At returns the terrain of the cell (col, row).
func (m *TileMap) At(col, row int) Terrain {
	t := TerrainFromCode(m.Code(col, row))
	if t == TerrainMirage && !m.mirages {
		return TerrainWall
	}
	return t
}

// Read returns the terrain under the continuous point (x, y).
// Both coordinates are floored to cell indices. Anything outside the grid,
// including NaN and infinities, reads as a wall.
func (m *TileMap) Read(x, y float32) Terrain {
	fx := math32.Floor(x)
	fy := math32.Floor(y)
	if !(fx >= 0 && fx < float32(m.w)) || !(fy >= 0 && fy < float32(m.h)) {
		return TerrainWall
	}
	return m.At(int(fx), int(fy))
}

// Count returns how many cells have terrain t.
func (m *TileMap) Count(t Terrain) int {
	n := 0
	for row := 0; row < m.h; row++ {
		for col := 0; col < m.w; col++ {
			if m.At(col, row) == t {
				n++
			}
		}
	}
	return n
}
