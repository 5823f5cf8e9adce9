// Package leveldata holds tile maps as plain data. It has no dependencies
// on ebitengine, donburi, or resolv.
package leveldata

import "errors"

// ErrEmptyMap is returned when a map source has no cells.
var ErrEmptyMap = errors.New("empty tile map")

// TileLayer is the TMX layer holding solid tiles.
const TileLayer = "tiles"

// TileMap is a grid of solid and open cells. Row 0 is the top row and
// cell coordinates grow right and down, as in the source files.
type TileMap struct {
	Name     string
	Cols     int
	Rows     int
	TileSize int
	solid    []bool
}

// SolidRect is one solid cell in map pixels, top-left origin.
type SolidRect struct {
	X, Y, W, H float64
}

func newTileMap(name string, cols, rows, tileSize int) *TileMap {
	return &TileMap{
		Name:     name,
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		solid:    make([]bool, cols*rows),
	}
}

// IsSolid reports whether the cell is solid. Cells outside the map are open.
func (m *TileMap) IsSolid(col, row int) bool {
	if col < 0 || row < 0 || col >= m.Cols || row >= m.Rows {
		return false
	}
	return m.solid[row*m.Cols+col]
}

func (m *TileMap) set(col, row int) {
	m.solid[row*m.Cols+col] = true
}

// Width is the map width in pixels.
func (m *TileMap) Width() int { return m.Cols * m.TileSize }

// Height is the map height in pixels.
func (m *TileMap) Height() int { return m.Rows * m.TileSize }

// SolidRects lists every solid cell, row by row.
func (m *TileMap) SolidRects() []SolidRect {
	size := float64(m.TileSize)
	var rects []SolidRect
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if !m.IsSolid(col, row) {
				continue
			}
			rects = append(rects, SolidRect{
				X: float64(col) * size,
				Y: float64(row) * size,
				W: size,
				H: size,
			})
		}
	}
	return rects
}

// ASCII renders the map back to ASCII using 'x' for solid cells.
func (m *TileMap) ASCII() []string {
	out := make([]string, m.Rows)
	buf := make([]byte, m.Cols)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			buf[col] = '.'
			if m.IsSolid(col, row) {
				buf[col] = 'x'
			}
		}
		out[row] = string(buf)
	}
	return out
}
