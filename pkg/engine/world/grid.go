package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// DefaultBlocking is the terrain that blocks movement when a grid does not
// name its own blocking set.
var DefaultBlocking = []rune{TerrainWall}

// Grid represents a scene map with encapsulated cell storage
type Grid struct {
	cells    [][]Cell
	blocking mapset.Set[rune]
	rows     int
	cols     int
}

// ParseGrid builds a grid from text rows, one rune per cell. Every row must
// have the same width. blocking lists the terrain codes that cannot be entered;
// an empty list means DefaultBlocking.
func ParseGrid(lines []string, blocking []rune) (*Grid, error) {
	if len(lines) == 0 {
		return nil, errors.New("grid has no rows")
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, errors.New("grid has no columns")
	}

	g := &Grid{
		rows:     len(lines),
		cols:     width,
		cells:    make([][]Cell, len(lines)),
		blocking: mapset.New[rune](),
	}

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("grid row %d has width %d, want %d", row, len(runes), width)
		}
		g.cells[row] = make([]Cell, width)
		for col, r := range runes {
			g.cells[row][col] = Cell{Row: row, Col: col, Terrain: r}
		}
	}

	if len(blocking) == 0 {
		blocking = DefaultBlocking
	}
	for _, r := range blocking {
		g.blocking.Put(r)
	}

	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position and whether it exists
func (g *Grid) GetCell(row, col int) (Cell, bool) {
	if !g.IsValidPosition(row, col) {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Terrain returns the terrain code at the position, or TerrainWall when out of bounds
func (g *Grid) Terrain(row, col int) rune {
	cell, ok := g.GetCell(row, col)
	if !ok {
		return TerrainWall
	}
	return cell.Terrain
}

// IsOpen returns true if the position is inside the grid and its terrain
// is not in the blocking set. Out-of-bounds positions are never open.
func (g *Grid) IsOpen(row, col int) bool {
	cell, ok := g.GetCell(row, col)
	if !ok {
		return false
	}
	return !g.blocking.Has(cell.Terrain)
}

// IsBlocking returns true if the terrain code blocks movement on this grid
func (g *Grid) IsBlocking(terrain rune) bool {
	return g.blocking.Has(terrain)
}

// Lines returns the grid as text rows
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		runes := make([]rune, g.cols)
		for col := 0; col < g.cols; col++ {
			runes[col] = g.cells[row][col].Terrain
		}
		lines[row] = string(runes)
	}
	return lines
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return errors.New("grid has invalid dimensions")
	}

	open := 0
	g.ForEachCell(func(row, col int, cell Cell) {
		if g.IsOpen(row, col) {
			open++
		}
	})
	if open == 0 {
		return errors.New("grid has no walkable cells")
	}

	return nil
}
