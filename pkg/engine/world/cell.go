// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Terrain codes understood by every grid. Games may use any other rune
// for decorative floor; only the blocking set decides walkability.
const (
	TerrainWall  = '#'
	TerrainFloor = '.'
	TerrainWater = '~'
)

// Cell represents a single cell/tile in the grid.
type Cell struct {
	Row int
	Col int

	// Terrain is the raw map code for this cell.
	Terrain rune
}

// Name returns the "row:col" name of the cell
func (c Cell) Name() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Position is a grid coordinate.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String returns the "row:col" form of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Add returns the position offset by (dRow, dCol)
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}
