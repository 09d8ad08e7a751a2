package world

// Rect is an axis-aligned rectangle of grid cells.
type Rect struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

// Contains returns true if (row, col) lies inside the rectangle
func (r Rect) Contains(row, col int) bool {
	if r.Empty() {
		return false
	}
	return row >= r.Row && row < r.Row+r.Rows && col >= r.Col && col < r.Col+r.Cols
}

// Distance returns the Chebyshev (chessboard) distance from (row, col) to the
// nearest cell of the rectangle. Cells inside the rectangle are at distance 0.
func (r Rect) Distance(row, col int) int {
	dr := axisGap(row, r.Row, r.Row+r.Rows-1)
	dc := axisGap(col, r.Col, r.Col+r.Cols-1)
	if dr > dc {
		return dr
	}
	return dc
}

// Within returns true if the rectangle lies entirely inside a rows x cols grid
func (r Rect) Within(rows, cols int) bool {
	if r.Empty() {
		return false
	}
	return r.Row >= 0 && r.Col >= 0 && r.Row+r.Rows <= rows && r.Col+r.Cols <= cols
}

// Expand returns the rectangle grown by n cells on every side
func (r Rect) Expand(n int) Rect {
	return Rect{Row: r.Row - n, Col: r.Col - n, Rows: r.Rows + 2*n, Cols: r.Cols + 2*n}
}

// ForEachCell calls fn for every cell in the rectangle, row-major
func (r Rect) ForEachCell(fn func(row, col int)) {
	for row := r.Row; row < r.Row+r.Rows; row++ {
		for col := r.Col; col < r.Col+r.Cols; col++ {
			fn(row, col)
		}
	}
}

// axisGap returns how far v lies outside [lo, hi] on one axis.
func axisGap(v, lo, hi int) int {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}
