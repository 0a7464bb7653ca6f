package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded play area. Items are inserted by centre position and index; a query
// visits the 3x3 cell neighbourhood around a position.
//
// Cell size must be >= the largest sum of half-extents of any two boxes that
// can collide, so every overlapping pair lands in neighbouring cells.
// Positions outside the area are clamped to the border cells. Clamping never
// separates two positions by more than one cell, so it only adds candidates.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
}

// maxGridDim caps columns and rows. Larger areas clamp into the border cells,
// which only adds candidates.
const maxGridDim = 256

// gridCell stores the indices of items whose centre falls within the cell.
// The slice is reset to [:0] between frames.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width×height area.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
	}
	g.Resize(width, height)
	return g
}

// Resize re-dimensions the grid. Cell memory is kept when the cell count is unchanged.
func (g *SpatialGrid) Resize(width, height float64) {
	cols := cellCount(width * g.invCellSize)
	rows := cellCount(height * g.invCellSize)
	if cols == g.cols && rows == g.rows {
		return
	}
	g.cols = cols
	g.rows = rows
	g.cells = make([]gridCell, cols*rows)
}

// cellCount rounds n up to a cell count in [1, maxGridDim]. NaN counts as 1.
func cellCount(n float64) int {
	n = math.Ceil(n)
	switch {
	case !(n >= 1):
		return 1
	case n > maxGridDim:
		return maxGridDim
	}
	return int(n)
}

// CellSize returns the edge length of one cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item in the 3x3 neighbourhood of (x, y).
// Iteration stops early when fn returns true.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts area coordinates to a cell, clamping to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
