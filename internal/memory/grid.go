package memory

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Cell is one clickable region of the grid. Its bounds are derived from the
// grid layout and are never stored independently.
type Cell struct {
	ID     CellID
	Bounds core.Rect
}

// GridSpec holds the fixed geometry the grid is laid out in.
type GridSpec struct {
	CanvasW  int
	CanvasH  int
	CellSize int
	Padding  int
}

// DefaultGridSpec returns the 800x600 canvas with 150px cells and 30px gaps.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		CanvasW:  800,
		CanvasH:  600,
		CellSize: 150,
		Padding:  30,
	}
}

// Validate reports geometry that cannot hold any cell.
func (s GridSpec) Validate() error {
	if s.CanvasW <= 0 || s.CanvasH <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfiguration, s.CanvasW, s.CanvasH)
	}
	if s.CellSize <= 0 || s.Padding < 0 {
		return fmt.Errorf("%w: cell size %d / padding %d", ErrInvalidConfiguration, s.CellSize, s.Padding)
	}
	return nil
}

// Grid is an immutable layout of n cells.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// Dimensions returns the near-square column and row counts for n cells.
// Columns grow before rows, so 5 cells give 3x2 and 10 cells give 4x3.
func Dimensions(n int) (cols, rows int) {
	if n < 1 {
		panic(fmt.Sprintf("memory: grid needs at least one cell, got %d", n))
	}

	side := int(math.Sqrt(float64(n)))
	// Correct float rounding at perfect squares
	for (side+1)*(side+1) <= n {
		side++
	}
	for side*side > n {
		side--
	}

	cols, rows = side, side
	if cols*cols < n {
		cols++
	}
	if cols*rows < n {
		rows++
	}
	return cols, rows
}

// Layout computes n cells filled row-major and centered on the canvas.
// The result depends only on n and s.
func (s GridSpec) Layout(n int) Grid {
	cols, rows := Dimensions(n)

	totalW := cols*s.CellSize + (cols-1)*s.Padding
	totalH := rows*s.CellSize + (rows-1)*s.Padding
	startX := (s.CanvasW - totalW) / 2
	startY := (s.CanvasH - totalH) / 2

	cells := make([]Cell, n)
	for i := range cells {
		row := i / cols
		col := i % cols
		cells[i] = Cell{
			ID: CellID(i),
			Bounds: core.NewRect(
				startX+col*(s.CellSize+s.Padding),
				startY+row*(s.CellSize+s.Padding),
				s.CellSize,
				s.CellSize,
			),
		}
	}

	return Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.Cells)
}

// HitTest returns the cell containing p.
func (g Grid) HitTest(p core.Point) (CellID, bool) {
	for _, c := range g.Cells {
		if c.Bounds.Contains(p) {
			return c.ID, true
		}
	}
	return NoCell, false
}

// Center returns the center of the given cell, for hosts and tests that need
// to synthesize a click on it.
func (g Grid) Center(id CellID) (core.Point, bool) {
	if id < 0 || int(id) >= len(g.Cells) {
		return core.Point{}, false
	}
	return g.Cells[id].Bounds.Center(), true
}
