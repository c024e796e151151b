package memory

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestDimensions(t *testing.T) {
	tests := []struct {
		n          int
		cols, rows int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 2},
		{5, 3, 2},
		{6, 3, 2},
		{7, 3, 3},
		{8, 3, 3},
		{9, 3, 3},
		{10, 4, 3},
		{16, 4, 4},
		{17, 5, 4},
	}

	for _, tc := range tests {
		cols, rows := Dimensions(tc.n)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("Dimensions(%d) = %dx%d, want %dx%d", tc.n, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestDimensionsMinimal(t *testing.T) {
	for n := 1; n <= 100; n++ {
		cols, rows := Dimensions(n)
		if cols*rows < n {
			t.Errorf("n=%d: %dx%d cannot hold all cells", n, cols, rows)
		}
		if d := cols - rows; d < 0 || d > 1 {
			t.Errorf("n=%d: %dx%d is not square-first", n, cols, rows)
		}
		if (cols-1)*rows >= n || cols*(rows-1) >= n {
			t.Errorf("n=%d: %dx%d is not minimal", n, cols, rows)
		}
	}
}

func TestDimensionsPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dimensions(0) should panic")
		}
	}()
	Dimensions(0)
}

func TestLayoutCells(t *testing.T) {
	spec := DefaultGridSpec()

	for n := 1; n <= 10; n++ {
		g := spec.Layout(n)
		if g.Len() != n {
			t.Fatalf("Layout(%d) produced %d cells", n, g.Len())
		}

		for i, c := range g.Cells {
			if c.ID != CellID(i) {
				t.Errorf("Layout(%d): cell %d has ID %d", n, i, c.ID)
			}
			if c.Bounds.W != spec.CellSize || c.Bounds.H != spec.CellSize {
				t.Errorf("Layout(%d): cell %d has size %dx%d", n, i, c.Bounds.W, c.Bounds.H)
			}
			for j := i + 1; j < len(g.Cells); j++ {
				if c.Bounds.Intersects(g.Cells[j].Bounds) {
					t.Errorf("Layout(%d): cells %d and %d overlap", n, i, j)
				}
			}
		}
	}
}

func TestLayoutRowMajorCentered(t *testing.T) {
	spec := DefaultGridSpec()
	g := spec.Layout(4)

	// 2x2: 150*2 + 30 = 330 wide and tall
	want := []core.Rect{
		core.NewRect(235, 135, 150, 150),
		core.NewRect(415, 135, 150, 150),
		core.NewRect(235, 315, 150, 150),
		core.NewRect(415, 315, 150, 150),
	}
	for i, r := range want {
		if g.Cells[i].Bounds != r {
			t.Errorf("cell %d = %+v, want %+v", i, g.Cells[i].Bounds, r)
		}
	}

	// 5 cells in a 3x2 grid: the fifth sits in the second row, second column
	g = spec.Layout(5)
	if g.Cols != 3 || g.Rows != 2 {
		t.Fatalf("Layout(5) = %dx%d, want 3x2", g.Cols, g.Rows)
	}
	if g.Cells[4].Bounds.Y != g.Cells[3].Bounds.Y || g.Cells[4].Bounds.X != g.Cells[1].Bounds.X {
		t.Errorf("cell 4 at %+v is not row-major", g.Cells[4].Bounds)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	spec := DefaultGridSpec()
	for n := 1; n <= 10; n++ {
		if a, b := spec.Layout(n), spec.Layout(n); !reflect.DeepEqual(a, b) {
			t.Errorf("Layout(%d) is not deterministic", n)
		}
	}
}

func TestHitTest(t *testing.T) {
	g := DefaultGridSpec().Layout(4)

	for _, c := range g.Cells {
		center, ok := g.Center(c.ID)
		if !ok {
			t.Fatalf("Center(%d) failed", c.ID)
		}
		if id, ok := g.HitTest(center); !ok || id != c.ID {
			t.Errorf("HitTest(center of %d) = %d, %v", c.ID, id, ok)
		}
		if id, ok := g.HitTest(core.Pt(c.Bounds.X, c.Bounds.Y)); !ok || id != c.ID {
			t.Errorf("HitTest(corner of %d) = %d, %v", c.ID, id, ok)
		}
	}

	misses := []core.Point{
		core.Pt(0, 0),     // canvas corner
		core.Pt(400, 200), // padding between columns
		core.Pt(300, 300), // padding between rows
		core.Pt(-5, 200),  // off canvas
	}
	for _, p := range misses {
		if id, ok := g.HitTest(p); ok || id != NoCell {
			t.Errorf("HitTest(%v) = %d, %v; want miss", p, id, ok)
		}
	}

	if _, ok := g.Center(CellID(4)); ok {
		t.Error("Center() of a missing cell should fail")
	}
}

func TestGridSpecValidate(t *testing.T) {
	if err := DefaultGridSpec().Validate(); err != nil {
		t.Errorf("default spec invalid: %v", err)
	}
	bad := GridSpec{CanvasW: 0, CanvasH: 600, CellSize: 10}
	if err := bad.Validate(); err == nil {
		t.Error("zero-width canvas should be invalid")
	}
}
