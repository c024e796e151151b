package memory

import "testing"

func TestShouldGrow(t *testing.T) {
	p := DefaultScalePolicy()

	for score := 0; score <= 40; score++ {
		want := score > 0 && score%5 == 0
		if got := p.ShouldGrow(score, 4); got != want {
			t.Errorf("ShouldGrow(%d, 4) = %v, want %v", score, got, want)
		}
		if p.ShouldGrow(score, 10) {
			t.Errorf("ShouldGrow(%d, 10) should be false at the cap", score)
		}
	}
}

func TestGrow(t *testing.T) {
	p := DefaultScalePolicy()

	tests := []struct{ current, want int }{
		{4, 6},
		{6, 8},
		{8, 10},
		{9, 10},
		{10, 10},
	}
	for _, tc := range tests {
		if got := p.Grow(tc.current); got != tc.want {
			t.Errorf("Grow(%d) = %d, want %d", tc.current, got, tc.want)
		}
	}
}

func TestGrowthMilestones(t *testing.T) {
	p := DefaultScalePolicy()
	cells := 4
	want := map[int]int{5: 6, 10: 8, 15: 10, 20: 10}

	for score := 1; score <= 20; score++ {
		if p.ShouldGrow(score, cells) {
			cells = p.Grow(cells)
		}
		if w, ok := want[score]; ok && cells != w {
			t.Errorf("after %d rounds cells = %d, want %d", score, cells, w)
		}
	}
}
