package memory

// ScalePolicy decides when the grid grows.
type ScalePolicy struct {
	Every int // Grow at every multiple of this score
	Step  int // Cells added per growth
	Max   int // Upper bound on the cell count
}

// DefaultScalePolicy grows by two cells every five points, up to ten cells.
func DefaultScalePolicy() ScalePolicy {
	return ScalePolicy{Every: 5, Step: 2, Max: 10}
}

// ShouldGrow reports whether score is a growth milestone and there is room.
func (p ScalePolicy) ShouldGrow(score, current int) bool {
	return score > 0 && p.Every > 0 && score%p.Every == 0 && current < p.Max
}

// Grow returns the new cell count, capped at Max.
func (p ScalePolicy) Grow(current int) int {
	return min(current+p.Step, p.Max)
}
