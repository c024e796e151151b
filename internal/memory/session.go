package memory

// Session is the state of one PLAYING phase. It is created when a difficulty
// is chosen and discarded on the way back to the title screen.
type Session struct {
	Difficulty Difficulty
	Profile    Profile
	Score      int // Fully correct rounds
	CellCount  int
	Grid       Grid
	Sequence   *SequenceEngine
	Trace      []CellID

	// Score at which the grid last grew; growth fires once per milestone.
	grownAt int
}

func newSession(d Difficulty, p Profile, cells int, spec GridSpec, rng Source) *Session {
	return &Session{
		Difficulty: d,
		Profile:    p,
		CellCount:  cells,
		Grid:       spec.Layout(cells),
		Sequence:   NewSequenceEngine(rng),
	}
}
