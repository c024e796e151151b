package memory

// Snapshot captures the machine state for determinism testing and hosts.
type Snapshot struct {
	Tick        uint64
	State       State
	Phase       Phase // Meaningful only while Playing
	Difficulty  Difficulty
	Score       int
	CellCount   int
	Sequence    []CellID
	Trace       []CellID
	Highlighted CellID
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        m.tick,
		State:       m.state,
		Phase:       m.round.phase,
		Highlighted: NoCell,
	}
	if s := m.session; s != nil {
		snap.Difficulty = s.Difficulty
		snap.Score = s.Score
		snap.CellCount = s.CellCount
		snap.Sequence = s.Sequence.Sequence()
		snap.Trace = append([]CellID(nil), s.Trace...)
		if m.state == StatePlaying {
			snap.Highlighted = m.highlighted()
		}
	}
	return snap
}
