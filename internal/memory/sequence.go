package memory

import (
	"fmt"
	"slices"
)

// Source is the random source the sequence draws from. *rand.Rand satisfies
// it; tests inject fixed sources.
type Source interface {
	Intn(n int) int
}

// StepResult is the outcome of validating one recalled step.
type StepResult int

const (
	Correct StepResult = iota
	Incorrect
)

// String returns a human-readable name for the result.
func (r StepResult) String() string {
	if r == Correct {
		return "Correct"
	}
	return "Incorrect"
}

// SequenceEngine owns the growing target sequence of a session.
type SequenceEngine struct {
	rng Source
	seq []CellID
}

// NewSequenceEngine creates an empty sequence drawing from rng.
func NewSequenceEngine(rng Source) *SequenceEngine {
	if rng == nil {
		panic("memory: nil random source")
	}
	return &SequenceEngine{rng: rng}
}

// AppendRandom appends one cell drawn uniformly from [0, n-1] and returns it.
func (e *SequenceEngine) AppendRandom(n int) CellID {
	if n < 1 {
		panic(fmt.Sprintf("memory: cannot draw from %d cells", n))
	}
	id := CellID(e.rng.Intn(n))
	e.seq = append(e.seq, id)
	return id
}

// Sequence returns a copy of the current sequence.
func (e *SequenceEngine) Sequence() []CellID {
	return slices.Clone(e.seq)
}

// At returns the i-th element of the sequence.
func (e *SequenceEngine) At(i int) CellID {
	return e.seq[i]
}

// Len returns the sequence length.
func (e *SequenceEngine) Len() int {
	return len(e.seq)
}

// ValidateStep compares trace[i] to seq[i]. An Incorrect result ends the
// round; callers must not evaluate further steps.
func ValidateStep(seq, trace []CellID, i int) StepResult {
	if len(seq) == 0 {
		panic("memory: validating against an empty sequence")
	}
	if i < 0 || i >= len(trace) || i >= len(seq) {
		panic(fmt.Sprintf("memory: step %d out of range (sequence %d, trace %d)", i, len(seq), len(trace)))
	}
	if trace[i] != seq[i] {
		return Incorrect
	}
	return Correct
}

// IsRoundComplete reports whether trace reproduces seq exactly.
func IsRoundComplete(seq, trace []CellID) bool {
	if len(seq) == 0 {
		panic("memory: validating against an empty sequence")
	}
	return slices.Equal(seq, trace)
}
