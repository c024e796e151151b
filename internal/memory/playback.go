package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Phase is the stage of the current round while Playing.
type Phase int

const (
	PhasePause    Phase = iota // Short rest before playback
	PhasePlayback              // Sequence is being shown; clicks are discarded
	PhaseRecall                // Player reproduces the sequence
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePause:
		return "Pause"
	case PhasePlayback:
		return "Playback"
	case PhaseRecall:
		return "Recall"
	default:
		return "Unknown"
	}
}

// roundState holds the timers of the round in progress.
type roundState struct {
	phase Phase
	timer int // Ticks left in the current pause or highlight step

	index int  // Playback position in the sequence
	lit   bool // Whether sequence[index] is currently shown

	pressed    CellID // Last clicked cell, shown while pressTimer > 0
	pressTimer int
}

// startRound grows the sequence by one and schedules its playback after pause.
func (m *Machine) startRound(pause time.Duration) {
	s := m.session
	s.Trace = s.Trace[:0]
	id := s.Sequence.AppendRandom(s.CellCount)
	m.logger.Debug("round started", "round", s.Sequence.Len(), "appended", id)

	m.round.phase = PhasePause
	m.round.timer = m.cfg.ticks(pause)
	m.round.index = 0
	m.round.lit = false
}

// advanceRound runs the per-tick timers of the Playing state.
func (m *Machine) advanceRound() {
	r := &m.round
	if r.pressTimer > 0 {
		r.pressTimer--
	}

	switch r.phase {
	case PhasePause:
		r.timer--
		if r.timer <= 0 {
			r.phase = PhasePlayback
			r.index = 0
			m.lightStep()
		}

	case PhasePlayback:
		r.timer--
		if r.timer > 0 {
			return
		}
		if r.lit {
			r.lit = false
			r.timer = m.cfg.ticks(m.session.Profile.MinimalDelay)
			return
		}
		r.index++
		if r.index >= m.session.Sequence.Len() {
			r.phase = PhaseRecall
			return
		}
		m.lightStep()

	case PhaseRecall:
		// Waits indefinitely for clicks
	}
}

// lightStep shows the sequence element at the current index.
func (m *Machine) lightStep() {
	r := &m.round
	r.lit = true
	r.timer = m.cfg.HighlightFrames + m.cfg.ticks(m.session.Profile.DisplayDelay)
	m.sound.Click()
}

// handleRoundClick collects one recalled step. Clicks outside the recall
// phase and clicks between cells are ignored.
func (m *Machine) handleRoundClick(p core.Point) {
	if m.round.phase != PhaseRecall {
		m.logger.Debug("click discarded", "phase", m.round.phase)
		return
	}

	s := m.session
	id, ok := s.Grid.HitTest(p)
	if !ok {
		return
	}

	s.Trace = append(s.Trace, id)
	m.round.pressed = id
	m.round.pressTimer = m.cfg.ticks(m.cfg.PressFlash)
	m.sound.Click()

	seq := s.Sequence.seq
	if ValidateStep(seq, s.Trace, len(s.Trace)-1) == Incorrect {
		m.sound.GameOver()
		m.logger.Info("round failed",
			"score", s.Score,
			"step", len(s.Trace)-1,
			"expected", seq[len(s.Trace)-1],
			"got", id,
		)
		m.setState(StateGameOver)
		return
	}

	if IsRoundComplete(seq, s.Trace) {
		m.completeRound()
	}
}

// completeRound scores the round, grows the grid on milestones and starts
// the next round.
func (m *Machine) completeRound() {
	s := m.session
	s.Score++
	pause := m.cfg.RoundPause

	if s.grownAt != s.Score && m.cfg.Scale.ShouldGrow(s.Score, s.CellCount) {
		s.CellCount = m.cfg.Scale.Grow(s.CellCount)
		s.Grid = m.cfg.Grid.Layout(s.CellCount)
		s.grownAt = s.Score
		pause += m.cfg.GrowPause
		m.logger.Info("grid grown", "score", s.Score, "cells", s.CellCount)
	}

	m.logger.Debug("round complete", "score", s.Score)
	m.startRound(pause)
}

// highlighted returns the cell to draw lit this frame.
func (m *Machine) highlighted() CellID {
	r := m.round
	if r.phase == PhasePlayback && r.lit {
		return m.session.Sequence.At(r.index)
	}
	if r.pressTimer > 0 {
		return r.pressed
	}
	return NoCell
}
