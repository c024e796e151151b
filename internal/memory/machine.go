// Package memory implements the sequence-recall game: the grid of buttons,
// the growing target sequence, difficulty timing, grid growth and the state
// machine that drives rounds one tick at a time.
//
// The package owns no terminal, window or clock. Hosts feed input through an
// InputSource, draw through a Renderer and call Machine.Tick at a fixed rate.
package memory

import (
	"io"

	"github.com/charmbracelet/log"
)

// State is the top-level state of the machine.
type State int

const (
	StateTitle State = iota
	StateDifficultySelect
	StatePlaying
	StateGameOver
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateDifficultySelect:
		return "DifficultySelect"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Machine drives the game. It is single-threaded: every method must be called
// from the goroutine that calls Tick.
type Machine struct {
	cfg      Config
	rng      Source
	renderer Renderer
	input    InputSource
	sound    Sound
	logger   *log.Logger

	tick    uint64
	state   State
	session *Session
	err     error // Last rejected configuration, cleared on success

	round roundState
}

// NewMachine validates cfg and returns a machine on the title screen.
func NewMachine(cfg Config, rng Source, renderer Renderer, input InputSource) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil || renderer == nil || input == nil {
		panic("memory: machine needs a random source, a renderer and an input source")
	}

	return &Machine{
		cfg:      cfg,
		rng:      rng,
		renderer: renderer,
		input:    input,
		sound:    nopSound{},
		logger:   log.New(io.Discard),
		state:    StateTitle,
	}, nil
}

// SetSound installs a sound capability. nil silences the game.
func (m *Machine) SetSound(s Sound) {
	if s == nil {
		s = nopSound{}
	}
	m.sound = s
}

// SetLogger installs a logger for transitions and round results.
func (m *Machine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	m.logger = l
}

// Tick advances the machine by one frame: poll at most one event, advance
// timers, then render. It returns false once the machine has quit.
func (m *Machine) Tick() bool {
	if m.state == StateQuit {
		return false
	}
	m.tick++

	if ev, ok := m.input.Poll(); ok {
		m.handle(ev)
		if m.state == StateQuit {
			return false
		}
	}

	if m.state == StatePlaying {
		m.advanceRound()
	}

	m.render()
	return true
}

// Done reports whether a quit signal has been received.
func (m *Machine) Done() bool {
	return m.state == StateQuit
}

// State returns the current top-level state.
func (m *Machine) State() State {
	return m.state
}

// Err returns the last rejected difficulty selection, if any.
func (m *Machine) Err() error {
	return m.err
}

// Session returns the active session, or nil outside Playing and GameOver.
func (m *Machine) Session() *Session {
	return m.session
}

// Canvas returns the logical canvas size click positions are expressed in.
func (m *Machine) Canvas() (w, h int) {
	return m.cfg.Grid.CanvasW, m.cfg.Grid.CanvasH
}

// Menu returns the screen shown in the current state. ok is false while
// playing or after quitting.
func (m *Machine) Menu() (menu Menu, ok bool) {
	w, h := m.Canvas()
	switch m.state {
	case StateTitle:
		return titleMenu(w, h), true
	case StateDifficultySelect:
		return difficultyMenu(w, h), true
	case StateGameOver:
		return gameOverMenu(w, h, m.score()), true
	}
	return Menu{}, false
}

func (m *Machine) score() int {
	if m.session == nil {
		return 0
	}
	return m.session.Score
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.logger.Debug("state transition", "from", m.state, "to", s, "tick", m.tick)
	m.state = s
}

// handle applies one input event. Quit wins in every state.
func (m *Machine) handle(ev Event) {
	if ev.Kind == EventQuit {
		m.logger.Info("quit requested", "state", m.state)
		m.setState(StateQuit)
		return
	}

	if m.state == StatePlaying {
		if ev.Kind == EventClick {
			m.handleRoundClick(ev.Point)
		}
		return
	}

	// Menu screens accept a direct choice or a click on a button
	opt := ev.Option
	if ev.Kind == EventClick {
		menu, _ := m.Menu()
		var ok bool
		if opt, ok = menu.HitTest(ev.Point); !ok {
			return
		}
	}

	switch m.state {
	case StateTitle:
		if opt == OptionStart {
			m.setState(StateDifficultySelect)
		}
	case StateDifficultySelect:
		m.chooseDifficulty(opt)
	case StateGameOver:
		if opt == OptionRestart {
			m.session = nil
			m.setState(StateTitle)
		}
	}
}

// chooseDifficulty resolves the profile and starts a fresh session. An
// unknown choice is rejected and the machine stays on the difficulty screen.
func (m *Machine) chooseDifficulty(opt Option) {
	d, err := ParseDifficulty(string(opt))
	var profile Profile
	if err == nil {
		profile, err = m.cfg.Policy.Resolve(d)
	}
	if err != nil {
		m.err = err
		m.logger.Warn("difficulty rejected", "option", string(opt), "error", err)
		return
	}

	m.err = nil
	m.session = newSession(d, profile, m.cfg.InitialCells, m.cfg.Grid, m.rng)
	m.logger.Info("session started", "difficulty", d, "cells", m.cfg.InitialCells)
	m.round = roundState{pressed: NoCell}
	m.setState(StatePlaying)
	m.startRound(m.cfg.RoundPause)
}

func (m *Machine) render() {
	if m.state == StatePlaying {
		m.renderer.DrawGrid(m.session.Grid.Cells, m.highlighted())
		m.renderer.DrawScore(m.session.Score)
		return
	}

	menu, ok := m.Menu()
	if !ok {
		return
	}
	m.renderer.DrawMenu(menu)
	if m.state == StateGameOver {
		m.renderer.DrawScore(menu.Score)
	}
}
