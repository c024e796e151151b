package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Options configure a game screen.
type Options struct {
	Game memory.Config
	Seed int64 // 0 means seed from the clock

	// Difficulty, when set, skips the title and difficulty screens.
	Difficulty memory.Difficulty

	Store  *storage.Store // optional
	Sound  memory.Sound   // optional
	Logger *log.Logger    // optional

	Width  int
	Height int
}

// helpHeight is the number of rows below the play area.
const helpHeight = 1

// GameModel is the Bubble Tea model that runs one memory.Machine.
type GameModel struct {
	machine  *memory.Machine
	queue    *memory.EventQueue
	renderer *ScreenRenderer
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	tickRate int

	width, height   int
	quitting        bool
	scoreSaved      bool // Whether the current game over has been recorded
	scoresRequested bool
}

// NewGameModel creates a model with a fresh machine.
func NewGameModel(opts Options) (GameModel, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	queue := &memory.EventQueue{}
	screen := core.NewScreen(opts.Width, max(opts.Height-helpHeight, 0))
	renderer := NewScreenRenderer(screen, opts.Game.Grid.CanvasW, opts.Game.Grid.CanvasH)

	machine, err := memory.NewMachine(opts.Game, rand.New(rand.NewSource(opts.Seed)), renderer, queue)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}
	machine.SetSound(opts.Sound)
	machine.SetLogger(logger)

	if opts.Difficulty != "" {
		queue.Push(memory.SelectEvent(memory.OptionStart))
		queue.Push(memory.SelectEvent(memory.Option(opts.Difficulty)))
	}

	h := help.New()
	h.Width = opts.Width

	return GameModel{
		machine:  machine,
		queue:    queue,
		renderer: renderer,
		store:    opts.Store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: opts.Game.TickRate,
		width:    opts.Width,
		height:   opts.Height,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		screen := m.renderer.Screen()
		w, h := m.machine.Canvas()
		if ev, ok := MapMouse(msg, screen.Width(), screen.Height(), w, h); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Screen().Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event a key stands for in the current state.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.machine.State()

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case state == memory.StateTitle && key.Matches(msg, m.keys.Scores):
		m.scoresRequested = true
		return m, nil
	}

	var grid memory.Grid
	if s := m.machine.Session(); s != nil {
		grid = s.Grid
	}
	if ev, ok := m.keys.MapKey(msg, state, grid); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleTick runs one machine tick and records finished games.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.machine.Tick() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.machine.State() == memory.StateGameOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.tickRate)
}

// saveScore records the finished session. Zero scores are not kept.
func (m GameModel) saveScore() {
	s := m.machine.Session()
	if s == nil || s.Score == 0 || m.store == nil {
		return
	}
	result := storage.Result{Difficulty: s.Difficulty, Score: s.Score, Cells: s.CellCount}
	if _, err := m.store.SaveScore(result); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "difficulty", s.Difficulty, "score", s.Score)
}

// saveScreenshot saves the current screen to ~/.memory/screenshots.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".memory", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("memory_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.renderer.Screen().String()), 0o600)
}

// View renders the last drawn frame and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.renderer.Screen()) + "\n" +
		helpStyle.Render(m.help.View(m.keys.ForState(m.machine.State())))
}

// Machine returns the machine driven by this model.
func (m GameModel) Machine() *memory.Machine {
	return m.machine
}

// IsQuitting returns true once the machine has quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the scores key was pressed on the title screen.
func (m GameModel) WantsScoreboard() bool {
	return m.scoresRequested
}

// SessionModel switches between the game and the scoreboard. It is the
// top-level model for both local play and SSH sessions.
type SessionModel struct {
	game       GameModel
	scoreboard ScoreboardModel
	store      *storage.Store
	showScores bool
	quitting   bool
}

// NewSessionModel creates a session model around a new game.
func NewSessionModel(opts Options) (SessionModel, error) {
	game, err := NewGameModel(opts)
	if err != nil {
		return SessionModel{}, err
	}
	return SessionModel{game: game, store: opts.Store}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks and sizes always reach the game so its loop never stalls
	switch msg.(type) {
	case TickMsg, tea.WindowSizeMsg:
		cmd := m.updateGame(msg)
		if wsm, ok := msg.(tea.WindowSizeMsg); ok && m.showScores {
			next, _ := m.scoreboard.Update(wsm)
			m.scoreboard = next.(ScoreboardModel)
		}
		if m.game.IsQuitting() {
			m.quitting = true
		}
		return m, cmd
	}

	if m.showScores {
		next, cmd := m.scoreboard.Update(msg)
		m.scoreboard = next.(ScoreboardModel)
		switch {
		case m.scoreboard.IsQuitting():
			m.game.queue.Push(memory.QuitEvent())
			m.showScores = false
			return m, nil
		case m.scoreboard.IsGoingBack():
			m.showScores = false
			return m, nil
		}
		return m, cmd
	}

	cmd := m.updateGame(msg)
	if m.game.WantsScoreboard() {
		m.game.scoresRequested = false
		m.scoreboard = NewScoreboardModel(m.store, m.game.width, m.game.height)
		m.scoreboard.embedded = true
		m.showScores = true
	}
	return m, cmd
}

func (m *SessionModel) updateGame(msg tea.Msg) tea.Cmd {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)
	return cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}
	return m.game.View()
}

// Game returns the game model.
func (m SessionModel) Game() GameModel {
	return m.game
}

// Run starts a local Bubble Tea program for one player.
func Run(opts Options) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
