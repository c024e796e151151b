package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// cellKeys lists the keys that press grid cells, in cell order.
var cellKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// cellKey returns the key that presses cell id, or "" if it has none.
func cellKey(id memory.CellID) string {
	if id < 0 || int(id) >= len(cellKeys) {
		return ""
	}
	return cellKeys[id]
}

func cellForKey(k string) (memory.CellID, bool) {
	for i, ck := range cellKeys {
		if ck == k {
			return memory.CellID(i), true
		}
	}
	return memory.NoCell, false
}

// KeyMap defines the key bindings of the game screen. Which bindings are
// active depends on the machine state.
type KeyMap struct {
	Quit       key.Binding
	Start      key.Binding
	Restart    key.Binding
	Normal     key.Binding
	Fast       key.Binding
	Cells      key.Binding
	Scores     key.Binding
	Screenshot key.Binding

	state memory.State
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", " ", "r"),
			key.WithHelp("enter/r", "restart"),
		),
		Normal: key.NewBinding(
			key.WithKeys("n", "1"),
			key.WithHelp("n/1", "normal"),
		),
		Fast: key.NewBinding(
			key.WithKeys("f", "2"),
			key.WithHelp("f/2", "fast"),
		),
		Cells: key.NewBinding(
			key.WithKeys(cellKeys...),
			key.WithHelp("1-9,0", "press cell"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ForState returns a copy of the key map whose help matches state.
func (k KeyMap) ForState(state memory.State) KeyMap {
	k.state = state
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.state {
	case memory.StateTitle:
		return []key.Binding{k.Start, k.Scores, k.Quit}
	case memory.StateDifficultySelect:
		return []key.Binding{k.Normal, k.Fast, k.Quit}
	case memory.StatePlaying:
		return []key.Binding{k.Cells, k.Quit}
	case memory.StateGameOver:
		return []key.Binding{k.Restart, k.Quit}
	}
	return []key.Binding{k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Normal, k.Fast, k.Restart},
		{k.Cells, k.Scores, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key to a game event for the given state. Cell keys
// become clicks at the center of the cell in grid.
func (k KeyMap) MapKey(msg tea.KeyMsg, state memory.State, grid memory.Grid) (memory.Event, bool) {
	if key.Matches(msg, k.Quit) {
		return memory.QuitEvent(), true
	}

	switch state {
	case memory.StateTitle:
		if key.Matches(msg, k.Start) {
			return memory.SelectEvent(memory.OptionStart), true
		}
	case memory.StateDifficultySelect:
		switch {
		case key.Matches(msg, k.Normal):
			return memory.SelectEvent(memory.OptionNormal), true
		case key.Matches(msg, k.Fast):
			return memory.SelectEvent(memory.OptionFast), true
		}
	case memory.StateGameOver:
		if key.Matches(msg, k.Restart) {
			return memory.SelectEvent(memory.OptionRestart), true
		}
	case memory.StatePlaying:
		if !key.Matches(msg, k.Cells) {
			break
		}
		id, _ := cellForKey(msg.String())
		if center, ok := grid.Center(id); ok {
			return memory.ClickEvent(center), true
		}
	}
	return memory.Event{}, false
}

// MapMouse translates a left click on the play area to a canvas click.
// The play area is screenW x screenH terminal cells showing a
// canvasW x canvasH canvas; each terminal cell maps to its center point.
func MapMouse(msg tea.MouseMsg, screenW, screenH, canvasW, canvasH int) (memory.Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return memory.Event{}, false
	}
	if screenW <= 0 || screenH <= 0 {
		return memory.Event{}, false
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= screenW || msg.Y >= screenH {
		return memory.Event{}, false
	}
	p := core.Pt(
		(2*msg.X+1)*canvasW/(2*screenW),
		(2*msg.Y+1)*canvasH/(2*screenH),
	)
	return memory.ClickEvent(p), true
}
