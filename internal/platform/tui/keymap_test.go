package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	grid := memory.DefaultGridSpec().Layout(4)

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state memory.State
		want  memory.Event
		ok    bool
	}{
		{"quit while playing", runeKey("q"), memory.StatePlaying, memory.QuitEvent(), true},
		{"ctrl+c on title", tea.KeyMsg{Type: tea.KeyCtrlC}, memory.StateTitle, memory.QuitEvent(), true},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, memory.StateTitle, memory.SelectEvent(memory.OptionStart), true},
		{"n picks normal", runeKey("n"), memory.StateDifficultySelect, memory.SelectEvent(memory.OptionNormal), true},
		{"2 picks fast", runeKey("2"), memory.StateDifficultySelect, memory.SelectEvent(memory.OptionFast), true},
		{"r restarts", runeKey("r"), memory.StateGameOver, memory.SelectEvent(memory.OptionRestart), true},
		{"n ignored on title", runeKey("n"), memory.StateTitle, memory.Event{}, false},
		{"enter ignored while playing", tea.KeyMsg{Type: tea.KeyEnter}, memory.StatePlaying, memory.Event{}, false},
		{"cell beyond grid", runeKey("9"), memory.StatePlaying, memory.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.MapKey(tt.msg, tt.state, grid)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapKey() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapKeyCellsClickTheirCell(t *testing.T) {
	keys := DefaultKeyMap()
	grid := memory.DefaultGridSpec().Layout(10)

	for _, c := range grid.Cells {
		ev, ok := keys.MapKey(runeKey(cellKey(c.ID)), memory.StatePlaying, grid)
		if !ok || ev.Kind != memory.EventClick {
			t.Fatalf("cell %d: MapKey() = %+v, %v", c.ID, ev, ok)
		}
		if id, hit := grid.HitTest(ev.Point); !hit || id != c.ID {
			t.Errorf("cell %d key clicked cell %d", c.ID, id)
		}
	}
}

func TestCellKey(t *testing.T) {
	if cellKey(0) != "1" || cellKey(9) != "0" || cellKey(10) != "" || cellKey(memory.NoCell) != "" {
		t.Error("unexpected cell keys")
	}
}

func TestMapMouseHitsDrawnCell(t *testing.T) {
	const screenW, screenH = 80, 24
	r := NewScreenRenderer(core.NewScreen(screenW, screenH), 800, 600)

	for _, n := range []int{4, 6, 8, 10} {
		grid := memory.DefaultGridSpec().Layout(n)
		for _, c := range grid.Cells {
			center := r.toScreen(c.Bounds).Center()
			msg := tea.MouseMsg{X: center.X, Y: center.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

			ev, ok := MapMouse(msg, screenW, screenH, 800, 600)
			if !ok {
				t.Fatalf("n=%d cell %d: click not mapped", n, c.ID)
			}
			if id, hit := grid.HitTest(ev.Point); !hit || id != c.ID {
				t.Errorf("n=%d: click on drawn cell %d hit %d (%v)", n, c.ID, id, hit)
			}
		}
	}
}

func TestMapMouseIgnores(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"right button", tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{"release", tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"help row", tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := MapMouse(tt.msg, 80, 24, 800, 600); ok {
				t.Error("expected no event")
			}
		})
	}
}
