package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// MenuKind identifies a static screen.
type MenuKind int

const (
	MenuTitle MenuKind = iota
	MenuDifficulty
	MenuGameOver
)

// String returns a human-readable name for the menu kind.
func (k MenuKind) String() string {
	switch k {
	case MenuTitle:
		return "Title"
	case MenuDifficulty:
		return "Difficulty"
	case MenuGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// MenuButton is a clickable labeled region on a menu screen.
type MenuButton struct {
	Option Option
	Label  string
	Bounds core.Rect
}

// Menu describes one static screen.
type Menu struct {
	Kind    MenuKind
	Title   string
	Score   int // Final score, for MenuGameOver
	Buttons []MenuButton
}

// HitTest returns the option of the button containing p.
func (m Menu) HitTest(p core.Point) (Option, bool) {
	for _, b := range m.Buttons {
		if b.Bounds.Contains(p) {
			return b.Option, true
		}
	}
	return "", false
}

const (
	menuButtonW = 200
	menuButtonH = 60
)

// menuButton places a button horizontally centered, offset from the canvas center.
func menuButton(w, h, dy int, o Option, label string) MenuButton {
	return MenuButton{
		Option: o,
		Label:  label,
		Bounds: core.NewRect(w/2-menuButtonW/2, h/2+dy, menuButtonW, menuButtonH),
	}
}

func titleMenu(w, h int) Menu {
	return Menu{
		Kind:    MenuTitle,
		Title:   "Memory Sequence",
		Buttons: []MenuButton{menuButton(w, h, 50, OptionStart, "Start")},
	}
}

func difficultyMenu(w, h int) Menu {
	return Menu{
		Kind:  MenuDifficulty,
		Title: "Select Difficulty",
		Buttons: []MenuButton{
			menuButton(w, h, -50, OptionNormal, Normal.Title()),
			menuButton(w, h, 50, OptionFast, Fast.Title()),
		},
	}
}

func gameOverMenu(w, h, score int) Menu {
	return Menu{
		Kind:    MenuGameOver,
		Title:   "Game Over",
		Score:   score,
		Buttons: []MenuButton{menuButton(w, h, 100, OptionRestart, "Restart")},
	}
}
