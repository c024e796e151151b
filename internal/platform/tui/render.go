package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenRenderer implements memory.Renderer on a character screen. Canvas
// rectangles are scaled to the screen size. DrawGrid and DrawMenu start a
// new frame; DrawScore draws over the current one.
type ScreenRenderer struct {
	screen  *core.Screen
	canvasW int
	canvasH int
}

// NewScreenRenderer creates a renderer drawing a canvasW x canvasH canvas onto screen.
func NewScreenRenderer(screen *core.Screen, canvasW, canvasH int) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, canvasW: canvasW, canvasH: canvasH}
}

// Screen returns the buffer the renderer draws into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

func (r *ScreenRenderer) toScreen(rect core.Rect) core.Rect {
	return rect.Scale(r.canvasW, r.canvasH, r.screen.Width(), r.screen.Height())
}

func (r *ScreenRenderer) screenY(canvasY int) int {
	return canvasY * r.screen.Height() / r.canvasH
}

// DrawGrid draws every cell, lighting the highlighted one.
func (r *ScreenRenderer) DrawGrid(cells []memory.Cell, highlighted memory.CellID) {
	r.screen.Clear()
	for _, c := range cells {
		sr := r.toScreen(c.Bounds)
		if c.ID == highlighted {
			r.screen.FillRect(sr, '█', core.ColorBrightGreen)
			continue
		}
		r.screen.DrawBox(sr, core.ColorCyan)
		if label := cellKey(c.ID); label != "" {
			center := sr.Center()
			r.screen.DrawTextColor(center.X, center.Y, label, core.ColorGray)
		}
	}
}

// DrawScore draws the score in the top-left corner.
func (r *ScreenRenderer) DrawScore(score int) {
	r.screen.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", score), core.ColorYellow)
}

// DrawMenu draws a title screen with its buttons.
func (r *ScreenRenderer) DrawMenu(menu memory.Menu) {
	r.screen.Clear()

	titleY := r.screenY(r.canvasH/2 - 150)
	r.screen.DrawTextCentered(titleY, menu.Title, core.ColorBrightWhite)
	if menu.Kind == memory.MenuGameOver {
		r.screen.DrawTextCentered(titleY+2, fmt.Sprintf("Final score: %d", menu.Score), core.ColorYellow)
	}

	for _, b := range menu.Buttons {
		sr := r.toScreen(b.Bounds)
		// Keep a row for the label between the borders
		sr.H = max(sr.H, 3)
		r.screen.DrawBox(sr, core.ColorWhite)
		x := sr.X + (sr.W-utf8.RuneCountInString(b.Label))/2
		r.screen.DrawTextColor(x, sr.Center().Y, b.Label, core.ColorBrightGreen)
	}
}
