package core

// Color represents a foreground color for a screen cell.
// Hosts map these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
