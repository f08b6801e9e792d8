package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Colors available to games. Tiles use the warm range, chrome uses gray.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorBlue
	ColorBrightBlue
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorBrightGreen
)
