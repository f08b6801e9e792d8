package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/m2048/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]string{
	core.ColorGray:          "245",
	core.ColorWhite:         "7",
	core.ColorBrightWhite:   "15",
	core.ColorYellow:        "3",
	core.ColorBrightYellow:  "11",
	core.ColorOrange:        "208",
	core.ColorRed:           "1",
	core.ColorBrightRed:     "9",
	core.ColorMagenta:       "5",
	core.ColorBrightMagenta: "13",
	core.ColorBlue:          "4",
	core.ColorBrightBlue:    "12",
	core.ColorCyan:          "6",
	core.ColorBrightCyan:    "14",
	core.ColorGreen:         "2",
	core.ColorBrightGreen:   "10",
}

// Painter converts a Screen buffer to a styled string.
// Each SSH session gets its own Painter bound to the session's renderer so
// color support is detected per client.
type Painter struct {
	base   lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPainter builds the color styles for renderer r.
// A nil renderer uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := &Painter{
		base:   r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiColors)),
	}
	for c, code := range ansiColors {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// style returns the style for c; unknown colors render plain.
func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.base
}

// Render groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPainter = NewPainter(nil)

// RenderScreen renders s with the process default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Render(s)
}
