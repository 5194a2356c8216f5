package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazecaster/internal/core"
)

// colorStyles maps palette roles to lipgloss styles.
// The four shades follow a classic handheld green palette; accent is the sky.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorDark:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2B2D24")),
	core.ColorMid:     lipgloss.NewStyle().Foreground(lipgloss.Color("#606751")),
	core.ColorLight:   lipgloss.NewStyle().Foreground(lipgloss.Color("#949C81")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3E74BC")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

// StyleFor returns the terminal style for a palette role.
func StyleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(StyleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
