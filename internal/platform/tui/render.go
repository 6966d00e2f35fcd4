package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color slots to terminal colors.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorBoardDark:  lipgloss.Color("#00121A"),
	core.ColorBoardLight: lipgloss.Color("#001A1A"),
	core.ColorHead:       lipgloss.Color("#D9FFCC"),
	core.ColorTail:       lipgloss.Color("#148040"),
	core.ColorFood:       lipgloss.Color("#A6B305"),
	core.ColorText:       lipgloss.Color("15"),
	core.ColorDim:        lipgloss.Color("245"),
	core.ColorAlert:      lipgloss.Color("9"),
}

type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[cs.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing both colors are rendered as one run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellStyle{fg: first.Fg, bg: first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = styleFor(key)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
