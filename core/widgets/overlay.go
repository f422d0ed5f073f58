package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers a bordered card over the base canvas. Rows the
// card does not cover show through unchanged.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, line := range cardLines {
		if w := ansi.StringWidth(line); w > cardWidth {
			cardWidth = w
		}
	}
	x := (width - cardWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(cardLines)) / 2
	if y < 0 {
		y = 0
	}
	for i, line := range cardLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		left := ansi.Truncate(baseLines[row], x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		lineW := ansi.StringWidth(line)
		rest := ansi.TruncateLeft(baseLines[row], x+lineW, "")
		baseLines[row] = left + line + rest
	}
	return strings.Join(baseLines, "\n")
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
		if pad := width - ansi.StringWidth(lines[i]); pad > 0 {
			lines[i] += strings.Repeat(" ", pad)
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}
