package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avern/tabline/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	body := m.renderBody()
	if m.switcher != nil {
		body = widgets.RenderPopup(body, m.renderSwitcher(), width, m.bodyHeight())
	}
	status := m.renderStatusBar()
	footer := m.renderFooter()
	view := strings.Join([]string{body, status, footer}, "\n")
	return fitHeight(view, max(1, m.height))
}

func (m Model) renderBody() string {
	now := time.Now()
	if m.axis == widgets.AxisRail {
		rail := m.rail.View(m.ctrl, &m.flash, now)
		pager := m.pager.View(m.ctrl)
		if m.edge == widgets.EdgeRight {
			return lipgloss.JoinHorizontal(lipgloss.Top, pager, rail)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rail, pager)
	}

	strip := m.strip.View(m.ctrl, &m.flash, now)
	pager := m.pager.View(m.ctrl)
	if m.edge == widgets.EdgeBottom {
		return pager + "\n" + strip
	}
	return strip + "\n" + pager
}

func (m Model) renderSwitcher() string {
	accent := lipgloss.NewStyle().Foreground(widgets.AccentColor()).Bold(true)
	var b strings.Builder
	b.WriteString(accent.Render("Switch tab"))
	b.WriteString("\n")
	b.WriteString("> " + m.switcher.Query() + "▌")
	b.WriteString("\n")
	rows := m.switcher.Rows()
	if len(rows) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(widgets.MutedColor()).Italic(true).Render("no matches"))
		return b.String()
	}
	for i, title := range rows {
		b.WriteString("\n")
		if i == m.switcher.Cursor() {
			b.WriteString(accent.Render("▍ " + title))
		} else {
			b.WriteString("  " + title)
		}
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := lipgloss.NewStyle().Foreground(widgets.MutedColor())
	if m.statusErr {
		style = lipgloss.NewStyle().Foreground(widgets.ErrorColor()).Bold(true)
	}
	return renderBar(style, max(1, m.width), msg, widgets.SurfaceColor())
}

func (m Model) renderFooter() string {
	bindings := m.keys.HelpBindings(m.ActiveScope())
	bg := widgets.MantleColor()
	keyStyle := lipgloss.NewStyle().Foreground(widgets.AccentColor()).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(widgets.MutedColor()).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(widgets.MutedColor()).Background(bg).Render("No shortcuts")
	}
	return renderBar(lipgloss.NewStyle(), max(1, m.width), line, bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
