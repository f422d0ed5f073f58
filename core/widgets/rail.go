package widgets

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/avern/tabline/core"
)

// railMarker prefixes the active row.
const railMarker = "▍ "

// Rail renders the same headers as Strip, rotated into a vertical
// navigation-rail column. Rows scroll to keep the active header in
// view when the set is taller than the rail.
type Rail struct {
	width  int
	height int
	offset int
}

func NewRail(width int) *Rail {
	return &Rail{width: width}
}

func (r *Rail) Width() int {
	return r.width
}

func (r *Rail) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// View renders one header per row, top-aligned, padded to the rail
// width so the column reads as a solid edge.
func (r *Rail) View(c *core.Controller, flash *Flash, now time.Time) string {
	width := r.width
	if width <= 0 {
		width = 18
	}
	height := r.height
	if height <= 0 {
		height = c.Len()
	}

	r.clampOffset(c)
	rows := make([]string, 0, height)
	for i := r.offset; i < c.Len() && len(rows) < height; i++ {
		rows = append(rows, r.renderRow(i, c.Tabs()[i], c.Selected(), flash, now, width))
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows, "\n")
}

// Click resolves a press at row y (relative to the rail's top).
func (r *Rail) Click(y int, c *core.Controller) tea.Cmd {
	index := r.offset + y
	if y < 0 || index >= c.Len() {
		return nil
	}
	return c.SelectByTap(index)
}

func (r *Rail) renderRow(i int, tab core.Entry, selected int, flash *Flash, now time.Time, width int) string {
	marker := "  "
	style := railTitleStyle
	if i == selected {
		marker = railMarker
		style = railActiveStyle
		if flash != nil && flash.Heat(i, now) > 0.5 {
			style = style.Foreground(colorFlash)
		}
	}
	label := tab.Title
	if tab.Badge != "" {
		label += " " + tab.Badge
	}
	label = ansi.Truncate(label, width-ansi.StringWidth(marker), "…")
	row := railMarkerStyle.Render(marker) + style.Render(label)
	gap := width - ansi.StringWidth(row)
	if gap > 0 {
		row += strings.Repeat(" ", gap)
	}
	return row
}

func (r *Rail) clampOffset(c *core.Controller) {
	height := r.height
	if height <= 0 {
		height = c.Len()
	}
	if c.Selected() < r.offset {
		r.offset = c.Selected()
	}
	if height > 0 && c.Selected() >= r.offset+height {
		r.offset = c.Selected() - height + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}
