package widgets

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/avern/tabline/core"
)

// Axis selects how the tab headers are laid out.
type Axis int

const (
	// AxisRow renders headers as a horizontal strip.
	AxisRow Axis = iota
	// AxisRail renders headers as a vertical rail.
	AxisRail
)

// Edge is the side of the content the header strip or rail renders on.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

const (
	// maxTitleWidth caps the display width of one header title.
	maxTitleWidth = 20
	// overflowWidth is the visual width of "◀ " and " ▶".
	overflowWidth = 2
	separator     = "│"
)

// zone records where a clickable element landed during the last render.
type zone struct {
	startX, endX int
	index        int
	scrollLeft   bool
	scrollRight  bool
}

// Strip renders the horizontal header row bound to a controller. It
// keeps the active header visible inside a scroll window when the set
// does not fit, and resolves mouse clicks through zones measured while
// rendering.
type Strip struct {
	width  int
	offset int
	zones  []zone
}

func NewStrip() *Strip {
	return &Strip{}
}

func (s *Strip) SetWidth(width int) {
	s.width = width
}

// View renders one line of headers. The degenerate empty tab set
// renders an empty bar rather than nothing so the layout holds.
func (s *Strip) View(c *core.Controller, flash *Flash, now time.Time) string {
	s.zones = s.zones[:0]
	width := s.width
	if width <= 0 {
		width = 80
	}
	if c.Len() == 0 {
		return fillBar("", width)
	}

	labels := make([]string, c.Len())
	widths := make([]int, c.Len())
	total := 0
	for i, tab := range c.Tabs() {
		labels[i] = s.renderHeader(i, tab, c.Selected(), flash, now)
		widths[i] = ansi.StringWidth(labels[i])
		total += widths[i]
		if i > 0 {
			total += ansi.StringWidth(separator)
		}
	}

	needsScroll := total > width
	if needsScroll {
		s.ensureActiveVisible(c.Selected(), widths, width)
	} else {
		s.offset = 0
	}

	var b strings.Builder
	cursor := 0
	if needsScroll && s.offset > 0 {
		b.WriteString(overflowStyle.Render("◀ "))
		s.zones = append(s.zones, zone{startX: cursor, endX: cursor + overflowWidth, index: -1, scrollLeft: true})
		cursor += overflowWidth
	}

	sepWidth := ansi.StringWidth(separator)
	last := s.offset - 1
	for i := s.offset; i < len(labels); i++ {
		reserve := 0
		if needsScroll && i < len(labels)-1 {
			reserve = overflowWidth
		}
		if i > s.offset && cursor+sepWidth+widths[i]+reserve > width {
			break
		}
		if i > s.offset {
			b.WriteString(tabSepStyle.Render(separator))
			cursor += sepWidth
		}
		s.zones = append(s.zones, zone{startX: cursor, endX: cursor + widths[i], index: i})
		b.WriteString(labels[i])
		cursor += widths[i]
		last = i
	}

	if needsScroll && last < len(labels)-1 {
		s.zones = append(s.zones, zone{startX: cursor, endX: cursor + overflowWidth, index: -1, scrollRight: true})
		b.WriteString(overflowStyle.Render(" ▶"))
		cursor += overflowWidth
	}

	return fillBar(b.String(), width)
}

// Click resolves a press at column x against the zones of the last
// render. Overflow arrows shift the scroll window; a header tap goes
// through the controller, which ignores taps on the active header.
func (s *Strip) Click(x int, c *core.Controller) tea.Cmd {
	for _, z := range s.zones {
		if x < z.startX || x >= z.endX {
			continue
		}
		switch {
		case z.scrollLeft:
			if s.offset > 0 {
				s.offset--
			}
			return nil
		case z.scrollRight:
			if s.offset < c.Len()-1 {
				s.offset++
			}
			return nil
		default:
			return c.SelectByTap(z.index)
		}
	}
	return nil
}

func (s *Strip) renderHeader(i int, tab core.Entry, selected int, flash *Flash, now time.Time) string {
	title := ansi.Truncate(tab.Title, maxTitleWidth, "…")
	label := fmt.Sprintf("%d:%s", i+1, title)
	if tab.Badge != "" {
		label += " " + tab.Badge
	}
	if i != selected {
		return inactiveTabStyle.Render(label)
	}
	if flash != nil && flash.Heat(i, now) > 0.5 {
		return flashTabStyle.Render(label)
	}
	return activeTabStyle.Render(label)
}

// ensureActiveVisible advances the scroll window until the active
// header fits, mirroring how the window was measured during View.
func (s *Strip) ensureActiveVisible(selected int, widths []int, width int) {
	if selected < s.offset {
		s.offset = selected
	}
	if s.offset > len(widths)-1 {
		s.offset = len(widths) - 1
	}
	sepWidth := ansi.StringWidth(separator)
	for s.offset < selected {
		used := 0
		if s.offset > 0 {
			used += overflowWidth
		}
		fits := false
		for i := s.offset; i <= selected; i++ {
			if i > s.offset {
				used += sepWidth
			}
			used += widths[i]
		}
		if selected < len(widths)-1 {
			used += overflowWidth
		}
		if used <= width {
			fits = true
		}
		if fits {
			break
		}
		s.offset++
	}
}

// fillBar pads a rendered line with the bar background out to width.
func fillBar(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	gap := width - ansi.StringWidth(line)
	if gap > 0 {
		line += tabSepStyle.Render(strings.Repeat(" ", gap))
	}
	return line
}
