package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/avern/tabline/core"
)

const (
	backAffordance    = "‹ back"
	forwardAffordance = "next ›"
)

// Pager renders the paged content area bound to a controller: the
// active entry's content inside a titled frame, plus the optional
// forward/back step affordances on the bottom line. An empty tab set
// renders an empty frame and zero entries.
type Pager struct {
	width      int
	height     int
	ShowArrows bool

	// Affordance hit zones on the last rendered bottom line.
	backZone    [2]int
	forwardZone [2]int
}

func NewPager(showArrows bool) *Pager {
	return &Pager{ShowArrows: showArrows}
}

func (p *Pager) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *Pager) View(c *core.Controller) string {
	width := p.width
	if width < 8 {
		width = 8
	}
	height := p.height
	if height < 4 {
		height = 4
	}

	innerWidth := width - 4
	contentHeight := height - 2
	if p.ShowArrows {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	title := ""
	body := emptyStyle.Render("no tabs open")
	if entry, ok := c.Active(); ok {
		title = entry.Title
		if entry.Content != nil {
			body = contentStyle.Render(entry.Content(innerWidth, contentHeight))
		} else {
			body = ""
		}
	}

	lines := make([]string, 0, height)
	lines = append(lines, p.frameTop(title, width))
	bodyLines := strings.Split(body, "\n")
	for i := 0; i < contentHeight; i++ {
		inner := ""
		if i < len(bodyLines) {
			inner = bodyLines[i]
		}
		lines = append(lines, p.frameRow(inner, width))
	}
	if p.ShowArrows {
		lines = append(lines, p.frameRow(p.arrowLine(c, innerWidth), width))
	}
	lines = append(lines, p.frameBottom(width))
	return strings.Join(lines, "\n")
}

// Click resolves a press on the pager's arrow line. The y coordinate
// is relative to the pager's top row.
func (p *Pager) Click(x, y int, c *core.Controller) tea.Cmd {
	if !p.ShowArrows {
		return nil
	}
	height := p.height
	if height < 4 {
		height = 4
	}
	if y != height-2 {
		return nil
	}
	if x >= p.backZone[0] && x < p.backZone[1] {
		return c.Step(core.StepBackward)
	}
	if x >= p.forwardZone[0] && x < p.forwardZone[1] {
		return c.Step(core.StepForward)
	}
	return nil
}

// arrowLine renders the step affordances, dimmed at the ends where a
// step is a clamped no-op.
func (p *Pager) arrowLine(c *core.Controller, innerWidth int) string {
	backStyle := arrowStyle
	if c.Selected() == 0 || c.Len() == 0 {
		backStyle = arrowDimStyle
	}
	forwardStyle := arrowStyle
	if c.Len() == 0 || c.Selected() == c.Len()-1 {
		forwardStyle = arrowDimStyle
	}

	back := backStyle.Render(backAffordance)
	forward := forwardStyle.Render(forwardAffordance)
	backW := ansi.StringWidth(back)
	forwardW := ansi.StringWidth(forward)
	gap := innerWidth - backW - forwardW
	if gap < 1 {
		gap = 1
	}

	// Zones are relative to the pager's left edge; the frame row adds
	// a border column and one space of padding.
	p.backZone = [2]int{2, 2 + backW}
	p.forwardZone = [2]int{2 + backW + gap, 2 + backW + gap + forwardW}
	return back + strings.Repeat(" ", gap) + forward
}

func (p *Pager) frameTop(title string, width int) string {
	inner := width - 2
	if title == "" {
		return frameBorderStyle.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	label := " " + frameTitleStyle.Render(ansi.Truncate(title, inner-4, "…")) + " "
	labelW := ansi.StringWidth(label)
	dashes := inner - labelW - 1
	if dashes < 0 {
		dashes = 0
	}
	return frameBorderStyle.Render("╭─") + label + frameBorderStyle.Render(strings.Repeat("─", dashes)+"╮")
}

func (p *Pager) frameRow(inner string, width int) string {
	innerWidth := width - 4
	inner = ansi.Truncate(inner, innerWidth, "")
	gap := innerWidth - ansi.StringWidth(inner)
	if gap > 0 {
		inner += strings.Repeat(" ", gap)
	}
	return frameBorderStyle.Render("│") + " " + inner + " " + frameBorderStyle.Render("│")
}

func (p *Pager) frameBottom(width int) string {
	return frameBorderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}
