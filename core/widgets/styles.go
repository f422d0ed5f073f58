package widgets

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle   lipgloss.Style
	inactiveTabStyle lipgloss.Style
	flashTabStyle    lipgloss.Style
	tabSepStyle      lipgloss.Style
	overflowStyle    lipgloss.Style
	railMarkerStyle  lipgloss.Style
	railTitleStyle   lipgloss.Style
	railActiveStyle  lipgloss.Style
	arrowStyle       lipgloss.Style
	arrowDimStyle    lipgloss.Style
	frameBorderStyle lipgloss.Style
	frameTitleStyle  lipgloss.Style
	contentStyle     lipgloss.Style
	emptyStyle       lipgloss.Style
)

func rebuildStyles() {
	activeTabStyle = lipgloss.NewStyle().
		Background(colorSurface).
		Foreground(colorAccent).
		Bold(true).
		Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
		Background(colorMantle).
		Foreground(colorTabOff).
		Padding(0, 1)
	flashTabStyle = activeTabStyle.Foreground(colorFlash)
	tabSepStyle = lipgloss.NewStyle().
		Foreground(colorBorder).
		Background(colorMantle)
	overflowStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Background(colorMantle)
	railMarkerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	railTitleStyle = lipgloss.NewStyle().Foreground(colorTabOff)
	railActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	arrowStyle = lipgloss.NewStyle().Foreground(colorAccent)
	arrowDimStyle = lipgloss.NewStyle().Foreground(colorBorder)
	frameBorderStyle = lipgloss.NewStyle().Foreground(colorBorder)
	frameTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	contentStyle = lipgloss.NewStyle().Foreground(colorText)
	emptyStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
}

func init() {
	rebuildStyles()
}
