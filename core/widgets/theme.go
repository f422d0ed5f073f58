package widgets

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorFlash   lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
	colorTabOff  lipgloss.Color = "#7f849c"
)

// Palette accessors for hosts rendering their own chrome around the
// widgets. Reading through these keeps host styles in step with
// SetAccent overrides.
func AccentColor() lipgloss.Color  { return colorAccent }
func MutedColor() lipgloss.Color   { return colorMuted }
func ErrorColor() lipgloss.Color   { return colorError }
func MantleColor() lipgloss.Color  { return colorMantle }
func SurfaceColor() lipgloss.Color { return colorSurface }

// SetAccent overrides the highlight color used for the active tab and
// the rail marker. Called once at startup from configuration.
func SetAccent(hex string) {
	if hex == "" {
		return
	}
	colorAccent = lipgloss.Color(hex)
	rebuildStyles()
}
