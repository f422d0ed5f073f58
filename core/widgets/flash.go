package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlashDecayDuration is how long the freshly selected header glows.
// Intensity starts at 1.0 and decays linearly to 0.0 over this window.
const FlashDecayDuration = 450 * time.Millisecond

// FlashTickInterval is the re-render interval while a flash is live.
const FlashTickInterval = 50 * time.Millisecond

// FlashTickMsg drives re-renders while a flash decays.
type FlashTickMsg struct {
	Time time.Time
}

// FlashTick schedules the next flash re-render.
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg{Time: t}
	})
}

// Flash tracks the glow on the most recently selected header. Only one
// header can be hot at a time; re-igniting moves the glow.
type Flash struct {
	index    int
	ignition time.Time
	lit      bool
}

// Ignite starts (or restarts) the glow on a header.
func (f *Flash) Ignite(index int, now time.Time) {
	f.index = index
	f.ignition = now
	f.lit = true
}

// Heat returns the glow intensity for a header: 1.0 at ignition,
// linearly decaying to 0.0. Headers other than the ignited one are
// always cold.
func (f *Flash) Heat(index int, now time.Time) float64 {
	if !f.lit || index != f.index {
		return 0.0
	}
	elapsed := now.Sub(f.ignition)
	if elapsed >= FlashDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(FlashDecayDuration)
}

// Active reports whether the tick timer should keep running.
func (f *Flash) Active(now time.Time) bool {
	if !f.lit {
		return false
	}
	if now.Sub(f.ignition) >= FlashDecayDuration {
		f.lit = false
		return false
	}
	return true
}
