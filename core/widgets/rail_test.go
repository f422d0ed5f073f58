package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/avern/tabline/core"
)

func TestRailMarksActiveRow(t *testing.T) {
	c := core.NewController(stripTabs("Welcome", "Shortcuts"), core.MoveToLast)
	r := NewRail(18)
	r.SetSize(18, 4)

	lines := strings.Split(ansi.Strip(r.View(c, &Flash{}, time.Now())), "\n")
	if len(lines) != 4 {
		t.Fatalf("row count = %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "▍ Welcome") {
		t.Fatalf("active row missing marker: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  Shortcuts") {
		t.Fatalf("inactive row should be unmarked: %q", lines[1])
	}
}

func TestRailRowsPaddedToWidth(t *testing.T) {
	c := core.NewController(stripTabs("A"), core.MoveToLast)
	r := NewRail(14)
	r.SetSize(14, 3)

	for i, line := range strings.Split(ansi.Strip(r.View(c, &Flash{}, time.Now())), "\n") {
		if w := ansi.StringWidth(line); w != 14 {
			t.Fatalf("row %d width = %d, want 14", i, w)
		}
	}
}

func TestRailClickSelectsRow(t *testing.T) {
	c := core.NewController(stripTabs("One", "Two", "Three"), core.MoveToLast)
	r := NewRail(18)
	r.SetSize(18, 6)
	r.View(c, &Flash{}, time.Now())

	if cmd := r.Click(2, c); cmd == nil {
		t.Fatalf("click on a rail row should select it")
	}
	if c.Selected() != 2 {
		t.Fatalf("selected = %d, want 2", c.Selected())
	}
	if cmd := r.Click(5, c); cmd != nil {
		t.Fatalf("click below the last row should be ignored")
	}
}

func TestRailScrollsToSelection(t *testing.T) {
	c := core.NewController(stripTabs("One", "Two", "Three", "Four", "Five"), core.MoveToLast)
	c.SelectByTap(4)
	r := NewRail(18)
	r.SetSize(18, 2)

	out := ansi.Strip(r.View(c, &Flash{}, time.Now()))
	if !strings.Contains(out, "Five") {
		t.Fatalf("selected row scrolled out of view: %q", out)
	}
	if strings.Contains(out, "One") {
		t.Fatalf("window should have scrolled past the first row: %q", out)
	}

	// Clicks are offset by the scroll window.
	if cmd := r.Click(0, c); cmd == nil {
		t.Fatalf("click should resolve through the scroll offset")
	}
	if c.Selected() != 3 {
		t.Fatalf("selected = %d, want 3", c.Selected())
	}
}
