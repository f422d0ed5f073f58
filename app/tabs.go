package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avern/tabline/core"
	"github.com/avern/tabline/internal/session"
)

// NewTextTab builds a tab whose content is static text clipped to the
// pager's viewport.
func NewTextTab(title, text string, position int) core.Entry {
	return core.Entry{
		ID:       uuid.NewString(),
		Title:    title,
		Content:  textContent(text),
		Position: position,
	}
}

// NewScratchTab builds one of the numbered tabs added at runtime.
func NewScratchTab(n, position int) core.Entry {
	title := fmt.Sprintf("Scratch %d", n)
	text := fmt.Sprintf("Scratch pad %d.\n\nAdded at runtime; close with x.", n)
	return core.Entry{
		ID:       uuid.NewString(),
		Title:    title,
		Badge:    "●",
		Content:  textContent(text),
		Position: position,
	}
}

// DefaultTabs is the tab set used when no session is persisted.
func DefaultTabs() []core.Entry {
	return []core.Entry{
		NewTextTab("Welcome", welcomeText, 0),
		NewTextTab("Shortcuts", shortcutsText, 1),
	}
}

// EntriesFromSession rebuilds the tab set from persisted rows.
func EntriesFromSession(tabs []session.Tab) []core.Entry {
	entries := make([]core.Entry, 0, len(tabs))
	for _, t := range tabs {
		text := fmt.Sprintf("Restored tab %q.\n\nOpened %s.", t.Title, t.CreatedAt.Format("2006-01-02 15:04"))
		entries = append(entries, core.Entry{
			ID:       t.ID,
			Title:    t.Title,
			Content:  textContent(text),
			Position: t.Position,
		})
	}
	return entries
}

// SessionRows converts the live tab set back to persistable rows.
func SessionRows(entries []core.Entry) []session.Tab {
	rows := make([]session.Tab, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, session.Tab{ID: e.ID, Title: e.Title, Position: e.Position})
	}
	return rows
}

func textContent(text string) func(width, height int) string {
	return func(width, height int) string {
		lines := strings.Split(text, "\n")
		if len(lines) > height {
			lines = lines[:height]
		}
		return strings.Join(lines, "\n")
	}
}

const welcomeText = `Tabline demo.

The tab strip above is bound to a controller whose tab set can change
at runtime. Add tabs with n, close the active one with x, and watch
the selection follow the configured move-to policy.`

const shortcutsText = `n          add a tab
x          close the active tab
1-9        jump straight to a tab
left/right step through tabs
/          fuzzy tab switcher
a          toggle strip/rail layout
ctrl+r     reset the saved session
q          quit`
