package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SwitcherAction is the outcome of one key handled by the switcher.
type SwitcherAction int

const (
	SwitcherActionNone SwitcherAction = iota
	SwitcherActionMoved
	SwitcherActionSelected
	SwitcherActionCancelled
)

// SwitcherResult reports what a key press did. Index is the tab index
// in the controller's current order and is only meaningful for
// SwitcherActionSelected.
type SwitcherResult struct {
	Action SwitcherAction
	Index  int
	Title  string
}

type switcherRow struct {
	index int
	title string
}

// Switcher is the filter-as-you-type overlay over the open tabs. Typing
// narrows the list; candidates must contain the query as an in-order
// subsequence and are ranked by edit distance to the query, so "stc"
// finds "Scratch 3" and "sessions" prefers the closest title.
type Switcher struct {
	rows     []switcherRow
	filtered []switcherRow
	query    string
	cursor   int
}

// NewSwitcher snapshots the tab order at open time. The overlay is
// short-lived; a reconcile while it is open closes it rather than
// re-filtering against moved indices.
func NewSwitcher(tabs []Entry) *Switcher {
	rows := make([]switcherRow, 0, len(tabs))
	for i, t := range tabs {
		rows = append(rows, switcherRow{index: i, title: t.Title})
	}
	s := &Switcher{rows: rows}
	s.rebuild()
	return s
}

func (s *Switcher) Query() string { return s.query }
func (s *Switcher) Cursor() int   { return s.cursor }

// Rows returns the filtered titles in rank order.
func (s *Switcher) Rows() []string {
	out := make([]string, 0, len(s.filtered))
	for _, r := range s.filtered {
		out = append(out, r.title)
	}
	return out
}

// HandleKey consumes one normalized key name.
func (s *Switcher) HandleKey(keyName string) SwitcherResult {
	switch keyName {
	case "esc":
		return SwitcherResult{Action: SwitcherActionCancelled}
	case "up", "ctrl+k":
		if s.cursor > 0 {
			s.cursor--
			return SwitcherResult{Action: SwitcherActionMoved}
		}
		return SwitcherResult{Action: SwitcherActionNone}
	case "down", "ctrl+j":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
			return SwitcherResult{Action: SwitcherActionMoved}
		}
		return SwitcherResult{Action: SwitcherActionNone}
	case "enter":
		if len(s.filtered) == 0 {
			return SwitcherResult{Action: SwitcherActionNone}
		}
		row := s.filtered[s.cursor]
		return SwitcherResult{Action: SwitcherActionSelected, Index: row.index, Title: row.title}
	case "backspace":
		if s.query != "" {
			s.query = s.query[:len(s.query)-1]
			s.rebuild()
		}
		return SwitcherResult{Action: SwitcherActionNone}
	default:
		if keyName == "space" {
			keyName = " "
		}
		if isPrintableKey(keyName) {
			s.query += keyName
			s.rebuild()
		}
		return SwitcherResult{Action: SwitcherActionNone}
	}
}

type scoredRow struct {
	row      switcherRow
	distance int
}

func (s *Switcher) rebuild() {
	q := strings.ToLower(strings.TrimSpace(s.query))
	if q == "" {
		s.filtered = append(s.filtered[:0:0], s.rows...)
		s.clampCursor()
		return
	}

	scored := make([]scoredRow, 0, len(s.rows))
	for _, row := range s.rows {
		title := strings.ToLower(row.title)
		if !subsequenceMatch(title, q) {
			continue
		}
		scored = append(scored, scoredRow{
			row:      row,
			distance: levenshtein.ComputeDistance(title, q),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].row.index < scored[j].row.index
	})

	s.filtered = s.filtered[:0]
	for _, sc := range scored {
		s.filtered = append(s.filtered, sc.row)
	}
	s.clampCursor()
}

func (s *Switcher) clampCursor() {
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// subsequenceMatch reports whether every query byte appears in order in
// the candidate.
func subsequenceMatch(candidate, query string) bool {
	from := 0
	for i := 0; i < len(query); i++ {
		hit := strings.IndexByte(candidate[from:], query[i])
		if hit < 0 {
			return false
		}
		from += hit + 1
	}
	return true
}

func isPrintableKey(keyName string) bool {
	r := []rune(keyName)
	return len(r) == 1 && r[0] >= ' ' && r[0] <= '~'
}
