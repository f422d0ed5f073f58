package core

import (
	"testing"
)

func switcherTabs() []Entry {
	return makeTabs("Welcome", "Shortcuts", "Scratch 1", "Scratch 2")
}

func typeQuery(s *Switcher, query string) {
	for _, r := range query {
		s.HandleKey(string(r))
	}
}

func TestSwitcherFiltersBySubsequence(t *testing.T) {
	s := NewSwitcher(switcherTabs())
	typeQuery(s, "sct")

	rows := s.Rows()
	for _, title := range rows {
		if title == "Welcome" {
			t.Fatalf("Welcome does not contain 'sct' as a subsequence")
		}
	}
	if len(rows) == 0 {
		t.Fatalf("expected matches for 'sct'")
	}
}

func TestSwitcherRanksCloserTitlesFirst(t *testing.T) {
	s := NewSwitcher(makeTabs("Notes archive", "Note"))
	typeQuery(s, "note")

	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	if rows[0] != "Note" {
		t.Fatalf("closest title should rank first, got %q", rows[0])
	}
}

func TestSwitcherEnterReportsOriginalIndex(t *testing.T) {
	s := NewSwitcher(switcherTabs())
	typeQuery(s, "scratch 2")

	result := s.HandleKey("enter")
	if result.Action != SwitcherActionSelected {
		t.Fatalf("action = %v, want selected", result.Action)
	}
	if result.Index != 3 || result.Title != "Scratch 2" {
		t.Fatalf("selection should use the pre-filter index: %+v", result)
	}
}

func TestSwitcherSpaceKeyExtendsQuery(t *testing.T) {
	s := NewSwitcher(switcherTabs())
	typeQuery(s, "scratch")
	s.HandleKey("space")
	s.HandleKey("1")

	if got := s.Query(); got != "scratch 1" {
		t.Fatalf("query = %q", got)
	}
	rows := s.Rows()
	if len(rows) != 1 || rows[0] != "Scratch 1" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestSwitcherCursorMovesAndClamps(t *testing.T) {
	s := NewSwitcher(switcherTabs())

	if result := s.HandleKey("up"); result.Action != SwitcherActionNone {
		t.Fatalf("up at the top should not move")
	}
	if result := s.HandleKey("down"); result.Action != SwitcherActionMoved {
		t.Fatalf("down should move")
	}
	if result := s.HandleKey("ctrl+k"); result.Action != SwitcherActionMoved {
		t.Fatalf("ctrl+k should move up")
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", s.Cursor())
	}
}

func TestSwitcherBackspaceRestoresRows(t *testing.T) {
	s := NewSwitcher(switcherTabs())
	typeQuery(s, "zzz")
	if len(s.Rows()) != 0 {
		t.Fatalf("expected no matches for zzz")
	}
	if result := s.HandleKey("enter"); result.Action != SwitcherActionNone {
		t.Fatalf("enter with no matches should do nothing")
	}

	s.HandleKey("backspace")
	s.HandleKey("backspace")
	s.HandleKey("backspace")
	if len(s.Rows()) != 4 {
		t.Fatalf("rows = %d after clearing the query, want 4", len(s.Rows()))
	}
}

func TestSwitcherEscCancels(t *testing.T) {
	s := NewSwitcher(switcherTabs())
	if result := s.HandleKey("esc"); result.Action != SwitcherActionCancelled {
		t.Fatalf("esc should cancel")
	}
}
