package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func makeTabs(titles ...string) []Entry {
	tabs := make([]Entry, 0, len(titles))
	for i, title := range titles {
		tabs = append(tabs, Entry{ID: title, Title: title, Position: i})
	}
	return tabs
}

// collectMsgs runs a command tree, flattening nested batches into the
// messages the event loop would deliver.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestReconcileSameLengthKeepsHandleAndIndex(t *testing.T) {
	c := NewController(makeTabs("a", "b", "c"), MoveToLast)
	c.SelectByTap(1)
	before := c.Handle()

	cmd := c.Reconcile(makeTabs("x", "y", "z"))
	if cmd != nil {
		t.Fatalf("same-length reconcile should be silent")
	}
	if c.Handle() != before {
		t.Fatalf("handle replaced on same-length reconcile: %+v -> %+v", before, c.Handle())
	}
	if c.Selected() != 1 {
		t.Fatalf("selected moved on same-length reconcile: %d", c.Selected())
	}
	if got := c.Tabs()[0].Title; got != "x" {
		t.Fatalf("content not swapped: %s", got)
	}
}

func TestReconcileGrowMoveToLast(t *testing.T) {
	c := NewController(makeTabs("a", "b"), MoveToLast)
	oldGen := c.Handle().Generation

	msgs := collectMsgs(c.Reconcile(makeTabs("a", "b", "c")))
	if c.Selected() != 2 {
		t.Fatalf("selection should land on newest tab, got %d", c.Selected())
	}
	if c.Handle().Generation != oldGen+1 || c.Handle().Count != 3 {
		t.Fatalf("handle not rebuilt: %+v", c.Handle())
	}

	var replaced *HandleReplacedMsg
	var changed *SelectionChangedMsg
	var attached *HandleAttachedMsg
	for i := range msgs {
		switch msg := msgs[i].(type) {
		case HandleReplacedMsg:
			replaced = &msg
		case SelectionChangedMsg:
			changed = &msg
		case HandleAttachedMsg:
			attached = &msg
		}
	}
	if replaced == nil || replaced.Handle != c.Handle() {
		t.Fatalf("missing or stale handle-replaced notification: %+v", replaced)
	}
	if changed == nil || changed.Index != 2 {
		t.Fatalf("missing selection notification for policy move: %+v", changed)
	}
	if attached == nil || attached.Generation != c.Handle().Generation || attached.Target != 2 {
		t.Fatalf("attached signal mismatch: %+v", attached)
	}
}

func TestReconcileGrowMoveToStay(t *testing.T) {
	c := NewController(makeTabs("a", "b"), MoveToStay)
	c.SelectByTap(1)

	msgs := collectMsgs(c.Reconcile(makeTabs("a", "b", "c")))
	if c.Selected() != 1 {
		t.Fatalf("stay policy moved the selection to %d", c.Selected())
	}
	for _, msg := range msgs {
		switch msg.(type) {
		case SelectionChangedMsg, HandleAttachedMsg:
			t.Fatalf("stay policy emitted a move notification: %T", msg)
		}
	}
}

func TestReconcileShrinkClampsWithoutNotification(t *testing.T) {
	c := NewController(makeTabs("a", "b", "c", "d"), MoveToStay)
	c.SelectByTap(3)

	msgs := collectMsgs(c.Reconcile(makeTabs("a", "b")))
	if c.Selected() != 1 {
		t.Fatalf("selection not clamped: %d", c.Selected())
	}
	for _, msg := range msgs {
		if _, ok := msg.(SelectionChangedMsg); ok {
			t.Fatalf("clamp-only shrink should not notify")
		}
	}
}

func TestReconcileShrinkMoveToLastFromFront(t *testing.T) {
	c := NewController(makeTabs("a", "b", "c", "d"), MoveToLast)
	if c.Selected() != 0 {
		t.Fatalf("setup: selected = %d", c.Selected())
	}

	msgs := collectMsgs(c.Reconcile(makeTabs("a", "b", "c")))
	if c.Selected() != 2 {
		t.Fatalf("last policy should land on the final tab, got %d", c.Selected())
	}
	found := false
	for _, msg := range msgs {
		if changed, ok := msg.(SelectionChangedMsg); ok {
			found = true
			if changed.Index != 2 {
				t.Fatalf("notified index = %d, want 2", changed.Index)
			}
		}
	}
	if !found {
		t.Fatalf("policy move should notify")
	}
}

func TestReconcileToEmpty(t *testing.T) {
	c := NewController(makeTabs("a", "b"), MoveToLast)
	c.SelectByTap(1)

	msgs := collectMsgs(c.Reconcile(nil))
	if c.Selected() != 0 {
		t.Fatalf("empty set should settle on index 0, got %d", c.Selected())
	}
	if _, ok := c.Active(); ok {
		t.Fatalf("empty set has no active entry")
	}
	if c.Handle().Count != 0 {
		t.Fatalf("handle count = %d, want 0", c.Handle().Count)
	}
	for _, msg := range msgs {
		switch msg.(type) {
		case SelectionChangedMsg, HandleAttachedMsg:
			t.Fatalf("empty reconcile should only replace the handle, got %T", msg)
		}
	}
}

func TestReconcileEmptyToEmptyIsSilent(t *testing.T) {
	c := NewController(nil, MoveToLast)
	if cmd := c.Reconcile(nil); cmd != nil {
		t.Fatalf("empty-to-empty reconcile should be a no-op")
	}
	if c.Handle().Generation != 1 {
		t.Fatalf("handle generation changed: %d", c.Handle().Generation)
	}
}

func TestSelectByTapIgnoresActiveAndOutOfRange(t *testing.T) {
	c := NewController(makeTabs("a", "b", "c"), MoveToLast)

	if cmd := c.SelectByTap(0); cmd != nil {
		t.Fatalf("re-tapping the active tab should be silent")
	}
	if cmd := c.SelectByTap(7); cmd != nil {
		t.Fatalf("out-of-range tap should be ignored")
	}
	if cmd := c.SelectByTap(-1); cmd != nil {
		t.Fatalf("negative tap should be ignored")
	}
	if c.Selected() != 0 {
		t.Fatalf("ignored taps moved the selection to %d", c.Selected())
	}

	msgs := collectMsgs(c.SelectByTap(2))
	if c.Selected() != 2 {
		t.Fatalf("tap did not move the selection: %d", c.Selected())
	}
	if len(msgs) != 1 {
		t.Fatalf("tap should notify exactly once, got %d msgs", len(msgs))
	}
	if changed, ok := msgs[0].(SelectionChangedMsg); !ok || changed.Index != 2 {
		t.Fatalf("unexpected notification: %+v", msgs[0])
	}
}

func TestStepClampsAtEdges(t *testing.T) {
	c := NewController(makeTabs("a", "b"), MoveToLast)

	if cmd := c.Step(StepBackward); cmd != nil {
		t.Fatalf("backward step at the front should clamp silently")
	}
	if cmd := c.Step(StepForward); cmd == nil {
		t.Fatalf("forward step should move")
	}
	if c.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", c.Selected())
	}
	if cmd := c.Step(StepForward); cmd != nil {
		t.Fatalf("forward step at the end should clamp silently")
	}
}

func TestStepOnEmptySet(t *testing.T) {
	c := NewController(nil, MoveToLast)
	if cmd := c.Step(StepForward); cmd != nil {
		t.Fatalf("step on empty set should be a no-op")
	}
	if cmd := c.Step(StepBackward); cmd != nil {
		t.Fatalf("step on empty set should be a no-op")
	}
	if c.Selected() != 0 {
		t.Fatalf("degenerate index moved: %d", c.Selected())
	}
}

func TestAttachedSignalCarriesCurrentGeneration(t *testing.T) {
	c := NewController(makeTabs("a"), MoveToLast)

	first := collectMsgs(c.Reconcile(makeTabs("a", "b")))
	second := collectMsgs(c.Reconcile(makeTabs("a", "b", "c")))

	var firstAttached, secondAttached HandleAttachedMsg
	for _, msg := range first {
		if a, ok := msg.(HandleAttachedMsg); ok {
			firstAttached = a
		}
	}
	for _, msg := range second {
		if a, ok := msg.(HandleAttachedMsg); ok {
			secondAttached = a
		}
	}
	if firstAttached.Generation == secondAttached.Generation {
		t.Fatalf("attached signals should be generation-tagged")
	}
	if secondAttached.Generation != c.Handle().Generation {
		t.Fatalf("latest attached signal should match the live handle")
	}
}
