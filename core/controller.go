package core

import tea "github.com/charmbracelet/bubbletea"

// Handle is the selection-tracking handle bound to a fixed tab count,
// mirroring animation primitives that cannot be resized after creation.
// A handle is replaced, never mutated, when the tab count changes;
// same-length reconciles keep the handle identity.
type Handle struct {
	Generation int
	Count      int
}

// Controller owns the selected index over an ordered, resizable tab
// set. All inputs arrive on the UI event loop; every adverse input
// (empty set, out-of-range tap, step at an edge) is a clamped no-op
// rather than an error.
type Controller struct {
	tabs     []Entry
	selected int
	policy   MoveToPolicy
	handle   Handle
}

// NewController builds a controller over the initial tab set. The
// policy is fixed for the controller's lifetime.
func NewController(tabs []Entry, policy MoveToPolicy) *Controller {
	return &Controller{
		tabs:   append([]Entry(nil), tabs...),
		policy: policy,
		handle: Handle{Generation: 1, Count: len(tabs)},
	}
}

func (c *Controller) Tabs() []Entry        { return c.tabs }
func (c *Controller) Len() int             { return len(c.tabs) }
func (c *Controller) Selected() int        { return c.selected }
func (c *Controller) Policy() MoveToPolicy { return c.policy }
func (c *Controller) Handle() Handle       { return c.handle }

// Active returns the selected entry. The second return is false for an
// empty tab set, whose degenerate selected index 0 must never be used
// to index the tabs.
func (c *Controller) Active() (Entry, bool) {
	if len(c.tabs) == 0 {
		return Entry{}, false
	}
	return c.tabs[c.selected], true
}

// Reconcile installs a new tab set. Same-length sets swap content in
// place: no handle replacement, no index movement. A length change
// builds a fresh handle, clamps the selection into the new range, and
// then resolves the move-to policy: MoveToLast drives the selection to
// the newest tab (notifying at scheduling time), MoveToStay leaves the
// clamped index standing. The returned command carries the
// handle-replaced notification and, when a move is pending, the
// attached signal that releases the animated transition.
func (c *Controller) Reconcile(newTabs []Entry) tea.Cmd {
	if len(newTabs) == len(c.tabs) {
		copy(c.tabs, newTabs)
		return nil
	}

	c.tabs = append([]Entry(nil), newTabs...)
	ceiling := len(c.tabs) - 1
	if ceiling < 0 {
		ceiling = 0
	}
	if c.selected > ceiling {
		c.selected = ceiling
	}
	c.handle = Handle{Generation: c.handle.Generation + 1, Count: len(c.tabs)}

	cmds := []tea.Cmd{handleReplacedCmd(c.handle)}
	if c.policy == MoveToLast && len(c.tabs) > 0 {
		if target := len(c.tabs) - 1; target != c.selected {
			c.selected = target
			cmds = append(cmds,
				selectionChangedCmd(target),
				handleAttachedCmd(c.handle.Generation, target),
			)
		}
	}
	return tea.Batch(cmds...)
}

// SelectByTap selects the tapped header. Tapping the already-selected
// tab settles in place without a notification; an index that no longer
// exists (a tap racing a removal) is ignored.
func (c *Controller) SelectByTap(index int) tea.Cmd {
	if index < 0 || index >= len(c.tabs) || index == c.selected {
		return nil
	}
	c.selected = index
	return selectionChangedCmd(index)
}

// Step moves the selection one tab forward or backward, silently
// clamped at either end.
func (c *Controller) Step(direction StepDirection) tea.Cmd {
	switch direction {
	case StepForward:
		return c.SelectByTap(c.selected + 1)
	case StepBackward:
		return c.SelectByTap(c.selected - 1)
	}
	return nil
}
