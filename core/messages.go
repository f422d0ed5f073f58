package core

import tea "github.com/charmbracelet/bubbletea"

// SelectionChangedMsg reports that the selected tab actually changed:
// a user tap on a different tab, a step, or a policy-driven move after
// the tab set grew. Settling in place never emits one.
type SelectionChangedMsg struct {
	Index int
}

// HandleReplacedMsg carries the freshly built selection handle after a
// reconciliation changed the tab count, so the application can drive
// the new handle externally.
type HandleReplacedMsg struct {
	Handle Handle
}

// HandleAttachedMsg is emitted after a fresh handle is installed when a
// policy move is pending. The message loop only delivers it after
// Reconcile returned, so the animated move it triggers can never run
// against a handle that is not yet in place. Receivers must ignore
// stale generations.
type HandleAttachedMsg struct {
	Generation int
	Target     int
}

// StatusMsg updates the host's status line.
type StatusMsg struct {
	Text  string
	IsErr bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func selectionChangedCmd(index int) tea.Cmd {
	return func() tea.Msg { return SelectionChangedMsg{Index: index} }
}

func handleReplacedCmd(h Handle) tea.Cmd {
	return func() tea.Msg { return HandleReplacedMsg{Handle: h} }
}

func handleAttachedCmd(generation, target int) tea.Cmd {
	return func() tea.Msg { return HandleAttachedMsg{Generation: generation, Target: target} }
}
