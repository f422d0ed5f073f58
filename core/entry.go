package core

// Entry describes one tab: a header descriptor (title plus optional
// badge), an opaque content renderer owned by the caller, and the
// insertion index the tab was created at. The controller keeps entries
// in order but never looks inside Content.
type Entry struct {
	ID       string
	Title    string
	Badge    string
	Content  func(width, height int) string
	Position int
}

// MoveToPolicy decides where the selection lands after the tab count
// grows. The zero value is MoveToLast, which is also the default.
type MoveToPolicy int

const (
	// MoveToLast moves the selection to the newest (last) tab.
	MoveToLast MoveToPolicy = iota
	// MoveToStay leaves the clamped selection where it is.
	MoveToStay
)

func (p MoveToPolicy) String() string {
	if p == MoveToStay {
		return "stay"
	}
	return "last"
}

// StepDirection names the two step affordances.
type StepDirection int

const (
	StepForward StepDirection = iota
	StepBackward
)
