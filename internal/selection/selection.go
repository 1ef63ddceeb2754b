// Package selection holds the small "at most one thing is active" state
// machines behind hover, detail dialogs, accordions and the project grid.
//
// Values are per page view and are not safe for concurrent use.
package selection

// State of a Selection.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Selection holds zero or one selected value.
type Selection[T comparable] struct {
	value T
	ok    bool
}

// Select makes x the selected value, replacing any previous one.
func (s *Selection[T]) Select(x T) {
	s.value, s.ok = x, true
}

// Clear returns to Idle.
func (s *Selection[T]) Clear() {
	var zero T
	s.value, s.ok = zero, false
}

// Active returns the selected value, if any.
func (s *Selection[T]) Active() (T, bool) {
	return s.value, s.ok
}

// IsActive reports whether x is the selected value.
func (s *Selection[T]) IsActive(x T) bool {
	return s.ok && s.value == x
}

func (s *Selection[T]) State() State {
	if s.ok {
		return Active
	}
	return Idle
}

// Dialog is a modal detail view gated by its own selection.
type Dialog[T comparable] struct {
	Selection[T]
}

// Open shows the dialog for x.
func (d *Dialog[T]) Open(x T) { d.Select(x) }

// Close hides the dialog. Backdrop clicks and the close control both end
// up here.
func (d *Dialog[T]) Close() { d.Clear() }

// IsOpen reports whether the dialog is showing.
func (d *Dialog[T]) IsOpen() bool { return d.State() == Active }

// HandleKey closes the dialog on Escape and reports whether the key was
// consumed.
func (d *Dialog[T]) HandleKey(key string) bool {
	if key != "Escape" || !d.IsOpen() {
		return false
	}
	d.Close()
	return true
}

// ActivatesTrigger reports whether key should open a dialog from a focused
// card or button.
func ActivatesTrigger(key string) bool {
	return key == "Enter" || key == " "
}
