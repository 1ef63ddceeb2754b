package selection

import "sort"

// Accordion tracks which collapsible groups are open. Any number may be.
type Accordion struct {
	open map[string]bool
}

// NewAccordion starts with the given groups open.
func NewAccordion(ids ...string) *Accordion {
	a := &Accordion{open: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if id != "" {
			a.open[id] = true
		}
	}
	return a
}

func (a *Accordion) Open(id string) { a.open[id] = true }
func (a *Accordion) Close(id string) { delete(a.open, id) }

// Toggle flips id and returns its new state.
func (a *Accordion) Toggle(id string) bool {
	if a.open[id] {
		delete(a.open, id)
		return false
	}
	a.open[id] = true
	return true
}

func (a *Accordion) IsOpen(id string) bool { return a.open[id] }

// OpenIDs returns the open groups in sorted order.
func (a *Accordion) OpenIDs() []string {
	ids := make([]string, 0, len(a.open))
	for id := range a.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Toggled returns the open set as it would be after toggling id, without
// changing a. Used to build links.
func (a *Accordion) Toggled(id string) []string {
	next := NewAccordion(a.OpenIDs()...)
	next.Toggle(id)
	return next.OpenIDs()
}
