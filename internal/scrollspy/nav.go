package scrollspy

// EntryKind distinguishes group headers from section links.
type EntryKind int

const (
	// SectionEntry links to a single section. Ungrouped sections are
	// top-level section entries.
	SectionEntry EntryKind = iota
	// GroupEntry is a collapsible group header.
	GroupEntry
)

// Entry is one row of the rendered navigation.
type Entry struct {
	Kind     EntryKind
	ID       string
	Label    string
	Group    string
	Target   string
	Active   bool
	Expanded bool
	Nested   bool
}

type navGroup struct {
	id       string
	label    string
	sections []Section
}

type navItem struct {
	section *Section
	group   *navGroup
}

// Nav lays out sections as a grouped navigation list.
type Nav struct {
	items   []navItem
	groupOf map[string]string
}

// NewNav groups sections by their Group field. Top-level order follows the
// first appearance of each group or ungrouped section. labels maps group ids
// to display labels; missing labels fall back to the id.
func NewNav(sections []Section, labels map[string]string) *Nav {
	n := &Nav{groupOf: make(map[string]string, len(sections))}
	groups := make(map[string]*navGroup)

	for i := range sections {
		s := sections[i]
		n.groupOf[s.ID] = s.Group
		if s.Group == "" {
			n.items = append(n.items, navItem{section: &s})
			continue
		}
		g, ok := groups[s.Group]
		if !ok {
			label := labels[s.Group]
			if label == "" {
				label = s.Group
			}
			g = &navGroup{id: s.Group, label: label}
			groups[s.Group] = g
			n.items = append(n.items, navItem{group: g})
		}
		g.sections = append(g.sections, s)
	}
	return n
}

// ExpandedGroup is the group containing active, or "" when the active
// section is standalone or unknown. At most one group is expanded.
func (n *Nav) ExpandedGroup(active string) string {
	return n.groupOf[active]
}

// Entries returns the flattened navigation for the given active section.
// Children are listed only under the expanded group.
func (n *Nav) Entries(active string) []Entry {
	expanded := n.ExpandedGroup(active)
	var out []Entry
	for _, it := range n.items {
		if it.section != nil {
			out = append(out, Entry{
				Kind:   SectionEntry,
				ID:     it.section.ID,
				Label:  it.section.Label,
				Target: it.section.ID,
				Active: it.section.ID == active,
			})
			continue
		}

		g := it.group
		open := g.id == expanded
		out = append(out, Entry{
			Kind:     GroupEntry,
			ID:       g.id,
			Label:    g.label,
			Group:    g.id,
			Target:   g.sections[0].ID,
			Active:   open,
			Expanded: open,
		})
		if !open {
			continue
		}
		for _, s := range g.sections {
			out = append(out, Entry{
				Kind:   SectionEntry,
				ID:     s.ID,
				Label:  s.Label,
				Group:  g.id,
				Target: s.ID,
				Active: s.ID == active,
				Nested: true,
			})
		}
	}
	return out
}

// Key is a navigation key press.
type Key string

const (
	KeyDown  Key = "ArrowDown"
	KeyUp    Key = "ArrowUp"
	KeyHome  Key = "Home"
	KeyEnd   Key = "End"
	KeyEnter Key = "Enter"
	KeySpace Key = " "
)

// Focus tracks the keyboard-focused row of a flattened navigation list.
type Focus struct {
	Index int
}

// Handle applies key to a list of n entries. Movement never wraps. activate
// is true when the focused entry should be followed.
func (f *Focus) Handle(key Key, n int) (index int, activate bool) {
	if n <= 0 {
		f.Index = 0
		return 0, false
	}
	f.Index = min(max(f.Index, 0), n-1)

	switch key {
	case KeyDown:
		if f.Index < n-1 {
			f.Index++
		}
	case KeyUp:
		if f.Index > 0 {
			f.Index--
		}
	case KeyHome:
		f.Index = 0
	case KeyEnd:
		f.Index = n - 1
	case KeyEnter, KeySpace:
		return f.Index, true
	}
	return f.Index, false
}

// Follow keeps focus on the same row when the list changes shape, as it does
// when another group expands. A row that disappeared leaves the index
// clamped to the new list.
func (f *Focus) Follow(prev, next []Entry) {
	if f.Index >= 0 && f.Index < len(prev) {
		focused := prev[f.Index]
		for i, e := range next {
			if e.Kind == focused.Kind && e.ID == focused.ID {
				f.Index = i
				return
			}
		}
	}
	f.Index = min(max(f.Index, 0), max(len(next)-1, 0))
}
