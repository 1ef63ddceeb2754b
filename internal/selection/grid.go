package selection

import (
	"fmt"

	"github.com/pkg/errors"
)

// CollapsedTagLimit is how many tags a card shows before the "+N" control.
const CollapsedTagLimit = 4

// Card is a visible project card.
type Card struct {
	ID       string
	Index    int
	Expanded bool
}

// Grid coordinates expansion of project cards. At most one card is
// expanded; while it is, the other cards are out of the layout.
type Grid struct {
	ids      []string
	known    map[string]bool
	expanded Selection[string]
	tags     map[string]bool
}

// NewGrid creates a grid over the card ids in display order.
func NewGrid(ids []string) *Grid {
	g := &Grid{
		ids:   append([]string(nil), ids...),
		known: make(map[string]bool, len(ids)),
		tags:  make(map[string]bool),
	}
	for _, id := range ids {
		g.known[id] = true
	}
	return g
}

// Expand expands id, replacing whichever card was expanded. Unknown ids are
// rejected and leave the grid unchanged.
func (g *Grid) Expand(id string) error {
	if !g.known[id] {
		return errors.Errorf("unknown card %q", id)
	}
	g.expanded.Select(id)
	// Every other card just left the layout, so its local tag state is gone.
	// The expanded card stays mounted and keeps its own.
	own := g.tags[id]
	g.resetTags()
	if own {
		g.tags[id] = true
	}
	return nil
}

// Collapse returns all cards to the grid.
func (g *Grid) Collapse() {
	g.expanded.Clear()
	g.resetTags()
}

// Expanded returns the expanded card id, if any.
func (g *Grid) Expanded() (string, bool) {
	return g.expanded.Active()
}

// Visible lists the cards currently in the layout, in original order.
func (g *Grid) Visible() []Card {
	exp, ok := g.expanded.Active()
	cards := make([]Card, 0, len(g.ids))
	for i, id := range g.ids {
		if ok && id != exp {
			continue
		}
		cards = append(cards, Card{ID: id, Index: i, Expanded: ok && id == exp})
	}
	return cards
}

// ToggleTags flips the tag overflow of a visible card.
func (g *Grid) ToggleTags(id string) bool {
	if !g.inLayout(id) {
		return false
	}
	g.tags[id] = !g.tags[id]
	if !g.tags[id] {
		delete(g.tags, id)
	}
	return g.tags[id]
}

// TagsExpanded reports whether id shows all of its tags.
func (g *Grid) TagsExpanded(id string) bool {
	return g.tags[id]
}

// TagsExpandedIDs lists cards with expanded tags, in display order.
func (g *Grid) TagsExpandedIDs() []string {
	var out []string
	for _, id := range g.ids {
		if g.tags[id] {
			out = append(out, id)
		}
	}
	return out
}

func (g *Grid) inLayout(id string) bool {
	if !g.known[id] {
		return false
	}
	exp, ok := g.expanded.Active()
	return !ok || exp == id
}

func (g *Grid) resetTags() {
	g.tags = make(map[string]bool)
}

// TagView is what a card renders for its tag list.
type TagView struct {
	Shown    []string
	Hidden   int
	Expanded bool
	// Control is the label of the toggle: "+N" while collapsed with hidden
	// tags, "Show less" while expanded, empty when no toggle is needed.
	Control string
}

// Tags returns the tag view of card id.
func (g *Grid) Tags(id string, tags []string) TagView {
	return NewTagView(tags, g.TagsExpanded(id))
}

// NewTagView lays out tags for a card.
func NewTagView(tags []string, expanded bool) TagView {
	if len(tags) <= CollapsedTagLimit {
		return TagView{Shown: tags}
	}
	if expanded {
		return TagView{Shown: tags, Expanded: true, Control: "Show less"}
	}
	hidden := len(tags) - CollapsedTagLimit
	return TagView{
		Shown:   tags[:CollapsedTagLimit],
		Hidden:  hidden,
		Control: fmt.Sprintf("+%d", hidden),
	}
}
