package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionTransitions(t *testing.T) {
	var s Selection[int]
	assert.Equal(t, Idle, s.State())

	s.Select(2)
	assert.Equal(t, Active, s.State())
	assert.True(t, s.IsActive(2))

	s.Select(5)
	v, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.False(t, s.IsActive(2))

	s.Clear()
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.IsActive(0), "zero value is not selected when idle")
}

func TestDialogEscape(t *testing.T) {
	var d Dialog[string]
	assert.False(t, d.HandleKey("Escape"), "escape on a closed dialog is not consumed")

	d.Open("acme")
	assert.False(t, d.HandleKey("Enter"))
	assert.True(t, d.IsOpen())

	assert.True(t, d.HandleKey("Escape"))
	assert.False(t, d.IsOpen())

	assert.True(t, ActivatesTrigger("Enter"))
	assert.True(t, ActivatesTrigger(" "))
	assert.False(t, ActivatesTrigger("Tab"))
}

func TestAccordion(t *testing.T) {
	a := NewAccordion("results", "")
	assert.True(t, a.Toggle("design"))
	assert.Equal(t, []string{"design", "results"}, a.OpenIDs())

	assert.Equal(t, []string{"design"}, a.Toggled("results"))
	assert.True(t, a.IsOpen("results"), "Toggled does not mutate")

	assert.False(t, a.Toggle("design"))
	a.Close("results")
	assert.Empty(t, a.OpenIDs())
}

func TestGridExpandReplaces(t *testing.T) {
	g := NewGrid([]string{"A", "B", "C"})

	require.NoError(t, g.Expand("B"))
	require.NoError(t, g.Expand("C"))

	cards := g.Visible()
	require.Len(t, cards, 1)
	assert.Equal(t, Card{ID: "C", Index: 2, Expanded: true}, cards[0])

	assert.Error(t, g.Expand("Z"))
	id, ok := g.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "C", id, "unknown id leaves the grid alone")
}

func TestGridCollapseRoundTrip(t *testing.T) {
	g := NewGrid([]string{"A", "B", "C"})
	before := g.Visible()

	require.NoError(t, g.Expand("B"))
	g.Collapse()

	assert.Equal(t, before, g.Visible())
	_, ok := g.Expanded()
	assert.False(t, ok)
}

func TestGridTagStateResets(t *testing.T) {
	g := NewGrid([]string{"A", "B"})

	assert.True(t, g.ToggleTags("A"))
	assert.True(t, g.ToggleTags("B"))
	assert.Equal(t, []string{"A", "B"}, g.TagsExpandedIDs())

	require.NoError(t, g.Expand("A"))
	assert.True(t, g.TagsExpanded("A"), "the expanded card keeps its own tag state")
	assert.False(t, g.TagsExpanded("B"))
	assert.Equal(t, []string{"A"}, g.TagsExpandedIDs())
	assert.False(t, g.ToggleTags("B"), "hidden cards cannot toggle")

	g.Collapse()
	assert.False(t, g.TagsExpanded("A"))

	require.NoError(t, g.Expand("B"))
	assert.False(t, g.TagsExpanded("B"))
}

func TestTagView(t *testing.T) {
	tags := []string{"Go", "Gin", "SQLite", "HTMX", "WASM", "CSS"}

	collapsed := NewTagView(tags, false)
	assert.Equal(t, tags[:4], collapsed.Shown)
	assert.Equal(t, 2, collapsed.Hidden)
	assert.Equal(t, "+2", collapsed.Control)

	expanded := NewTagView(tags, true)
	assert.Equal(t, tags, expanded.Shown)
	assert.Equal(t, "Show less", expanded.Control)

	short := NewTagView(tags[:4], false)
	assert.Len(t, short.Shown, 4)
	assert.Empty(t, short.Control)
}
