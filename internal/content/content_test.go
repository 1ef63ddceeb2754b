package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() *Catalog {
	return &Catalog{
		Profile: Profile{Name: "test"},
		Projects: []Project{
			{ID: "A", Title: "Alpha"},
			{ID: "B", Title: "Beta"},
			{ID: "C", Title: "Gamma"},
		},
	}
}

func TestProjectNavigation(t *testing.T) {
	c := abc()

	nav := c.ProjectNavigation("B")
	require.NotNil(t, nav.Previous)
	require.NotNil(t, nav.Next)
	assert.Equal(t, "A", nav.Previous.ID)
	assert.Equal(t, "C", nav.Next.ID)

	nav = c.ProjectNavigation("A")
	assert.Nil(t, nav.Previous)
	require.NotNil(t, nav.Next)
	assert.Equal(t, "B", nav.Next.ID)

	nav = c.ProjectNavigation("C")
	assert.Nil(t, nav.Next)

	nav = c.ProjectNavigation("Z")
	assert.Nil(t, nav.Previous)
	assert.Nil(t, nav.Next)
}

func TestProjectByID(t *testing.T) {
	c := abc()
	p, ok := c.ProjectByID("C")
	assert.True(t, ok)
	assert.Equal(t, "Gamma", p.Title)

	_, ok = c.ProjectByID("Z")
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "B", "C"}, c.ProjectIDs())
}

func TestExperienceLookup(t *testing.T) {
	c := Default()
	e, ok := c.Experience(0)
	assert.True(t, ok)
	assert.NotEmpty(t, e.Organization)

	_, ok = c.Experience(-1)
	assert.False(t, ok)
	_, ok = c.Experience(len(c.Experiences))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	dup := abc()
	dup.Projects = append(dup.Projects, Project{ID: "A", Title: "Again"})
	assert.ErrorContains(t, dup.Validate(), "duplicate project id")

	untitled := abc()
	untitled.Projects[1].Title = ""
	assert.ErrorContains(t, untitled.Validate(), "missing title")

	anonymous := abc()
	anonymous.Profile.Name = ""
	assert.Error(t, anonymous.Validate())
}

func TestCaseStudySections(t *testing.T) {
	bare := CaseStudySections(Project{ID: "x"})
	require.Len(t, bare, 2)
	assert.Equal(t, "overview", bare[0].ID)
	assert.Empty(t, bare[0].Group)

	full, ok := Default().ProjectByID("prosperous")
	require.True(t, ok)
	var ids []string
	for _, s := range CaseStudySections(full) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		"overview", "problem-goals", "research-ideation", "design-process",
		"technical-architecture", "implementation", "challenges",
		"results", "lessons-learned", "next-steps",
	}, ids)
}

const sampleYAML = `
profile:
  name: Test Person
  about:
    - hello
projects:
  - id: first
    title: First
    tags: [Go, Gin, SQLite, HTMX, WASM]
    research:
      key_insights: [one]
  - id: second
    title: Second
experiences:
  - title: Engineer
    organization: Somewhere
    period: 2020-2024
    achievements: [shipped things]
skills:
  - name: Languages
    skills: [Go]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test Person", c.Profile.Name)
	require.Len(t, c.Projects, 2)
	assert.NotNil(t, c.Projects[0].Research)
	assert.Nil(t, c.Projects[1].Research, "absent groups stay nil")
	assert.Equal(t, []string{"shipped things"}, c.Experiences[0].Achievements)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "profile: [unterminated"},
		{"missing profile", "projects: []"},
		{"bad project id", "profile: {name: x}\nprojects:\n  - id: Bad Id\n    title: t\n"},
		{"duplicate ids", "profile: {name: x}\nprojects:\n  - {id: a, title: t}\n  - {id: a, title: u}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Projects, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read content file")
}
