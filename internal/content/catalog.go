package content

import "github.com/pkg/errors"

// Navigation holds the neighbors of a project in catalog order.
type Navigation struct {
	Previous *Project
	Next     *Project
}

// ProjectByID finds a project. An unknown id is simply not found.
func (c *Catalog) ProjectByID(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ProjectNavigation returns the projects adjacent to id. The first project
// has no previous, the last has no next, and an unknown id has neither.
func (c *Catalog) ProjectNavigation(id string) Navigation {
	idx := -1
	for i, p := range c.Projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Navigation{}
	}

	var nav Navigation
	if idx > 0 {
		prev := c.Projects[idx-1]
		nav.Previous = &prev
	}
	if idx < len(c.Projects)-1 {
		next := c.Projects[idx+1]
		nav.Next = &next
	}
	return nav
}

// ProjectIDs lists project ids in display order.
func (c *Catalog) ProjectIDs() []string {
	ids := make([]string, len(c.Projects))
	for i, p := range c.Projects {
		ids[i] = p.ID
	}
	return ids
}

// Experience returns the timeline entry at index i.
func (c *Catalog) Experience(i int) (Experience, bool) {
	if i < 0 || i >= len(c.Experiences) {
		return Experience{}, false
	}
	return c.Experiences[i], true
}

// Validate checks the invariants the site relies on.
func (c *Catalog) Validate() (err error) {
	if c.Profile.Name == "" {
		err = errors.New("profile name is required")
		return err
	}

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			err = errors.Errorf("project at index %d missing id", i)
			return err
		}
		if seen[p.ID] {
			err = errors.Errorf("duplicate project id %q", p.ID)
			return err
		}
		seen[p.ID] = true
		if p.Title == "" {
			err = errors.Errorf("project %s missing title", p.ID)
			return err
		}
	}

	for i, e := range c.Experiences {
		if e.Title == "" || e.Organization == "" {
			err = errors.Errorf("experience at index %d needs title and organization", i)
			return err
		}
	}
	return err
}
