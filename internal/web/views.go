package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sophiafu/portfolio/internal/content"
	"github.com/sophiafu/portfolio/internal/scrollspy"
	"github.com/sophiafu/portfolio/internal/selection"
	"github.com/sophiafu/portfolio/internal/theme"
)

// placeholderImage stands in for missing or broken images.
const placeholderImage = "/static/placeholder.svg"

var templateFuncs = template.FuncMap{
	"imageOr": func(src string) string {
		if strings.TrimSpace(src) == "" {
			return placeholderImage
		}
		return src
	},
	"placeholder": func() string { return placeholderImage },
	"add":         func(a, b int) int { return a + b },
	"pad2":        func(i int) string { return fmt.Sprintf("%02d", i) },
	"join":        strings.Join,
	"imagesFor": func(p content.Project, section string) []content.Image {
		return p.ImagesFor(section)
	},
	"experienceURL": experienceURL,
	"groupEntry":    func(e scrollspy.Entry) bool { return e.Kind == scrollspy.GroupEntry },
}

// navLink is a top navigation link.
type navLink struct {
	Path    string
	Label   string
	Current bool
}

var navLinks = []navLink{
	{Path: "/", Label: "Home"},
	{Path: "/projects", Label: "Projects"},
	{Path: "/art", Label: "Art"},
	{Path: "/resume", Label: "Resume"},
}

// spyView is the scroll-spy navigation as first rendered. The wasm driver
// takes over from here once it has measured the page.
type spyView struct {
	Entries  []scrollspy.Entry
	Sections string
	Groups   string
	SettleMS int
}

func (s *Server) spy(sections []scrollspy.Section, labels map[string]string) spyView {
	// The server cannot measure anything, so the first paint assumes the
	// page is at the top: the first section is active.
	active := ""
	if len(sections) > 0 {
		active = sections[0].ID
	}
	sectionsJSON, _ := json.Marshal(sections)
	groupsJSON, _ := json.Marshal(labels)
	return spyView{
		Entries:  scrollspy.NewNav(sections, labels).Entries(active),
		Sections: string(sectionsJSON),
		Groups:   string(groupsJSON),
		SettleMS: s.cfg.SettleDelayMS,
	}
}

// page builds the data every template shares.
func (s *Server) page(c *gin.Context, title string) gin.H {
	th := s.currentTheme(c)
	classes := theme.Classes{}
	th.Apply(classes)

	links := make([]navLink, len(navLinks))
	for i, l := range navLinks {
		l.Current = l.Path == c.Request.URL.Path
		links[i] = l
	}

	return gin.H{
		"title":       title,
		"profile":     s.catalog.Profile,
		"dark":        classes.Has(theme.DarkClass),
		"themeLabel":  th.ToggleLabel(),
		"themeIcon":   th.Icon(),
		"navLinks":    links,
		"currentPath": c.Request.URL.Path,
	}
}

// intParam parses an optional non-negative integer query parameter.
func intParam(c *gin.Context, key string) (int, bool) {
	v := c.Query(key)
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// listParam splits a comma separated query parameter.
func listParam(c *gin.Context, key string) []string {
	var out []string
	for _, v := range strings.Split(c.Query(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// gridURL encodes a project grid state as a link.
func gridURL(expanded string, tags []string) string {
	q := url.Values{}
	if expanded != "" {
		q.Set("expanded", expanded)
	}
	if len(tags) > 0 {
		q.Set("tags", strings.Join(tags, ","))
	}
	if len(q) == 0 {
		return "/projects"
	}
	return "/projects?" + q.Encode()
}

// cardView is a project card as rendered in the grid.
type cardView struct {
	Project       content.Project
	Number        int
	Expanded      bool
	Tags          selection.TagView
	ExpandURL     string
	CollapseURL   string
	ToggleTagsURL string
}

func buildCards(catalog *content.Catalog, grid *selection.Grid) []cardView {
	expanded, _ := grid.Expanded()
	var cards []cardView
	for _, card := range grid.Visible() {
		p := catalog.Projects[card.Index]

		toggled := toggle(grid.TagsExpandedIDs(), card.ID)
		// Expanding keeps the card's own tag list as it is.
		var own []string
		if grid.TagsExpanded(card.ID) {
			own = []string{card.ID}
		}
		cards = append(cards, cardView{
			Project:       p,
			Number:        card.Index + 1,
			Expanded:      card.Expanded,
			Tags:          grid.Tags(card.ID, p.Tags),
			ExpandURL:     gridURL(card.ID, own),
			CollapseURL:   gridURL("", nil),
			ToggleTagsURL: gridURL(expanded, toggled),
		})
	}
	return cards
}

// toggle adds id to ids or removes it.
func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// featureView is a key feature with its collapsible technical details.
type featureView struct {
	content.Feature
	ID        string
	Open      bool
	ToggleURL string
}

func buildFeatures(p content.Project, open *selection.Accordion) []featureView {
	if p.Implementation == nil {
		return nil
	}
	var out []featureView
	for i, f := range p.Implementation.KeyFeatures {
		id := "feature-" + strconv.Itoa(i)
		q := url.Values{}
		if ids := open.Toggled(id); len(ids) > 0 {
			q.Set("open", strings.Join(ids, ","))
		}
		link := "/projects/" + p.ID
		if len(q) > 0 {
			link += "?" + q.Encode()
		}
		out = append(out, featureView{
			Feature:   f,
			ID:        id,
			Open:      open.IsOpen(id),
			ToggleURL: link + "#" + id,
		})
	}
	return out
}
