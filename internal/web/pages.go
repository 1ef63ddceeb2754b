package web

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sophiafu/portfolio/internal/content"
	"github.com/sophiafu/portfolio/internal/selection"
)

// homeProjects is how many projects the landing page features.
const homeProjects = 3

func (s *Server) setupPageRoutes(r *gin.Engine) {
	r.GET("/", s.home)
	r.GET("/art", s.art)
	r.GET("/projects", s.projects)
	r.GET("/projects/:id", s.project)
	r.GET("/resume", s.resume)
	r.GET("/resume/download", s.resumeDownload)
}

// home renders the landing page. The experience and technologies dialogs
// open from query parameters so they work without scripts.
func (s *Server) home(c *gin.Context) {
	var experience selection.Dialog[int]
	if i, ok := intParam(c, "experience"); ok {
		if _, found := s.catalog.Experience(i); found {
			experience.Open(i)
		}
	}

	var tech selection.Dialog[bool]
	if c.Query("tech") == "1" {
		tech.Open(true)
	}

	featured := s.catalog.Projects
	if len(featured) > homeProjects {
		featured = featured[:homeProjects]
	}

	data := s.page(c, s.catalog.Profile.Name)
	data["projects"] = featured
	data["experiences"] = s.catalog.Experiences
	data["skills"] = s.catalog.Skills
	data["spy"] = s.spy(content.HomeSections, nil)
	data["techOpen"] = tech.IsOpen()
	if i, ok := experience.Active(); ok {
		e, _ := s.catalog.Experience(i)
		data["experience"] = e
		data["experienceIndex"] = i
	}
	c.HTML(http.StatusOK, "home.html", data)
}

// art renders the gallery. hover selects one piece the way pointer hover
// does in the browser.
func (s *Server) art(c *gin.Context) {
	var hovered selection.Selection[int]
	if i, ok := intParam(c, "hover"); ok && i < len(s.catalog.Artworks) {
		hovered.Select(i)
	}

	type artView struct {
		content.Artwork
		Index   int
		Hovered bool
	}
	pieces := make([]artView, len(s.catalog.Artworks))
	for i, a := range s.catalog.Artworks {
		pieces[i] = artView{Artwork: a, Index: i, Hovered: hovered.IsActive(i)}
	}

	data := s.page(c, "Art")
	data["artworks"] = pieces
	c.HTML(http.StatusOK, "art.html", data)
}

func (s *Server) projects(c *gin.Context) {
	grid := selection.NewGrid(s.catalog.ProjectIDs())
	if id := c.Query("expanded"); id != "" {
		if err := grid.Expand(id); err != nil {
			log.Printf("Ignoring expand request: %v", err)
		}
	}
	for _, id := range listParam(c, "tags") {
		grid.ToggleTags(id)
	}

	expanded, isExpanded := grid.Expanded()
	data := s.page(c, "Projects")
	data["cards"] = buildCards(s.catalog, grid)
	data["expanded"] = isExpanded
	data["expandedID"] = expanded
	c.HTML(http.StatusOK, "projects.html", data)
}

// project renders a case study. Unknown ids go back to the landing page.
func (s *Server) project(c *gin.Context) {
	p, ok := s.catalog.ProjectByID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	open := selection.NewAccordion(listParam(c, "open")...)

	data := s.page(c, p.Title)
	data["project"] = p
	data["nav"] = s.catalog.ProjectNavigation(p.ID)
	data["spy"] = s.spy(content.CaseStudySections(p), content.GroupLabels)
	data["features"] = buildFeatures(p, open)
	c.HTML(http.StatusOK, "project.html", data)
}

func (s *Server) resume(c *gin.Context) {
	data := s.page(c, "Resume")
	data["experiences"] = s.catalog.Experiences
	data["skills"] = s.catalog.Skills
	data["hasResume"] = s.resumePath() != ""
	c.HTML(http.StatusOK, "resume.html", data)
}

func (s *Server) resumeDownload(c *gin.Context) {
	path := s.resumePath()
	if path == "" {
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// resumePath returns the resume file on disk, or "" when there is none.
func (s *Server) resumePath() string {
	name := s.catalog.Profile.ResumeFile
	if name == "" {
		return ""
	}
	path := filepath.Join(s.cfg.AssetsDir, filepath.Base(name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}

// experienceURL links to the landing page with one experience dialog open.
func experienceURL(i int) string {
	return "/?experience=" + strconv.Itoa(i) + "#about"
}
