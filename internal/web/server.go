// Package web serves the portfolio over HTTP.
package web

import (
	"crypto/rand"
	"embed"
	"encoding/hex"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sophiafu/portfolio/internal/config"
	"github.com/sophiafu/portfolio/internal/content"
	"github.com/sophiafu/portfolio/internal/store"
	"github.com/sophiafu/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds everything the handlers share. The catalog is read-only.
type Server struct {
	cfg     config.Config
	catalog *content.Catalog
	store   *store.Store
	hub     *theme.Hub

	adminToken  string
	hashingSalt string

	engine *gin.Engine
}

// New builds the server and registers every route.
func New(cfg config.Config, catalog *content.Catalog, st *store.Store) (*Server, error) {
	s := &Server{
		cfg:         cfg,
		catalog:     catalog,
		store:       st,
		hub:         theme.NewHub(),
		adminToken:  generateToken(),
		hashingSalt: generateToken(),
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))
	r.Static("/images", cfg.ImagesDir)
	r.Static("/assets", cfg.AssetsDir)

	r.Use(visitorMiddleware())
	r.Use(s.visitorTrackingMiddleware())

	s.engine = r
	s.setupPageRoutes(r)
	s.setupThemeRoutes(r)
	s.setupAdminRoutes(r)

	for _, w := range cfg.Warnings() {
		log.Println("WARNING:", w)
	}
	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts retention cleanup and serves until the listener fails.
func (s *Server) Run() error {
	go s.cleanupOldVisitorData()
	return s.engine.Run(":" + s.cfg.Port)
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

func (s *Server) cleanupOldVisitorData() {
	rowsDeleted, err := s.store.CleanupVisits(time.Now().Add(-store.RetentionPeriod))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if rowsDeleted > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", rowsDeleted)
	}
}
