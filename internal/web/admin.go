// admin.go - privacy-conscious visitor tracking and the admin dashboard
package web

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Hash IP address for privacy compliance (consistent per IP)
func (s *Server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Middleware to check admin authentication
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untracked lists path prefixes that never count as page views.
var untracked = []string{
	"/static/",
	"/images/",
	"/assets/",
	"/admin/",
	"/theme",
	"/favicon",
	"/privacy",
}

func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go s.trackVisitor(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (s *Server) trackVisitor(ip, userAgent, path string) {
	if err := s.store.RecordVisit(s.hashIP(ip), userAgent, path, time.Now()); err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", s.page(c, "Privacy Policy"))
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
		if userOK && passOK {
			// Set secure cookie (24 hours)
			c.SetCookie("admin_token", s.adminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", s.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		log.Printf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(time.Now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"title":    "Visitors",
			"visitors": visitors,
		})
	})

	// Removes rows past the retention period right away.
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitorData()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
