package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sophiafu/portfolio/internal/theme"
)

const (
	visitorCookie = "visitor"
	visitorKey    = "visitor"
)

// visitorMiddleware gives every browser a stable anonymous id. Preferences
// hang off it.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || !validVisitorID(id) {
			id = uuid.NewString()
			c.SetCookie(visitorCookie, id, 3600*24*365, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func validVisitorID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

// storage returns the visitor's preference storage. Writes made through it
// are announced to the visitor's other tabs.
func (s *Server) storage(c *gin.Context, tab string) theme.Storage {
	return &theme.NotifyingStorage{
		Storage: s.store.Preferences(visitorID(c)),
		Hub:     s.hub,
		Visitor: visitorID(c),
		Tab:     tab,
	}
}

func (s *Server) currentTheme(c *gin.Context) *theme.Theme {
	return theme.New(s.store.Preferences(visitorID(c)))
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func (s *Server) setupThemeRoutes(r *gin.Engine) {
	// Toggle: flips the stored preference. Works as a plain form post.
	r.POST("/theme/toggle", func(c *gin.Context) {
		th := theme.New(s.storage(c, c.PostForm("tab")))
		th.Toggle()

		if wantsJSON(c) {
			c.JSON(http.StatusOK, gin.H{"theme": th.Value(), "label": th.ToggleLabel(), "icon": th.Icon()})
			return
		}
		back := c.Request.Referer()
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusSeeOther, back)
	})

	// Explicit write of the theme key, as another tab or device would do.
	r.PUT("/theme", func(c *gin.Context) {
		value := c.PostForm("value")
		if value == "" {
			value = c.Query("value")
		}
		if value != theme.Dark && value != theme.Light {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value must be dark or light"})
			return
		}
		if err := s.storage(c, c.Query("tab")).Set(theme.StorageKey, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": value})
	})

	// Server-sent storage events for one tab.
	r.GET("/theme/events", func(c *gin.Context) {
		tab := c.Query("tab")
		th := s.currentTheme(c)

		events := make(chan theme.Event, 4)
		unsubscribe := s.hub.Subscribe(visitorID(c), tab, func(ev theme.Event) {
			select {
			case events <- ev:
			default:
			}
		})
		defer unsubscribe()

		changes := make(chan bool, 4)
		stop := th.Subscribe(func(dark bool) {
			select {
			case changes <- dark:
			default:
			}
		})
		defer stop()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		// The subscription is live, so let the client know before any event.
		c.Status(http.StatusOK)
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case ev := <-events:
				th.HandleStorageEvent(ev)
				return true
			case <-changes:
				c.SSEvent("theme", gin.H{"theme": th.Value(), "label": th.ToggleLabel(), "icon": th.Icon()})
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	})
}
