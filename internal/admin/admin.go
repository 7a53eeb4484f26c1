// Package admin serves the password-protected visitor dashboard and the
// public privacy notice.
package admin

import (
	"bytes"
	"crypto/subtle"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pankajah/portfolio-site/internal/analytics"
)

const (
	cookieName   = "admin_token"
	cookieMaxAge = 3600 * 24
	visitorsPage = 200
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04:05") },
}).ParseFS(templateFS, "templates/*.html"))

// Options configures the admin Handler.
type Options struct {
	Username      string
	Password      string
	BasePath      string
	RetentionDays int
	Store         *analytics.Store
	Hasher        *analytics.Hasher
	// Now defaults to time.Now.
	Now func() time.Time
}

// Handler owns the admin session token and routes.
type Handler struct {
	opts  Options
	token string
}

// New returns a Handler with a fresh session token. It fails when no
// password or store is configured.
func New(opts Options) (*Handler, error) {
	if opts.Password == "" {
		return nil, errors.New("admin password is not configured")
	}
	if opts.Store == nil {
		return nil, errors.New("admin dashboard requires a visitor store")
	}
	if opts.Hasher == nil {
		return nil, errors.New("admin dashboard requires a hasher")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	token, err := analytics.RandomToken()
	if err != nil {
		return nil, err
	}

	h := &Handler{opts: opts, token: token}
	log.Printf("Admin access available at: %s", h.path("/login"))
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", token)
	}
	return h, nil
}

func (h *Handler) path(p string) string {
	return h.opts.BasePath + "/admin" + p
}

// Register mounts the admin routes on g under /admin.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/admin/login", h.loginPage)
	g.POST("/admin/login", h.login)
	g.GET("/admin/logout", h.logout)

	protected := g.Group("/admin")
	protected.Use(h.requireToken())
	protected.GET("/dashboard", h.dashboard)
	protected.GET("/api/stats", h.apiStats)
	protected.GET("/visitors", h.visitors)
	protected.GET("/export/stats", h.exportStats)
	protected.POST("/privacy/cleanup", h.cleanup)
}

func (h *Handler) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			c.Redirect(http.StatusFound, h.path("/login"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) loginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"title": "Admin Login", "action": h.path("/login")})
}

func (h *Handler) login(c *gin.Context) {
	userOK := subtle.ConstantTimeCompare([]byte(c.PostForm("username")), []byte(h.opts.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.PostForm("password")), []byte(h.opts.Password)) == 1
	if !userOK || !passOK {
		log.Printf("Failed admin login attempt from %s", h.opts.Hasher.Hash(c.ClientIP()))
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":  "Admin Login",
			"action": h.path("/login"),
			"error":  "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieName, h.token, cookieMaxAge, h.path(""), "", c.Request.TLS != nil, true)
	log.Printf("Admin login successful from %s", h.opts.Hasher.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, h.path("/dashboard"))
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, h.path(""), "", c.Request.TLS != nil, true)
	log.Printf("Admin logout from %s", h.opts.Hasher.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, h.path("/login"))
}

func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.opts.Store.Stats(c.Request.Context(), h.opts.Now())
	if err != nil {
		log.Printf("Error loading admin stats: %v", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{"title": "Error", "error": "Failed to load statistics"})
		return
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"title":     "Dashboard",
		"stats":     stats,
		"base":      h.path(""),
		"retention": h.opts.RetentionDays,
	})
}

func (h *Handler) apiStats(c *gin.Context) {
	stats, err := h.opts.Store.Stats(c.Request.Context(), h.opts.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) visitors(c *gin.Context) {
	visits, err := h.opts.Store.Recent(c.Request.Context(), visitorsPage)
	if err != nil {
		log.Printf("Error loading visitors: %v", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{"title": "Error", "error": "Failed to load visitors"})
		return
	}
	render(c, http.StatusOK, "visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visits,
		"base":     h.path(""),
	})
}

func (h *Handler) exportStats(c *gin.Context) {
	stats, err := h.opts.Store.Stats(c.Request.Context(), h.opts.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	log.Printf("Admin stats exported by %s", h.opts.Hasher.Hash(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) cleanup(c *gin.Context) {
	if h.opts.RetentionDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "visitor retention is disabled"})
		return
	}
	cutoff := h.opts.Now().AddDate(0, 0, -h.opts.RetentionDays)
	removed, err := h.opts.Store.Cleanup(c.Request.Context(), cutoff)
	if err != nil {
		log.Printf("Error cleaning up visitor data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}

// Privacy serves the public privacy notice describing what is tracked.
func Privacy(trackingEnabled bool, retentionDays int, home string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"tracking":  trackingEnabled,
			"retention": retentionDays,
			"home":      home,
		})
	}
}

func render(c *gin.Context, status int, name string, data gin.H) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		c.String(http.StatusInternalServerError, fmt.Sprintf("rendering %s failed", name))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
