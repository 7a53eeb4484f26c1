// Package server wires the rendered portfolio, its JSON API and the
// supporting admin and metrics endpoints into a gin engine.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pankajah/portfolio-site/internal/admin"
	"github.com/pankajah/portfolio-site/internal/config"
	"github.com/pankajah/portfolio-site/internal/metrics"
	"github.com/pankajah/portfolio-site/internal/site"
)

// Deps are the collaborators the server routes to. Tracker and Admin are
// optional; leaving them nil disables visitor tracking and the dashboard.
type Deps struct {
	Renderer *site.Renderer
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Tracker  *VisitTracker
	Admin    *admin.Handler
}

type pages struct {
	index    []byte
	notFound []byte
}

// New builds the gin engine. The page and 404 page are rendered once here
// and served from memory afterwards.
func New(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	if deps.Metrics == nil || deps.Gatherer == nil {
		return nil, errors.New("server: metrics and gatherer are required")
	}

	index, err := deps.Renderer.Bytes()
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	var notFound bytes.Buffer
	if err := deps.Renderer.RenderNotFound(&notFound); err != nil {
		return nil, fmt.Errorf("rendering 404 page: %w", err)
	}
	p := pages{index: index, notFound: notFound.Bytes()}

	opts := deps.Renderer.Options()
	base := opts.BasePath

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID(), deps.Metrics.Middleware())
	if deps.Tracker != nil {
		r.Use(deps.Tracker.Middleware(base))
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	if base != "" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, opts.Home())
		})
	}

	g := r.Group(base)
	g.GET("/", func(c *gin.Context) {
		deps.Metrics.IncrementPageRenders()
		c.Data(http.StatusOK, "text/html; charset=utf-8", p.index)
	})
	g.StaticFS("/static", http.FS(site.Static()))
	g.Static("/images", cfg.ImagesDir)

	api := newAPI(deps.Renderer.Portfolio())
	api.register(g.Group("/api"))

	g.GET("/health", func(c *gin.Context) {
		respondJSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	g.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	g.GET("/privacy", admin.Privacy(deps.Tracker != nil, cfg.VisitorRetentionDays, opts.Home()))

	if deps.Admin != nil {
		deps.Admin.Register(g)
	}

	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(base, c.Request.URL.Path) {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", p.notFound)
	})

	return r, nil
}
