package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pankajah/portfolio-site/internal/analytics"
	"github.com/pankajah/portfolio-site/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	recordTimeout   = 5 * time.Second
)

// VisitRecorder persists page visits. *analytics.Store satisfies it.
type VisitRecorder interface {
	Record(ctx context.Context, v analytics.Visit) error
}

// requestID echoes a caller supplied X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// untracked lists path prefixes, relative to the base path, that never count as visits.
var untracked = []string{
	"/static/",
	"/images/",
	"/admin",
	"/api/",
	"/favicon",
	"/privacy",
	"/health",
	"/metrics",
}

// VisitTracker records page views with hashed client addresses. Writes
// happen off the request goroutine; Wait blocks until they finish.
type VisitTracker struct {
	rec     VisitRecorder
	hasher  *analytics.Hasher
	metrics *metrics.Metrics
	pending sync.WaitGroup
}

// NewVisitTracker returns a tracker writing to rec.
func NewVisitTracker(rec VisitRecorder, hasher *analytics.Hasher, m *metrics.Metrics) *VisitTracker {
	return &VisitTracker{rec: rec, hasher: hasher, metrics: m}
}

// Wait blocks until every in-flight visit write has returned.
func (t *VisitTracker) Wait() {
	t.pending.Wait()
}

// sitePath returns path relative to base, or false when path is outside it.
func sitePath(base, path string) (string, bool) {
	if base == "" {
		return path, true
	}
	if path == base {
		return "/", true
	}
	if !strings.HasPrefix(path, base+"/") {
		return "", false
	}
	return strings.TrimPrefix(path, base), true
}

// Middleware records GET page views under base that were served with a 2xx. Requests carrying
// DNT: 1 are never recorded.
func (t *VisitTracker) Middleware(base string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		path, ok := sitePath(base, c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		c.Next()
		if status := c.Writer.Status(); status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		visit := analytics.Visit{
			HashedIP:  t.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		t.pending.Add(1)
		go func() {
			defer t.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := t.rec.Record(ctx, visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
				return
			}
			t.metrics.IncrementVisitsRecorded()
		}()
	}
}
