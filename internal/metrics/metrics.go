package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the site
type Metrics struct {
	Requests       *prometheus.CounterVec
	PageRenders    prometheus.Counter
	VisitsRecorded prometheus.Counter
	StaticExports  prometheus.Counter
}

// New creates and registers all Prometheus metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"route", "status"}),
		PageRenders: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_renders_total",
			Help: "Total number of times the portfolio page was rendered",
		}),
		VisitsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_visits_recorded_total",
			Help: "Total number of visits written to the analytics store",
		}),
		StaticExports: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_static_exports_total",
			Help: "Total number of completed static exports",
		}),
	}
}

// IncrementPageRenders increments the page render counter by 1
func (m *Metrics) IncrementPageRenders() {
	m.PageRenders.Inc()
}

// IncrementVisitsRecorded increments the recorded visits counter by 1
func (m *Metrics) IncrementVisitsRecorded() {
	m.VisitsRecorded.Inc()
}

// IncrementStaticExports increments the static export counter by 1
func (m *Metrics) IncrementStaticExports() {
	m.StaticExports.Inc()
}

// Middleware counts requests by matched route so path parameters do not
// explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
