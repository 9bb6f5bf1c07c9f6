package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chirp_request_duration_seconds",
		Help:    "HTTP request duration seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	FeedRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_feed_requests_total",
		Help: "Total feed requests",
	}, []string{"feed"})
	FeedEmpty = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_feed_empty_total",
		Help: "Feed requests that produced no visible posts",
	}, []string{"feed"})
)

func init() {
	prometheus.MustRegister(RequestDuration, FeedRequests, FeedEmpty)
}

// Middleware records request durations labeled by route. The registered
// route template is used, not the raw URL, to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// ObserveFeed counts a feed request and whether it came back empty.
func ObserveFeed(feed string, empty bool) {
	FeedRequests.WithLabelValues(feed).Inc()
	if empty {
		FeedEmpty.WithLabelValues(feed).Inc()
	}
}
