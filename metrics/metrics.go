package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics
	PostsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reddit_posts_fetched_total",
			Help: "Total number of Reddit posts fetched",
		},
		[]string{"subreddit", "status"},
	)

	CommentsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reddit_comments_fetched_total",
			Help: "Total number of Reddit comments fetched",
		},
		[]string{"status"},
	)

	WordCloudsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordclouds_rendered_total",
			Help: "Total number of word cloud images rendered",
		},
		[]string{"status"},
	)

	// Memoization cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_cache_hits_total",
			Help: "Total number of fetch cache hits",
		},
		[]string{"lookup"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_cache_misses_total",
			Help: "Total number of fetch cache misses",
		},
		[]string{"lookup"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Initialize metrics with default values
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
