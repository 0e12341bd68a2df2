package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ContentFetchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_count",
			Help: "Total number of content collection reads",
		},
		[]string{"collection", "operation", "result"}, // result: ok, not_found, error
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	CMSRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_request_duration_seconds",
			Help:    "Content service request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"collection", "status"},
	)

	CacheLookupCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_lookup_count",
			Help: "Content cache lookups by result",
		},
		[]string{"collection", "result"}, // result: hit, miss, error
	)

	InquiryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_received_count",
			Help: "Total number of contact inquiries stored",
		},
		[]string{"project_type"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementContentFetch(collection, operation, result string) {
	ContentFetchCount.WithLabelValues(collection, operation, result).Inc()
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func RecordCMSRequestDuration(collection, status string, duration time.Duration) {
	CMSRequestDuration.WithLabelValues(collection, status).Observe(duration.Seconds())
}

func IncrementCacheLookup(collection, result string) {
	CacheLookupCount.WithLabelValues(collection, result).Inc()
}

func IncrementInquiry(projectType string) {
	InquiryCount.WithLabelValues(projectType).Inc()
}
