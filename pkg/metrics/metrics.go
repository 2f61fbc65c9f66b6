package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets covering fast in-memory checks through slow
	// database round trips
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StoreOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of entries held per cache",
		},
		[]string{"cache_name"},
	)

	// Business Metrics
	BookingAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_booking_attempts_total",
			Help: "Total booking attempts by outcome",
		},
		[]string{"status"}, // success, not_found, out_of_availability, slot_conflict, error
	)

	BookingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentorhub_booking_duration_seconds",
			Help:    "End-to-end booking validation and persistence duration",
			Buckets: CustomAPIBuckets,
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_session_transitions_total",
			Help: "Session lifecycle transitions",
		},
		[]string{"from_status", "to_status"},
	)

	FeedbackSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_feedback_submissions_total",
			Help: "Feedback submission attempts by outcome",
		},
		[]string{"status"},
	)

	RequestCreations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_mentorship_request_creations_total",
			Help: "Mentorship request creation attempts by outcome",
		},
		[]string{"status"},
	)

	RequestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_mentorship_request_transitions_total",
			Help: "Mentorship request status transitions",
		},
		[]string{"from_status", "to_status"},
	)

	MatchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_match_queries_total",
			Help: "Total mentor match queries",
		},
		[]string{"status"},
	)

	MatchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mentorhub_match_results_returned",
			Help:    "Number of mentors returned per match query",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_notification_failures_total",
			Help: "Notification intents that failed to deliver (best-effort, never fatal)",
		},
		[]string{"kind"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
