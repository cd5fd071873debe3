// Package metrics provides Prometheus metrics for the pontoon table service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pontoon service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - what really matters for the table
	cardsDealt        prometheus.Counter
	cardValues        prometheus.Histogram
	busts             prometheus.Counter
	guardSkips        prometheus.Counter
	promotions        prometheus.Counter
	evictions         prometheus.Counter
	leaderboardEvents prometheus.Counter

	// Operational Health Metrics
	activePlayers   prometheus.Gauge
	bustedPlayers   prometheus.Gauge
	entropyFailures prometheus.Counter
	replayHits      prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pontoon",
		subsystem:        "table",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.cardsDealt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cards_dealt_total",
		Help:      "Total number of cards dealt to players",
	})

	m.cardValues = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "card_value",
		Help:      "Distribution of dealt card values",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	})

	m.busts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "busts_total",
		Help:      "Total number of players that crossed the bust threshold",
	})

	m.guardSkips = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guard_skips_total",
		Help:      "Total number of draws skipped because the player was already busted",
	})

	m.promotions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "promotions_total",
		Help:      "Total number of leaderboard slot writes from promotions",
	})

	m.evictions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evictions_total",
		Help:      "Total number of leaderboard evictions after busts",
	})

	m.leaderboardEvents = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_events_total",
		Help:      "Total number of LeaderboardChanged notifications published",
	})

	m.activePlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_players",
		Help:      "Current number of players still below the bust threshold",
	})

	m.bustedPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "busted_players",
		Help:      "Current number of players permanently busted",
	})

	m.entropyFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entropy_failures_total",
		Help:      "Total number of draws aborted because the entropy source was unavailable",
	})

	m.replayHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "replay_hits_total",
		Help:      "Total number of duplicate draw requests dropped by the replay guard",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordCardDealt records a completed draw and its value.
func RecordCardDealt(value int) {
	globalManager.cardsDealt.Inc()
	globalManager.cardValues.Observe(float64(value))
}

// RecordBust increments the bust counter.
func RecordBust() {
	globalManager.busts.Inc()
}

// RecordGuardSkip increments the guarded no-op counter.
func RecordGuardSkip() {
	globalManager.guardSkips.Inc()
}

// RecordPromotion increments the promotion counter.
func RecordPromotion() {
	globalManager.promotions.Inc()
}

// RecordEviction increments the eviction counter.
func RecordEviction() {
	globalManager.evictions.Inc()
}

// RecordLeaderboardEvent increments the LeaderboardChanged publication counter.
func RecordLeaderboardEvent() {
	globalManager.leaderboardEvents.Inc()
}

// UpdateActivePlayers sets the active players gauge.
func UpdateActivePlayers(count int) {
	globalManager.activePlayers.Set(float64(count))
}

// UpdateBustedPlayers sets the busted players gauge.
func UpdateBustedPlayers(count int) {
	globalManager.bustedPlayers.Set(float64(count))
}

// RecordEntropyFailure increments the entropy failure counter.
func RecordEntropyFailure() {
	globalManager.entropyFailures.Inc()
}

// RecordReplayHit increments the duplicate request counter.
func RecordReplayHit() {
	globalManager.replayHits.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
