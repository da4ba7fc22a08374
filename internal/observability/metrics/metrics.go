package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	registerOnce                   sync.Once
	metricsRouter                  *chi.Mux
	httpRequestDurationHistogram   *prometheus.HistogramVec
	clientRequestDurationHistogram *prometheus.HistogramVec
	predictionLatency              *prometheus.HistogramVec
	chainClientLatency             *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	walletCheckCounter             *prometheus.CounterVec
	orphanedChecksCounter          prometheus.Counter
	pendingChecksGauge             prometheus.Gauge
	dbLatency                      *prometheus.HistogramVec
)

// Init initializes the metrics package and serves /metrics on the given host:port address.
func Init(metricsAddr string) {
	once.Do(func() {
		initMetricsRouter(metricsAddr)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsAddr string) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
// Recorders call it lazily so packages can be used (and tested) without metrics server
func registerMetrics() {
	registerOnce.Do(func() {
		defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

		httpRequestDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of http request durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"endpoint", "status"},
		)

		// client requests are the ones sending to other service
		clientRequestDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "client_request_duration_seconds",
				Help:    "Histogram of outgoing client request durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"baseurl", "method", "path", "status"},
		)

		predictionLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prediction_client_latency_seconds",
				Help:    "Histogram of prediction client durations in seconds split by fault kind.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"status", "fault"},
		)

		chainClientLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chain_client_latency_seconds",
				Help:    "Histogram of chain client durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"method", "status"},
		)

		pollerDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "poller_duration_seconds",
				Help:    "Histogram of poller durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"type", "status"},
		)

		walletCheckCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_check_total",
				Help: "Number of wallet checks split by the step they finished on and outcome",
			},
			[]string{"step", "status"},
		)

		orphanedChecksCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_check_orphaned_total",
				Help: "Number of wallet check records left pending after a downstream failure",
			},
		)

		pendingChecksGauge = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wallet_check_pending_count",
				Help: "Number of wallet check records without a verdict",
			},
		)

		dbLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "db_latency_seconds",
				Help: "DB latency in seconds splitted by method and execution status",
			},
			[]string{"method", "status"},
		)

		prometheus.MustRegister(
			httpRequestDurationHistogram,
			clientRequestDurationHistogram,
			predictionLatency,
			chainClientLatency,
			pollerDurationHistogram,
			walletCheckCounter,
			orphanedChecksCounter,
			pendingChecksGauge,
			dbLatency,
		)
	})
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	registerMetrics()
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordChainClientLatency(d time.Duration, method string, failure bool) {
	registerMetrics()
	chainClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

// RecordPredictionLatency records prediction call, fault is "none" on success
func RecordPredictionLatency(d time.Duration, failure bool, fault string) {
	registerMetrics()
	predictionLatency.WithLabelValues(outcome(failure).String(), fault).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, endpoint string, statusCode int) {
	registerMetrics()
	httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(d.Seconds())
}

// RecordWalletCheck counts a finished wallet check by the last step it reached
func RecordWalletCheck(step string, failure bool) {
	registerMetrics()
	walletCheckCounter.WithLabelValues(step, outcome(failure).String()).Inc()
}

func IncOrphanedWalletChecks() {
	registerMetrics()
	orphanedChecksCounter.Inc()
}

func RecordPendingWalletChecks(count int64) {
	registerMetrics()
	pendingChecksGauge.Set(float64(count))
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	registerMetrics()
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
