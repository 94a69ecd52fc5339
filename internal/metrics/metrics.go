package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_admin_api_requests_total",
			Help: "Total number of REST API calls made by the admin client.",
		},
		[]string{"code", "method", "endpoint"},
	)
	apiRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_admin_api_request_duration_seconds",
			Help:    "Duration of REST API calls in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_admin_api_requests_in_flight",
			Help: "Current number of REST API calls awaiting a response.",
		},
	)

	lowStockAlerts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_admin_low_stock_alerts",
			Help: "Number of products currently in the cached low-stock list.",
		},
	)
	alertRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_admin_alert_refreshes_total",
			Help: "Low-stock list refreshes by outcome (applied, stale, error).",
		},
		[]string{"result"},
	)
	alertRemovals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_admin_alert_removals_total",
			Help: "Products removed from the low-stock list ahead of a full refresh, by stage.",
		},
		[]string{"stage"},
	)
	realtimeEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_admin_realtime_events_total",
			Help: "Socket.io events received, by event name.",
		},
		[]string{"event"},
	)
	adminRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_admin_http_requests_total",
			Help: "Total number of requests served by the admin HTTP endpoint.",
		},
		[]string{"code", "method", "path"},
	)
	adminRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_admin_http_request_duration_seconds",
			Help:    "Duration of admin HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	realtimeConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_admin_realtime_connected",
			Help: "1 while the Socket.io channel is connected.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// InstrumentTransport records count, latency and in-flight API calls.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {

		start := time.Now()
		apiRequestsInFlight.Inc()

		endpoint := EndpointPattern(r.URL.Path)
		code := "error"

		defer func() {

			apiRequestsTotal.WithLabelValues(code, r.Method, endpoint).Inc()
			apiRequestsDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
			apiRequestsInFlight.Dec()

		}()

		resp, err := next.RoundTrip(r)
		if err == nil {
			code = strconv.Itoa(resp.StatusCode)
		}

		return resp, err
	})
}

// EndpointPattern collapses numeric path segments so ids do not explode label cardinality.
func EndpointPattern(path string) string {
	segments := strings.Split(path, "/")

	for i, segment := range segments {
		if segment == "" {
			continue
		}

		if _, err := strconv.ParseInt(segment, 10, 64); err == nil {
			segments[i] = "{id}"
		}
	}

	return strings.Join(segments, "/")
}

func SetLowStockAlerts(count int) {
	lowStockAlerts.Set(float64(count))
}

func ObserveAlertRefresh(result string) {
	alertRefreshes.WithLabelValues(result).Inc()
}

func ObserveAlertRemoval(stage string) {
	alertRemovals.WithLabelValues(stage).Inc()
}

func ObserveRealtimeEvent(event string) {
	realtimeEvents.WithLabelValues(event).Inc()
}

func SetRealtimeConnected(connected bool) {
	if connected {
		realtimeConnected.Set(1)
		return
	}

	realtimeConnected.Set(0)
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware instruments the admin HTTP endpoint.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		rw := newResponseWriter(w)

		defer func() {

			pathPattern := EndpointPattern(r.URL.Path)

			adminRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, pathPattern).Inc()
			adminRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(time.Since(start).Seconds())

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
