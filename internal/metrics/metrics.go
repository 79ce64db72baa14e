package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "miniapp_api_request_duration_seconds",
			Help:    "Duration of calls to the REST service in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"method", "resource", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "miniapp_http_request_duration_seconds",
			Help:    "Duration of Mini App HTTP requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)

	ScreenMounts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miniapp_screen_mounts_total",
			Help: "Number of screen mounts by screen",
		},
		[]string{"screen"},
	)
)

func RecordAPIRequest(method, resource, status string, d time.Duration) {
	APIRequestDuration.WithLabelValues(method, resource, status).Observe(d.Seconds())
}

func IncScreenMount(screen string) {
	ScreenMounts.WithLabelValues(screen).Inc()
}

// Middleware records inbound request latency labelled by the chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
