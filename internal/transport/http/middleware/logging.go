package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v3"

	"backoffice/internal/platform/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Logger writes one ECS request record per request. Health and metrics endpoints are skipped.
func Logger(logger *slog.Logger, level slog.Level) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Level:              level,
		Schema:             httplog.SchemaECS,
		RecoverPanics:      false,
		LogResponseHeaders: []string{"X-Request-ID"},
		Skip: func(r *http.Request, status int) bool {
			return status < 400 && (r.URL.Path == "/healthz" || r.URL.Path == "/metrics")
		},
	})
}

// Metrics records status and latency of every request into the collector.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			collector.Record(recorder.status, time.Since(start))
		})
	}
}
