package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestMetrics records counter and latency per handled request, labelled
// by the chi route pattern so path parameters do not explode cardinality.
func (m *Middlewares) RequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		done := m.Metrics.RequestStarted()
		defer done()

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		m.Metrics.RecordRequest(r.Method, route, rec.statusCode, time.Since(start))
	})
}
