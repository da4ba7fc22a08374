package api

import (
	"net/http"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// corsMiddleware allows any origin, method and header
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "*")
		header.Set("Access-Control-Expose-Headers", tracing.TraceIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// tracingMiddleware reuses caller's trace id when it is a valid UUID, otherwise a new one is generated.
// The id is echoed back in the response
func tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(tracing.TraceIDHeader)
		if parsed, err := uuid.Parse(traceID); err == nil {
			traceID = parsed.String()
		} else {
			traceID = uuid.New().String()
		}

		ctx := tracing.InjectGivenTraceID(r.Context(), traceID)
		w.Header().Set(tracing.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

const unmatchedEndpoint = "unmatched"

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// route pattern keeps label cardinality bounded, unknown paths share one label
		endpoint := unmatchedEndpoint
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}
		status := ww.Status()
		duration := time.Since(start)
		metrics.RecordHttpRequestDuration(duration, endpoint, status)

		log.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("endpoint", endpoint).
			Int("status", status).
			Dur("duration", duration).
			Msg("Request completed")
	})
}
