package middleware

import (
	"net/http"

	"github.com/worldhappiness/api/internal/api/shared"
	"github.com/worldhappiness/api/internal/platform/logger"
)

// Trace tags each request with a trace ID and derives the
// request-scoped logger carrying it. Downstream code pulls that logger
// from the context, so the condition translator and the auth service
// log with correlation without threading the ID by hand.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := logger.FromContext(ctx).With(
			"trace_id", shared.GetTraceID(ctx),
			"method", r.Method,
			"path", r.URL.Path)
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started", "remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
