package middleware

import (
	"log/slog"
	"net/http"

	"github.com/23prakashjha/Grocery-App/pkg/logger"
)

// RequestLogger builds a request-scoped logger enriched with correlation_id,
// session_id, user_id, trace_id, and span_id, and stores it in the request
// context for handlers to retrieve with logger.FromContext.
//
// Mount after RequestLogging (correlation_id) and Tracing (span context).
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if sid := r.Header.Get("X-Session-ID"); sid != "" {
				ctx = logger.WithSessionID(ctx, sid)
			}
			if uid := r.Header.Get("X-User-ID"); uid != "" {
				ctx = logger.WithUserID(ctx, uid)
			}

			enriched := logger.Enrich(ctx, base)
			ctx = logger.NewContext(ctx, enriched)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
