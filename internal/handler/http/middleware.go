package http

import (
	"net/http"
	"strings"

	"github.com/23prakashjha/Grocery-App/pkg/httputil"
	"github.com/23prakashjha/Grocery-App/pkg/logger"
)

// HeaderSessionID carries the shopper session identifier.
const HeaderSessionID = "X-Session-ID"

// HeaderUserID carries the authenticated user ID, injected by the gateway.
const HeaderUserID = "X-User-ID"

// SessionRequired rejects requests without a session header and stores the
// session and user IDs in the request context for logging.
func SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if sessionID == "" {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{
					Code:    "INVALID_INPUT",
					Message: HeaderSessionID + " header is required",
				},
			})
			return
		}

		ctx := logger.WithSessionID(r.Context(), sessionID)
		if userID := r.Header.Get(HeaderUserID); userID != "" {
			ctx = logger.WithUserID(ctx, userID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContentTypeJSON enforces a JSON body on mutating requests.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{
						Code:    "UNSUPPORTED_MEDIA_TYPE",
						Message: "Content-Type must be application/json",
					},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(HeaderSessionID))
}

func userID(r *http.Request) string {
	return r.Header.Get(HeaderUserID)
}
