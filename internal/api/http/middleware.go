package http

import (
	"net/http"

	"toolrental-backend/internal/logger"

	"github.com/google/uuid"
)

// RequestID tags each request with an id, echoes it in the response
// headers, and logs the request line under it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		logger.WithRequest(requestID).Debug("→ HTTP request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
