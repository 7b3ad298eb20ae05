// internal/gateway/middleware.go
package gateway

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/observability"
)

const requestIDHeader = "X-Request-ID"

// statusRecorder captures the status code for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the caller.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware writes one structured access log line per request and
// records the request in the metrics pipeline.
func LoggingMiddleware(log logger.Logger, obs *observability.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			obs.RecordRequest(r.Context(), r.URL.Path, http.StatusText(rec.status))
			obs.RecordRequestDuration(r.Context(), r.URL.Path, duration)

			log.Info("request completed", map[string]interface{}{
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    rec.status,
				"duration":  duration.String(),
				"requestId": rec.Header().Get(requestIDHeader),
			})
		})
	}
}

// RecoveryMiddleware converts a handler panic into a 500 instead of
// tearing down the connection.
func RecoveryMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("handler panic", map[string]interface{}{
						"path":  r.URL.Path,
						"panic": rec,
					})
					http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
