// internal/gateway/router.go
package gateway

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"helper-directory/internal/common/config"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/observability"
)

// NewRouter assembles the full HTTP handler: middleware chain, CORS for
// the browser front end, the API routes under /api/v1, and /metrics.
func NewRouter(h *Handlers, cfg config.ServerConfig, log logger.Logger, obs *observability.Observability) http.Handler {
	r := mux.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(RecoveryMiddleware(log))
	r.Use(LoggingMiddleware(log, obs))

	api := r.PathPrefix("/api/v1").Subrouter()
	h.Register(api)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	})

	return corsHandler.Handler(r)
}
