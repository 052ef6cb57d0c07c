// Package api wires the HTTP surface: routes, middleware, and metrics.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rupai/backend/internal/api/handlers"
	"github.com/rupai/backend/internal/api/middleware"
)

// NewRouter builds the full handler chain around the route table.
func NewRouter(chat *handlers.ChatHandler, users *handlers.UsersHandler, log zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/chat", chat.HandleChat).Methods(http.MethodPost)
	apiRouter.HandleFunc("/users", users.ListUsers).Methods(http.MethodGet)

	return middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.Metrics(
					middleware.CORS(r),
				),
			),
		),
	)
}
