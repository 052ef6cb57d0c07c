package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rupai/backend/internal/api/middleware"
	"github.com/rupai/backend/internal/domain"
)

// UserLister returns all known users.
type UserLister interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UsersHandler handles user listing for the client's user selector.
type UsersHandler struct {
	store UserLister
	log   zerolog.Logger
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(store UserLister, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{store: store, log: log}
}

// The _id key is what the client expects.
type userResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ListUsers handles GET /api/users.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list users")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Name: u.Name})
	}
	middleware.WriteJSON(w, http.StatusOK, out)
}
