package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rupai/backend/internal/advisor"
	"github.com/rupai/backend/internal/api/middleware"
	"github.com/rupai/backend/internal/domain"
)

// genericApology is the only failure text a client ever sees for internal
// errors. Raw store and model detail stays in the server logs.
const genericApology = "Sorry, I'm having a little trouble thinking right now."

// Adviser runs one advisory chat turn.
type Adviser interface {
	Advise(ctx context.Context, userID, message string) (string, error)
}

// ChatHandler handles the advisory chat endpoint.
type ChatHandler struct {
	advisor Adviser
	log     zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(advisor Adviser, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{advisor: advisor, log: log}
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Message and userId are required.")
		return
	}

	reply, err := h.advisor.Advise(r.Context(), req.UserID, req.Message)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// respondFailure is the boundary mapping from internal failure kinds to
// public responses. Anything unrecognized is an internal error: logged in
// full, answered with the fixed apology.
func (h *ChatHandler) respondFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, advisor.ErrInvalidRequest):
		middleware.WriteError(w, http.StatusBadRequest, "Message and userId are required.")
	case errors.Is(err, domain.ErrUserNotFound):
		middleware.WriteError(w, http.StatusNotFound, "User not found.")
	default:
		h.log.Error().Err(err).Msg("Advisory request failed")
		middleware.WriteError(w, http.StatusInternalServerError, genericApology)
	}
}
