package notification

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/auth"
	"github.com/foldedhq/folded/internal/notification"
)

type Handler struct {
	svc *notification.Service
}

func NewHandler(svc *notification.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Patch("/{id}/viewed", h.markViewed)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	notifications, err := h.svc.List(r.Context(), session.UserID)
	if err != nil {
		slog.Error("failed to list notifications", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(notifications)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markViewed(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkViewed(r.Context(), session.UserID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to mark notification viewed", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
