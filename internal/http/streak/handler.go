package streak

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/foldedhq/folded/internal/auth"
	"github.com/foldedhq/folded/internal/user"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/reset", h.reset)
}

type streakResponse struct {
	Start     int64 `json:"start"`
	ElapsedMS int64 `json:"elapsedMs"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	u, err := h.svc.Get(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to load streak", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(streakResponse{
		Start:     u.StreakStart.UnixMilli(),
		ElapsedMS: time.Since(u.StreakStart).Milliseconds(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// reset records a manually reported relapse.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := h.svc.ResetStreak(r.Context(), session.UserID, time.Now()); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to reset streak", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
