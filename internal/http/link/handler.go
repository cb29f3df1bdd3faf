package link

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foldedhq/folded/internal/auth"
	"github.com/foldedhq/folded/internal/banking"
)

type Handler struct {
	svc *banking.LinkService
}

func NewHandler(svc *banking.LinkService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/token", h.createToken)
	r.Post("/exchange", h.exchange)
}

// createToken returns the provider's link-token payload. Provider error
// detail is logged but never forwarded to the client.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	token, err := h.svc.CreateLinkToken(r.Context(), session.UserID)
	if err != nil {
		slog.Error("failed to create link token", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(token); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type exchangeRequest struct {
	PublicToken string `json:"public_token"`
}

type exchangeResponse struct {
	PublicTokenExchange string `json:"public_token_exchange"`
}

// exchange saves the caller's bank link and kicks off the initial sync in the
// background. The response does not wait for the sync.
func (h *Handler) exchange(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PublicToken == "" {
		http.Error(w, "public_token is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.ExchangePublicToken(r.Context(), session.UserID, req.PublicToken); err != nil {
		slog.Error("failed to exchange public token", "user_id", session.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(exchangeResponse{PublicTokenExchange: "complete"}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
