package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foldedhq/folded/internal/plaid"
)

// Pipeline runs the sync pipeline for one webhook delivery.
type Pipeline interface {
	ProcessWebhook(ctx context.Context, payload plaid.WebhookPayload) error
}

type Handler struct {
	pipeline Pipeline
}

func NewHandler(pipeline Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/banking", h.receive)
}

// receive always acknowledges the provider with 200 "ok". Internal failures
// are logged and surface through monitoring; the provider retriggers the
// pipeline on its next delivery anyway.
func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var payload plaid.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("failed to decode webhook payload", "error", err)
	} else if err := h.pipeline.ProcessWebhook(r.Context(), payload); err != nil {
		slog.Error("webhook processing failed",
			"item_id", payload.ItemID,
			"webhook_type", payload.WebhookType,
			"error", err,
		)
	}

	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Error("failed to write webhook response", "error", err)
	}
}
