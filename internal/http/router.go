package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/foldedhq/folded/internal/http/device"
	"github.com/foldedhq/folded/internal/http/link"
	"github.com/foldedhq/folded/internal/http/notification"
	"github.com/foldedhq/folded/internal/http/streak"
	"github.com/foldedhq/folded/internal/http/transaction"
	"github.com/foldedhq/folded/internal/http/webhook"
)

func New(
	authSecret []byte,
	webhookV1 *webhook.Handler,
	linkV1 *link.Handler,
	transactionsV1 *transaction.Handler,
	notificationsV1 *notification.Handler,
	streakV1 *streak.Handler,
	deviceV1 *device.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Provider-invoked, no caller authentication.
	router.Route("/webhooks", webhookV1.Routes)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(Authenticator(authSecret))
		r.Use(middleware.AllowContentType("application/json", ""))

		r.Route("/link", linkV1.Routes)
		r.Route("/transactions", transactionsV1.Routes)
		r.Route("/notifications", notificationsV1.Routes)
		r.Route("/streak", streakV1.Routes)
		r.Route("/device", deviceV1.Routes)
	})

	return router
}
