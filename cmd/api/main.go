package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/foldedhq/folded/internal/banking"
	bankingStore "github.com/foldedhq/folded/internal/banking/store"
	"github.com/foldedhq/folded/internal/config"
	"github.com/foldedhq/folded/internal/database"
	foldedHttp "github.com/foldedhq/folded/internal/http"
	deviceHandler "github.com/foldedhq/folded/internal/http/device"
	linkHandler "github.com/foldedhq/folded/internal/http/link"
	notificationHandler "github.com/foldedhq/folded/internal/http/notification"
	streakHandler "github.com/foldedhq/folded/internal/http/streak"
	txHandler "github.com/foldedhq/folded/internal/http/transaction"
	webhookHandler "github.com/foldedhq/folded/internal/http/webhook"
	"github.com/foldedhq/folded/internal/jobs"
	"github.com/foldedhq/folded/internal/jobs/inmemory"
	"github.com/foldedhq/folded/internal/notification"
	notificationStore "github.com/foldedhq/folded/internal/notification/store"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/push"
	"github.com/foldedhq/folded/internal/user"
	userStore "github.com/foldedhq/folded/internal/user/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	provider := plaid.NewClient(plaid.Config{
		ClientID:       cfg.Plaid.ClientID,
		Secret:         cfg.Plaid.Secret,
		BaseURL:        cfg.Plaid.BaseURL,
		ClientName:     cfg.Plaid.ClientName,
		WebhookURL:     cfg.Plaid.WebhookURL,
		AndroidPackage: cfg.Plaid.AndroidPackage,
		DaysRequested:  cfg.Plaid.DaysRequested,
	})

	queue := inmemory.NewQueue(64)
	defer queue.Close()

	var (
		userService         = user.NewService(userStore.New(db))
		pushClient          = push.New(cfg.Push.Endpoint, cfg.Push.ServerKey)
		notificationService = notification.NewService(notificationStore.New(db), userService, pushClient)
		classifier          = banking.NewClassifier(userService, notificationService)
		feed                = banking.NewChangeFeed(provider)
		bankingService      = banking.NewService(bankingStore.New(db), feed, userService, classifier)
		linkService         = banking.NewLinkService(provider, userService, queue)
	)

	queue.Start(ctx, func(ctx context.Context, job jobs.SyncJob) error {
		return bankingService.Sync(ctx, job.UserID)
	})

	var (
		webhookH      = webhookHandler.NewHandler(bankingService)
		linkH         = linkHandler.NewHandler(linkService)
		transactionH  = txHandler.NewHandler(bankingService)
		notificationH = notificationHandler.NewHandler(notificationService)
		streakH       = streakHandler.NewHandler(userService)
		deviceH       = deviceHandler.NewHandler(userService)
	)

	router := foldedHttp.New(
		[]byte(cfg.Auth.Secret),
		webhookH,
		linkH,
		transactionH,
		notificationH,
		streakH,
		deviceH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
