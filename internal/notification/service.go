package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/user"
)

var ErrNotFound = errors.New("notification not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	MarkViewed(ctx context.Context, userID, id uuid.UUID, viewedAt time.Time) error
}

// TokenSource looks up and invalidates the user's push device token.
type TokenSource interface {
	DeviceToken(ctx context.Context, userID uuid.UUID) (*user.DeviceToken, error)
	ClearDeviceToken(ctx context.Context, userID uuid.UUID) error
}

// Pusher delivers one push message to a device token.
type Pusher interface {
	Send(ctx context.Context, token, title, body string) error
}

// Service persists notifications and best-effort delivers them as push
// messages. Push failures never surface to callers.
type Service struct {
	repo   Repository
	tokens TokenSource
	push   Pusher
}

func NewService(repo Repository, tokens TokenSource, push Pusher) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		push:   push,
	}
}

// Create stores the notification record and then attempts push delivery. The
// record write is authoritative; delivery is best-effort and self-healing.
func (s *Service) Create(ctx context.Context, n *Notification) error {
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return err
	}

	s.sendPush(ctx, n.UserID)

	return nil
}

// NotifyRelapse implements the classifier's notifier contract.
func (s *Service) NotifyRelapse(ctx context.Context, userID uuid.UUID, value float64, matched []banking.Transaction) error {
	return s.Create(ctx, &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      TypeRelapse,
		CreatedAt: time.Now(),
		Relapse: &RelapsePayload{
			Value:        value,
			Transactions: matched,
		},
	})
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	return s.repo.ListNotifications(ctx, userID)
}

func (s *Service) MarkViewed(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkViewed(ctx, userID, id, time.Now())
}

// sendPush delivers a push message if the user has a registered device token.
// A delivery failure invalidates the stored token so later attempts do not
// repeat it.
func (s *Service) sendPush(ctx context.Context, userID uuid.UUID) {
	token, err := s.tokens.DeviceToken(ctx, userID)
	if err != nil {
		slog.Warn("failed to load device token", "user_id", userID, "error", err)
		return
	}

	if token == nil {
		return
	}

	if err := s.push.Send(ctx, token.Token, "Hello!", "You've got a new message!"); err != nil {
		slog.Warn("push delivery failed, clearing device token", "user_id", userID, "error", err)

		if err := s.tokens.ClearDeviceToken(ctx, userID); err != nil {
			slog.Error("failed to clear device token", "user_id", userID, "error", err)
		}
	}
}
