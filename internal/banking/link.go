package banking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/jobs"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/user"
)

// Provider is the subset of the provider API used by the linking flow.
type Provider interface {
	CreateLinkToken(ctx context.Context, userID string) (*plaid.LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*plaid.Item, error)
}

// LinkSaver persists provider credentials onto a user's account link.
type LinkSaver interface {
	SaveBankLink(ctx context.Context, userID uuid.UUID, accessToken, itemID string) (*user.BankLink, error)
}

// LinkService drives the provider's account-linking flow.
type LinkService struct {
	provider Provider
	links    LinkSaver
	queue    jobs.Publisher
}

func NewLinkService(provider Provider, links LinkSaver, queue jobs.Publisher) *LinkService {
	return &LinkService{
		provider: provider,
		links:    links,
		queue:    queue,
	}
}

// CreateLinkToken returns the provider's link-token payload for the caller.
func (s *LinkService) CreateLinkToken(ctx context.Context, userID uuid.UUID) (*plaid.LinkToken, error) {
	token, err := s.provider.CreateLinkToken(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("creating link token: %w", err)
	}

	return token, nil
}

// ExchangePublicToken trades the temporary public token for the durable
// credential, stores it on the caller's account link and enqueues the initial
// sync. The sync runs in the background; its outcome does not affect the
// exchange result, and a lost enqueue is recovered by the provider's first
// webhook.
func (s *LinkService) ExchangePublicToken(ctx context.Context, userID uuid.UUID, publicToken string) error {
	item, err := s.provider.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return fmt.Errorf("exchanging public token: %w", err)
	}

	if _, err := s.links.SaveBankLink(ctx, userID, item.AccessToken, item.ItemID); err != nil {
		return fmt.Errorf("saving bank link: %w", err)
	}

	if err := s.queue.PublishSync(ctx, jobs.SyncJob{
		JobID:  uuid.New(),
		UserID: userID,
	}); err != nil {
		slog.Error("failed to enqueue initial sync", "user_id", userID, "error", err)
	}

	return nil
}
