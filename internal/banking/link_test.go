package banking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/jobs"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/user"
)

type stubProvider struct {
	linkToken *plaid.LinkToken
	item      *plaid.Item
	err       error
}

func (p *stubProvider) CreateLinkToken(context.Context, string) (*plaid.LinkToken, error) {
	return p.linkToken, p.err
}

func (p *stubProvider) ExchangePublicToken(context.Context, string) (*plaid.Item, error) {
	return p.item, p.err
}

type stubLinkSaver struct {
	saved *user.BankLink
	err   error
}

func (s *stubLinkSaver) SaveBankLink(_ context.Context, userID uuid.UUID, accessToken, itemID string) (*user.BankLink, error) {
	if s.err != nil {
		return nil, s.err
	}

	s.saved = &user.BankLink{UserID: userID, AccessToken: accessToken, ItemID: itemID}

	return s.saved, nil
}

type stubQueue struct {
	jobs []jobs.SyncJob
	err  error
}

func (q *stubQueue) PublishSync(_ context.Context, job jobs.SyncJob) error {
	if q.err != nil {
		return q.err
	}

	q.jobs = append(q.jobs, job)

	return nil
}

func TestLinkService_CreateLinkToken(t *testing.T) {
	provider := &stubProvider{linkToken: &plaid.LinkToken{LinkToken: "link-sandbox-token"}}
	svc := banking.NewLinkService(provider, &stubLinkSaver{}, &stubQueue{})

	token, err := svc.CreateLinkToken(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-token", token.LinkToken)
}

func TestLinkService_ExchangePublicToken(t *testing.T) {
	provider := &stubProvider{item: &plaid.Item{AccessToken: "access-token", ItemID: "item_1"}}
	saver := &stubLinkSaver{}
	queue := &stubQueue{}
	svc := banking.NewLinkService(provider, saver, queue)

	userID := uuid.New()

	err := svc.ExchangePublicToken(context.Background(), userID, "public-token")
	require.NoError(t, err)

	require.NotNil(t, saver.saved)
	assert.Equal(t, "access-token", saver.saved.AccessToken)
	assert.Equal(t, "item_1", saver.saved.ItemID)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, userID, queue.jobs[0].UserID)
}

// A full queue must not fail the exchange; the first provider webhook will
// trigger the sync instead.
func TestLinkService_ExchangePublicToken_EnqueueFailureIgnored(t *testing.T) {
	provider := &stubProvider{item: &plaid.Item{AccessToken: "access-token", ItemID: "item_1"}}
	saver := &stubLinkSaver{}
	queue := &stubQueue{err: errors.New("queue full")}
	svc := banking.NewLinkService(provider, saver, queue)

	err := svc.ExchangePublicToken(context.Background(), uuid.New(), "public-token")
	assert.NoError(t, err)
	assert.NotNil(t, saver.saved)
}

func TestLinkService_ExchangePublicToken_ProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("INVALID_PUBLIC_TOKEN")}
	saver := &stubLinkSaver{}
	svc := banking.NewLinkService(provider, saver, &stubQueue{})

	err := svc.ExchangePublicToken(context.Background(), uuid.New(), "public-token")
	assert.Error(t, err)
	assert.Nil(t, saver.saved)
}

func TestLinkService_ExchangePublicToken_SaveError(t *testing.T) {
	provider := &stubProvider{item: &plaid.Item{AccessToken: "access-token", ItemID: "item_1"}}
	queue := &stubQueue{}
	svc := banking.NewLinkService(provider, &stubLinkSaver{err: errors.New("db error")}, queue)

	err := svc.ExchangePublicToken(context.Background(), uuid.New(), "public-token")
	assert.Error(t, err)
	assert.Empty(t, queue.jobs)
}
