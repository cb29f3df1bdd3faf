package banking_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/user"
)

// fakeStore is an in-memory Repository with transactional semantics: staged
// writes only become visible on Commit.
type fakeStore struct {
	mu           sync.Mutex
	transactions map[string]banking.Transaction
	cursor       *string

	failUpserts bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{transactions: make(map[string]banking.Transaction)}
}

func (s *fakeStore) BeginReconcile(_ context.Context, _ uuid.UUID) (banking.ReconcileTx, error) {
	return &fakeTx{store: s}, nil
}

func (s *fakeStore) ListTransactions(_ context.Context, _ uuid.UUID, _ banking.ListFilter) ([]*banking.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*banking.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		out = append(out, &txn)
	}

	return out, nil
}

type fakeTx struct {
	store *fakeStore

	upserts []banking.Transaction
	deletes []string
	cursor  *string
	hasCur  bool
}

func (t *fakeTx) UpsertTransaction(_ context.Context, txn *banking.Transaction) error {
	if t.store.failUpserts {
		return errors.New("write failed")
	}

	t.upserts = append(t.upserts, *txn)

	return nil
}

func (t *fakeTx) DeleteTransaction(_ context.Context, id string) error {
	t.deletes = append(t.deletes, id)
	return nil
}

func (t *fakeTx) SaveCursor(_ context.Context, cursor *string) error {
	t.cursor = cursor
	t.hasCur = true

	return nil
}

func (t *fakeTx) Commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for _, txn := range t.upserts {
		t.store.transactions[txn.ID] = txn
	}

	for _, id := range t.deletes {
		delete(t.store.transactions, id)
	}

	if t.hasCur {
		t.store.cursor = t.cursor
	}

	return nil
}

func (t *fakeTx) Rollback() error { return nil }

type feedFunc func(ctx context.Context, accessToken string, cursor *string) banking.ChangeSet

func (f feedFunc) PullPendingChanges(ctx context.Context, accessToken string, cursor *string) banking.ChangeSet {
	return f(ctx, accessToken, cursor)
}

type staticDirectory struct {
	user *user.User
	link *user.BankLink
}

func (d *staticDirectory) GetByItemID(_ context.Context, itemID string) (*user.User, error) {
	if d.link == nil || d.link.ItemID != itemID {
		return nil, user.ErrNotFound
	}

	return d.user, nil
}

func (d *staticDirectory) BankLink(_ context.Context, userID uuid.UUID) (*user.BankLink, error) {
	if d.link == nil || d.link.UserID != userID {
		return nil, user.ErrNoBankLink
	}

	return d.link, nil
}

func gamblingPage(cursor string) banking.ChangeSet {
	return banking.ChangeSet{
		Added: []plaid.Transaction{{
			TransactionID: "txn_1",
			Amount:        50,
			Date:          "2024-01-15",
			Name:          "Casino Royale",
			PersonalFinanceCategory: &plaid.PersonalFinanceCategory{
				Primary:         "ENTERTAINMENT",
				Detailed:        banking.DetailedCategoryGambling,
				ConfidenceLevel: plaid.ConfidenceVeryHigh,
			},
		}},
		NextCursor: &cursor,
	}
}

// TestPipeline_WebhookToNotification walks the whole path: a transactions
// webhook for a freshly linked item pulls the feed, stores the transaction,
// advances the cursor, resets the streak and raises one relapse notification.
func TestPipeline_WebhookToNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	dir := &staticDirectory{
		user: &user.User{ID: userID},
		link: &user.BankLink{UserID: userID, AccessToken: "access-token", ItemID: "item_1"},
	}

	store := newFakeStore()

	feed := feedFunc(func(_ context.Context, accessToken string, cursor *string) banking.ChangeSet {
		assert.Equal(t, "access-token", accessToken)
		assert.Nil(t, cursor)

		return gamblingPage("cursor_a")
	})

	streaks := banking.NewMockStreakResetter(ctrl)
	notifier := banking.NewMockNotifier(ctrl)

	streaks.EXPECT().ResetStreak(gomock.Any(), userID, gomock.Any()).Return(nil)
	notifier.EXPECT().
		NotifyRelapse(gomock.Any(), userID, 50.0, gomock.Len(1)).
		Return(nil)

	svc := banking.NewService(store, feed, dir, banking.NewClassifier(streaks, notifier))

	err := svc.ProcessWebhook(context.Background(), plaid.WebhookPayload{
		WebhookType:           plaid.WebhookTypeTransactions,
		WebhookCode:           "INITIAL_UPDATE",
		ItemID:                "item_1",
		InitialUpdateComplete: true,
	})
	require.NoError(t, err)

	assert.Len(t, store.transactions, 1)
	assert.Contains(t, store.transactions, "txn_1")
	require.NotNil(t, store.cursor)
	assert.Equal(t, "cursor_a", *store.cursor)
}

func TestPipeline_ReconcileIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := banking.NewService(store, nil, nil, nil)

	userID := uuid.New()
	changes := gamblingPage("cursor_a")

	for range 2 {
		_, err := svc.Reconcile(context.Background(), userID, changes)
		require.NoError(t, err)
	}

	assert.Len(t, store.transactions, 1)
	require.NotNil(t, store.cursor)
	assert.Equal(t, "cursor_a", *store.cursor)
}

func TestPipeline_FailedWriteKeepsCursor(t *testing.T) {
	store := newFakeStore()
	start := "cursor_start"
	store.cursor = &start

	svc := banking.NewService(store, nil, nil, nil)

	store.failUpserts = true

	_, err := svc.Reconcile(context.Background(), uuid.New(), gamblingPage("cursor_a"))
	assert.Error(t, err)

	assert.Empty(t, store.transactions)
	require.NotNil(t, store.cursor)
	assert.Equal(t, "cursor_start", *store.cursor)
}

func TestPipeline_RemovalOfAbsentIDIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc := banking.NewService(store, nil, nil, nil)

	cursor := "cursor_a"

	_, err := svc.Reconcile(context.Background(), uuid.New(), banking.ChangeSet{
		Removed:    []plaid.RemovedTransaction{{TransactionID: "txn_missing"}},
		NextCursor: &cursor,
	})
	require.NoError(t, err)

	assert.Empty(t, store.transactions)
	require.NotNil(t, store.cursor)
	assert.Equal(t, "cursor_a", *store.cursor)
}
