package banking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/user"
)

func TestShouldSync(t *testing.T) {
	type testCase struct {
		name       string
		initial    bool
		historical bool
		want       bool
	}

	tests := []testCase{
		{name: "NeitherComplete", initial: false, historical: false, want: false},
		{name: "InitialOnly", initial: true, historical: false, want: true},
		{name: "HistoricalOnly", initial: false, historical: true, want: true},
		{name: "BothComplete", initial: true, historical: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, banking.ShouldSync(tt.initial, tt.historical))
		})
	}
}

func newTestService(t *testing.T) (*banking.Service, *banking.MockRepository, *banking.MockFeed, *banking.MockUserDirectory, *banking.MockStreakResetter, *banking.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := banking.NewMockRepository(ctrl)
	feed := banking.NewMockFeed(ctrl)
	users := banking.NewMockUserDirectory(ctrl)
	streaks := banking.NewMockStreakResetter(ctrl)
	notifier := banking.NewMockNotifier(ctrl)

	svc := banking.NewService(repo, feed, users, banking.NewClassifier(streaks, notifier))

	return svc, repo, feed, users, streaks, notifier
}

func TestService_ProcessWebhook_IgnoresOtherTypes(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)

	err := svc.ProcessWebhook(context.Background(), plaid.WebhookPayload{
		WebhookType: "ITEM",
		WebhookCode: "ERROR",
		ItemID:      "item_1",
	})
	assert.NoError(t, err)
}

func TestService_ProcessWebhook_IgnoresPreInitialUpdates(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)

	err := svc.ProcessWebhook(context.Background(), plaid.WebhookPayload{
		WebhookType: plaid.WebhookTypeTransactions,
		ItemID:      "item_1",
	})
	assert.NoError(t, err)
}

func TestService_ProcessWebhook_UnknownItem(t *testing.T) {
	svc, _, _, users, _, _ := newTestService(t)

	users.EXPECT().
		GetByItemID(gomock.Any(), "item_1").
		Return(nil, user.ErrNotFound)

	err := svc.ProcessWebhook(context.Background(), plaid.WebhookPayload{
		WebhookType:           plaid.WebhookTypeTransactions,
		ItemID:                "item_1",
		InitialUpdateComplete: true,
	})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_Sync_AppliesChangesAndClassifies(t *testing.T) {
	svc, repo, feed, users, streaks, notifier := newTestService(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cursor := "cursor_a"

	users.EXPECT().
		BankLink(gomock.Any(), userID).
		Return(&user.BankLink{
			UserID:      userID,
			AccessToken: "access-token",
			ItemID:      "item_1",
		}, nil)

	gambling := plaid.Transaction{
		TransactionID: "txn_1",
		Amount:        50,
		Date:          "2024-01-15",
		Name:          "Casino Royale",
		PersonalFinanceCategory: &plaid.PersonalFinanceCategory{
			Primary:  "ENTERTAINMENT",
			Detailed: banking.DetailedCategoryGambling,
		},
	}

	feed.EXPECT().
		PullPendingChanges(gomock.Any(), "access-token", nil).
		Return(banking.ChangeSet{
			Added:      []plaid.Transaction{gambling},
			NextCursor: &cursor,
		})

	tx := banking.NewMockReconcileTx(ctrl)
	repo.EXPECT().BeginReconcile(gomock.Any(), userID).Return(tx, nil)

	gomock.InOrder(
		tx.EXPECT().
			UpsertTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *banking.Transaction) error {
				assert.Equal(t, "txn_1", txn.ID)
				assert.True(t, txn.IsGambling())
				return nil
			}),
		tx.EXPECT().SaveCursor(gomock.Any(), &cursor).Return(nil),
		tx.EXPECT().Commit().Return(nil),
	)
	tx.EXPECT().Rollback().Return(nil)

	streaks.EXPECT().ResetStreak(gomock.Any(), userID, gomock.Any()).Return(nil)
	notifier.EXPECT().
		NotifyRelapse(gomock.Any(), userID, 50.0, gomock.Len(1)).
		Return(nil)

	err := svc.Sync(context.Background(), userID)
	assert.NoError(t, err)
}

func TestService_Sync_NoBankLink(t *testing.T) {
	svc, _, _, users, _, _ := newTestService(t)

	userID := uuid.New()

	users.EXPECT().
		BankLink(gomock.Any(), userID).
		Return(nil, user.ErrNoBankLink)

	err := svc.Sync(context.Background(), userID)
	assert.ErrorIs(t, err, user.ErrNoBankLink)
}

func TestService_Reconcile_CursorSavedLast(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cursor := "cursor_b"

	changes := banking.ChangeSet{
		Added:      []plaid.Transaction{{TransactionID: "txn_1", Date: "2024-01-15"}},
		Modified:   []plaid.Transaction{{TransactionID: "txn_2", Date: "2024-01-16"}},
		Removed:    []plaid.RemovedTransaction{{TransactionID: "txn_3"}},
		NextCursor: &cursor,
	}

	tx := banking.NewMockReconcileTx(ctrl)
	repo.EXPECT().BeginReconcile(gomock.Any(), userID).Return(tx, nil)

	gomock.InOrder(
		tx.EXPECT().UpsertTransaction(gomock.Any(), gomock.Any()).Return(nil),
		tx.EXPECT().UpsertTransaction(gomock.Any(), gomock.Any()).Return(nil),
		tx.EXPECT().DeleteTransaction(gomock.Any(), "txn_3").Return(nil),
		tx.EXPECT().SaveCursor(gomock.Any(), &cursor).Return(nil),
		tx.EXPECT().Commit().Return(nil),
	)
	tx.EXPECT().Rollback().Return(nil)

	added, err := svc.Reconcile(context.Background(), userID, changes)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "txn_1", added[0].ID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), added[0].Date)
}

func TestService_Reconcile_WriteFailureRollsBack(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cursor := "cursor_b"

	changes := banking.ChangeSet{
		Added:      []plaid.Transaction{{TransactionID: "txn_1", Date: "2024-01-15"}},
		NextCursor: &cursor,
	}

	tx := banking.NewMockReconcileTx(ctrl)
	repo.EXPECT().BeginReconcile(gomock.Any(), userID).Return(tx, nil)

	tx.EXPECT().
		UpsertTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))
	tx.EXPECT().Rollback().Return(nil)

	added, err := svc.Reconcile(context.Background(), userID, changes)
	assert.Error(t, err)
	assert.Nil(t, added)
}

func TestService_Reconcile_BadDate(t *testing.T) {
	svc, _, _, _, _, _ := newTestService(t)

	_, err := svc.Reconcile(context.Background(), uuid.New(), banking.ChangeSet{
		Added: []plaid.Transaction{{TransactionID: "txn_1", Date: "not-a-date"}},
	})
	assert.Error(t, err)
}
