package banking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=banking
type Repository interface {
	BeginReconcile(ctx context.Context, userID uuid.UUID) (ReconcileTx, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
}

// ReconcileTx applies one change set atomically. The cursor write is issued
// last so the stored sync position can never advance past data that did not
// get persisted.
type ReconcileTx interface {
	UpsertTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	SaveCursor(ctx context.Context, cursor *string) error
	Commit() error
	Rollback() error
}

// Feed drains the provider change feed. A degraded pull yields an empty set
// with the input cursor unchanged.
type Feed interface {
	PullPendingChanges(ctx context.Context, accessToken string, cursor *string) ChangeSet
}

// UserDirectory resolves users and their bank links.
type UserDirectory interface {
	GetByItemID(ctx context.Context, itemID string) (*user.User, error)
	BankLink(ctx context.Context, userID uuid.UUID) (*user.BankLink, error)
}

type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	// GamblingOnly narrows to transactions carrying the gambling category.
	GamblingOnly bool
}

type Service struct {
	repo       Repository
	feed       Feed
	users      UserDirectory
	classifier *Classifier

	locks keyedMutex
}

func NewService(repo Repository, feed Feed, users UserDirectory, classifier *Classifier) *Service {
	return &Service{
		repo:       repo,
		feed:       feed,
		users:      users,
		classifier: classifier,
	}
}

// ShouldSync decides whether a transactions webhook warrants a sync. The fast
// initial window triggers one sync, the completed historical backfill another;
// an item therefore syncs twice over its linking lifetime.
func ShouldSync(initialUpdateComplete, historicalUpdateComplete bool) bool {
	return (initialUpdateComplete && !historicalUpdateComplete) || historicalUpdateComplete
}

// ProcessWebhook runs the pipeline for a provider webhook delivery. Errors are
// returned for logging; the HTTP layer acknowledges the provider regardless.
func (s *Service) ProcessWebhook(ctx context.Context, payload plaid.WebhookPayload) error {
	if payload.WebhookType != plaid.WebhookTypeTransactions {
		return nil
	}

	if !ShouldSync(payload.InitialUpdateComplete, payload.HistoricalUpdateComplete) {
		return nil
	}

	u, err := s.users.GetByItemID(ctx, payload.ItemID)
	if err != nil {
		return fmt.Errorf("resolving user for item %s: %w", payload.ItemID, err)
	}

	return s.Sync(ctx, u.ID)
}

// Sync pulls all pending changes for the user's linked account, reconciles
// them into the transaction store and classifies the newly added transactions.
// Syncs for the same user are serialized; concurrent webhook deliveries for
// one item otherwise race on the shared cursor.
func (s *Service) Sync(ctx context.Context, userID uuid.UUID) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	link, err := s.users.BankLink(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading bank link: %w", err)
	}

	changes := s.feed.PullPendingChanges(ctx, link.AccessToken, link.Cursor)

	added, err := s.Reconcile(ctx, userID, changes)
	if err != nil {
		return fmt.Errorf("reconciling changes: %w", err)
	}

	slog.Info("sync applied",
		"user_id", userID,
		"added", len(changes.Added),
		"modified", len(changes.Modified),
		"removed", len(changes.Removed),
	)

	return s.classifier.Classify(ctx, userID, added)
}

// Reconcile applies a change set to the user's transaction store and persists
// the new cursor, returning the normalized added transactions for
// classification. Added and modified records are full replacements keyed on
// the provider transaction id; removals of absent ids are no-ops. Nothing is
// written unless the whole batch commits.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID, changes ChangeSet) ([]Transaction, error) {
	added, err := normalizeAll(changes.Added)
	if err != nil {
		return nil, err
	}

	modified, err := normalizeAll(changes.Modified)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginReconcile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile: %w", err)
	}
	defer tx.Rollback()

	for i := range added {
		if err := tx.UpsertTransaction(ctx, &added[i]); err != nil {
			return nil, fmt.Errorf("upserting added transaction %s: %w", added[i].ID, err)
		}
	}

	for i := range modified {
		if err := tx.UpsertTransaction(ctx, &modified[i]); err != nil {
			return nil, fmt.Errorf("upserting modified transaction %s: %w", modified[i].ID, err)
		}
	}

	for _, removed := range changes.Removed {
		if err := tx.DeleteTransaction(ctx, removed.TransactionID); err != nil {
			return nil, fmt.Errorf("deleting transaction %s: %w", removed.TransactionID, err)
		}
	}

	if err := tx.SaveCursor(ctx, changes.NextCursor); err != nil {
		return nil, fmt.Errorf("saving cursor: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reconcile: %w", err)
	}

	return added, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func normalizeAll(txns []plaid.Transaction) ([]Transaction, error) {
	if len(txns) == 0 {
		return nil, nil
	}

	out := make([]Transaction, len(txns))

	for i, txn := range txns {
		normalized, err := Normalize(txn)
		if err != nil {
			return nil, err
		}

		out[i] = normalized
	}

	return out, nil
}

// keyedMutex serializes work per user id. Entries are removed once no
// goroutine holds or waits on them.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()

	if k.entries == nil {
		k.entries = make(map[uuid.UUID]*lockEntry)
	}

	entry := k.entries[id]
	if entry == nil {
		entry = &lockEntry{}
		k.entries[id] = entry
	}

	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()

		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, id)
		}

		k.mu.Unlock()
	}
}
