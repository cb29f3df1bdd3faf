package banking

import (
	"context"
	"log/slog"
	"time"

	"github.com/foldedhq/folded/internal/plaid"
)

// ChangeSet is the accumulated result of draining the provider change feed.
type ChangeSet struct {
	Added    []plaid.Transaction
	Modified []plaid.Transaction
	Removed  []plaid.RemovedTransaction
	// NextCursor replaces the stored cursor wholesale after the set is
	// applied. It equals the input cursor when the pull was degraded.
	NextCursor *string
}

// SyncAPI is the single provider primitive the feed is built on.
type SyncAPI interface {
	SyncTransactions(ctx context.Context, accessToken string, cursor *string) (*plaid.SyncPage, error)
}

// ChangeFeed drains all pending pages of the provider's transaction change
// feed into one ChangeSet, retrying transient failures.
type ChangeFeed struct {
	api      SyncAPI
	attempts int
	delay    time.Duration
}

const (
	defaultPullAttempts = 3
	defaultRetryDelay   = time.Second
)

func NewChangeFeed(api SyncAPI) *ChangeFeed {
	return &ChangeFeed{
		api:      api,
		attempts: defaultPullAttempts,
		delay:    defaultRetryDelay,
	}
}

// PullPendingChanges fetches every pending page starting at cursor. A nil
// cursor requests full history. Any page failure discards the partial result
// and restarts the whole pull from the original cursor; after the attempt
// budget is spent the feed degrades to an empty set with the input cursor
// unchanged so the caller can simply try again on the next trigger. It never
// returns an error.
func (f *ChangeFeed) PullPendingChanges(ctx context.Context, accessToken string, cursor *string) ChangeSet {
	for attempt := 1; attempt <= f.attempts; attempt++ {
		set, err := f.pullOnce(ctx, accessToken, cursor)
		if err == nil {
			return set
		}

		slog.Warn("change feed pull failed",
			"attempt", attempt,
			"max_attempts", f.attempts,
			"error", err,
		)

		if attempt == f.attempts {
			break
		}

		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			slog.Warn("change feed pull canceled", "error", ctx.Err())
			return ChangeSet{NextCursor: cursor}
		}
	}

	slog.Error("change feed retries exhausted, keeping original cursor")

	return ChangeSet{NextCursor: cursor}
}

func (f *ChangeFeed) pullOnce(ctx context.Context, accessToken string, cursor *string) (ChangeSet, error) {
	set := ChangeSet{NextCursor: cursor}

	for {
		page, err := f.api.SyncTransactions(ctx, accessToken, set.NextCursor)
		if err != nil {
			return ChangeSet{}, err
		}

		set.Added = append(set.Added, page.Added...)
		set.Modified = append(set.Modified, page.Modified...)
		set.Removed = append(set.Removed, page.Removed...)

		next := page.NextCursor
		set.NextCursor = &next

		if !page.HasMore {
			return set, nil
		}
	}
}
