package banking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=classifier.go -destination=classifier_mock.go -package=banking

// StreakResetter records a relapse by moving the recovery streak start.
type StreakResetter interface {
	ResetStreak(ctx context.Context, userID uuid.UUID, now time.Time) error
}

// Notifier surfaces a detected relapse to the user.
type Notifier interface {
	NotifyRelapse(ctx context.Context, userID uuid.UUID, value float64, matched []Transaction) error
}

// Classifier scans newly added transactions for gambling activity. Modified
// and removed transactions are never re-scanned.
type Classifier struct {
	streaks  StreakResetter
	notifier Notifier

	now func() time.Time
}

func NewClassifier(streaks StreakResetter, notifier Notifier) *Classifier {
	return &Classifier{
		streaks:  streaks,
		notifier: notifier,
		now:      time.Now,
	}
}

// Classify resets the user's streak and creates a relapse notification when
// any added transaction carries the gambling category. The two writes are
// issued concurrently and both are awaited before classification is done.
func (c *Classifier) Classify(ctx context.Context, userID uuid.UUID, added []Transaction) error {
	var matched []Transaction

	for _, tx := range added {
		if tx.IsGambling() {
			matched = append(matched, tx)
		}
	}

	if len(matched) == 0 {
		return nil
	}

	var value float64
	for _, tx := range matched {
		value += tx.Amount
	}

	slog.Info("relapse detected",
		"user_id", userID,
		"transactions", len(matched),
		"value", value,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.streaks.ResetStreak(ctx, userID, c.now())
	})

	g.Go(func() error {
		return c.notifier.NotifyRelapse(ctx, userID, value, matched)
	})

	return g.Wait()
}
