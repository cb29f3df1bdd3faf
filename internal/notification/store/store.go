package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	var (
		value float64
		txns  = []byte("[]")
	)

	if n.Relapse != nil {
		value = n.Relapse.Value

		data, err := json.Marshal(n.Relapse.Transactions)
		if err != nil {
			return fmt.Errorf("encoding relapse transactions: %w", err)
		}

		txns = data
	}

	query := `
		INSERT INTO notifications (id, user_id, type, value, transactions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query, n.ID, n.UserID, n.Type, value, txns, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	query := `
		SELECT id, user_id, type, value, transactions, created_at, viewed_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification

	for rows.Next() {
		var n notification.Notification

		var (
			value float64
			txns  []byte
		)

		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &value, &txns, &n.CreatedAt, &n.ViewedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		if n.Type == notification.TypeRelapse {
			payload := notification.RelapsePayload{Value: value}
			if err := json.Unmarshal(txns, &payload.Transactions); err != nil {
				return nil, fmt.Errorf("decoding relapse transactions: %w", err)
			}

			n.Relapse = &payload
		}

		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

func (s *Store) MarkViewed(ctx context.Context, userID, id uuid.UUID, viewedAt time.Time) error {
	query := `
		UPDATE notifications
		SET viewed_at = $1
		WHERE id = $2 AND user_id = $3 AND viewed_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, viewedAt, id, userID)
	if err != nil {
		return fmt.Errorf("marking notification viewed: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notification.ErrNotFound
	}

	return nil
}
