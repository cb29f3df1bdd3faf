package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `id, email, display_name, photo_url, streak_start, created_at, updated_at`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var email, displayName, photoURL sql.NullString

	if err := s.Scan(
		&u.ID, &email, &displayName, &photoURL, &u.StreakStart, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Email = email.String
	u.DisplayName = displayName.String
	u.PhotoURL = photoURL.String

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, display_name, photo_url, streak_start, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.ID,
		u.Email,
		u.DisplayName,
		u.PhotoURL,
		u.StreakStart,
	).Scan(&u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) GetUserByItemID(ctx context.Context, itemID string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + `
		FROM users
		WHERE id = (SELECT user_id FROM bank_links WHERE item_id = $1)`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by item id: %w", err)
	}

	return u, nil
}

func (s *Store) GetBankLink(ctx context.Context, userID uuid.UUID) (*user.BankLink, error) {
	query := `
		SELECT user_id, access_token, item_id, transaction_cursor, created_at, updated_at
		FROM bank_links
		WHERE user_id = $1
	`

	var link user.BankLink

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&link.UserID, &link.AccessToken, &link.ItemID, &link.Cursor, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNoBankLink
		}

		return nil, fmt.Errorf("getting bank link: %w", err)
	}

	return &link, nil
}

func (s *Store) SaveBankLink(ctx context.Context, link *user.BankLink) error {
	query := `
		INSERT INTO bank_links (user_id, access_token, item_id, transaction_cursor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    item_id = EXCLUDED.item_id,
		    transaction_cursor = EXCLUDED.transaction_cursor,
		    updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, link.UserID, link.AccessToken, link.ItemID, link.Cursor)
	if err != nil {
		return fmt.Errorf("saving bank link: %w", err)
	}

	return nil
}

func (s *Store) ResetStreak(ctx context.Context, userID uuid.UUID, start time.Time) error {
	query := `
		UPDATE users
		SET streak_start = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, start, userID)
	if err != nil {
		return fmt.Errorf("resetting streak: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (s *Store) GetDeviceToken(ctx context.Context, userID uuid.UUID) (*user.DeviceToken, error) {
	query := `SELECT device_token, device_token_created_at FROM users WHERE id = $1`

	var token sql.NullString

	var createdAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&token, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting device token: %w", err)
	}

	if !token.Valid {
		return nil, nil
	}

	return &user.DeviceToken{Token: token.String, CreatedAt: createdAt.Time}, nil
}

func (s *Store) SaveDeviceToken(ctx context.Context, userID uuid.UUID, token user.DeviceToken) error {
	query := `
		UPDATE users
		SET device_token = $1, device_token_created_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, token.Token, token.CreatedAt, userID)
	if err != nil {
		return fmt.Errorf("saving device token: %w", err)
	}

	return nil
}

func (s *Store) ClearDeviceToken(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET device_token = NULL, device_token_created_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clearing device token: %w", err)
	}

	return nil
}
