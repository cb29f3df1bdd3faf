package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/banking"
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

const selectTransactionColumns = `
	id, amount, date, currency, name,
	category_confidence, category_primary, category_detailed,
	merchant_name, merchant_website,
	location_address, location_city, location_region, location_postal_code,
	location_country, location_store_number, location_lat, location_lon,
	raw_provider, raw_data
`

func scanTransaction(s scanner) (*banking.Transaction, error) {
	var tx banking.Transaction

	var confidence sql.NullString

	var rawData []byte

	if err := s.Scan(
		&tx.ID, &tx.Amount, &tx.Date, &tx.Currency, &tx.Name,
		&confidence, &tx.Category.Primary, &tx.Category.Detailed,
		&tx.Merchant.Name, &tx.Merchant.Website,
		&tx.Location.Address, &tx.Location.City, &tx.Location.Region, &tx.Location.PostalCode,
		&tx.Location.Country, &tx.Location.StoreNumber, &tx.Location.Lat, &tx.Location.Lon,
		&tx.Raw.Provider, &rawData,
	); err != nil {
		return nil, err
	}

	if confidence.Valid {
		c := banking.Confidence(confidence.String)
		tx.Category.Confidence = &c
	}

	tx.Raw.Data = json.RawMessage(rawData)

	return &tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, filter banking.ListFilter) ([]*banking.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.GamblingOnly {
		query += fmt.Sprintf(" AND category_detailed = $%d", argIdx)

		args = append(args, banking.DetailedCategoryGambling)
	}

	query += " ORDER BY date DESC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*banking.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

type reconcileTx struct {
	tx     *sql.Tx
	userID uuid.UUID
}

// BeginReconcile opens the transaction a whole change set is applied in. All
// record writes and the cursor write commit or roll back together, so the
// cursor can only advance once the batch is durable.
func (s *Store) BeginReconcile(ctx context.Context, userID uuid.UUID) (banking.ReconcileTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile tx: %w", err)
	}

	return &reconcileTx{tx: dbTx, userID: userID}, nil
}

func (r *reconcileTx) Commit() error   { return r.tx.Commit() }
func (r *reconcileTx) Rollback() error { return r.tx.Rollback() }

// UpsertTransaction inserts or fully replaces the record at the transaction
// id. Modified records are overwritten wholesale, never merged field by field.
func (r *reconcileTx) UpsertTransaction(ctx context.Context, tx *banking.Transaction) error {
	query := `
		INSERT INTO transactions (
			user_id, id, amount, date, currency, name,
			category_confidence, category_primary, category_detailed,
			merchant_name, merchant_website,
			location_address, location_city, location_region, location_postal_code,
			location_country, location_store_number, location_lat, location_lon,
			raw_provider, raw_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (user_id, id) DO UPDATE SET
			amount = EXCLUDED.amount,
			date = EXCLUDED.date,
			currency = EXCLUDED.currency,
			name = EXCLUDED.name,
			category_confidence = EXCLUDED.category_confidence,
			category_primary = EXCLUDED.category_primary,
			category_detailed = EXCLUDED.category_detailed,
			merchant_name = EXCLUDED.merchant_name,
			merchant_website = EXCLUDED.merchant_website,
			location_address = EXCLUDED.location_address,
			location_city = EXCLUDED.location_city,
			location_region = EXCLUDED.location_region,
			location_postal_code = EXCLUDED.location_postal_code,
			location_country = EXCLUDED.location_country,
			location_store_number = EXCLUDED.location_store_number,
			location_lat = EXCLUDED.location_lat,
			location_lon = EXCLUDED.location_lon,
			raw_provider = EXCLUDED.raw_provider,
			raw_data = EXCLUDED.raw_data
	`

	var confidence *string
	if tx.Category.Confidence != nil {
		c := string(*tx.Category.Confidence)
		confidence = &c
	}

	_, err := r.tx.ExecContext(ctx, query,
		r.userID, tx.ID, tx.Amount, tx.Date, tx.Currency, tx.Name,
		confidence, tx.Category.Primary, tx.Category.Detailed,
		tx.Merchant.Name, tx.Merchant.Website,
		tx.Location.Address, tx.Location.City, tx.Location.Region, tx.Location.PostalCode,
		tx.Location.Country, tx.Location.StoreNumber, tx.Location.Lat, tx.Location.Lon,
		tx.Raw.Provider, []byte(tx.Raw.Data),
	)
	if err != nil {
		return fmt.Errorf("upserting transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes the record at the transaction id. Deleting an id
// that is already absent is a no-op; the provider may report removals of
// records a previous partial sync never persisted.
func (r *reconcileTx) DeleteTransaction(ctx context.Context, id string) error {
	query := `DELETE FROM transactions WHERE user_id = $1 AND id = $2`

	_, err := r.tx.ExecContext(ctx, query, r.userID, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// SaveCursor unconditionally overwrites the stored change-feed position.
func (r *reconcileTx) SaveCursor(ctx context.Context, cursor *string) error {
	query := `
		UPDATE bank_links
		SET transaction_cursor = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	_, err := r.tx.ExecContext(ctx, query, cursor, r.userID)
	if err != nil {
		return fmt.Errorf("saving cursor: %w", err)
	}

	return nil
}
