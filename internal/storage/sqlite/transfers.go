package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
)

const transferColumns = "id, trip_id, from_id, to_id, amount, currency, description, date, created_at"

// CreateTransfer persists a new transfer to the database.
func (s *SQLiteStore) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	// Generate ID if not set
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	if transfer.CreatedAt == 0 {
		transfer.CreatedAt = time.Now().Unix()
	}
	if transfer.Date == 0 {
		transfer.Date = transfer.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO transfers ("+transferColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		transfer.ID, transfer.TripID, transfer.FromID, transfer.ToID,
		transfer.Amount, transfer.Currency, nullString(transfer.Description),
		transfer.Date, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", foreignKey(err))
	}
	return nil
}

// GetTransfer retrieves a transfer by ID.
func (s *SQLiteStore) GetTransfer(ctx context.Context, transferID string) (*models.Transfer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+transferColumns+" FROM transfers WHERE id = ?", transferID)
	transfer, err := scanTransfer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("transfer", transferID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return transfer, nil
}

// ListTransfers retrieves all transfers for a trip, newest first.
func (s *SQLiteStore) ListTransfers(ctx context.Context, tripID string) ([]*models.Transfer, error) {
	return listTransfers(ctx, s.db, tripID)
}

func listTransfers(ctx context.Context, q querier, tripID string) ([]*models.Transfer, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+transferColumns+" FROM transfers WHERE trip_id = ? ORDER BY date DESC, created_at DESC, id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers by trip: %w", err)
	}
	defer rows.Close()

	var transfers []*models.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfers: %w", err)
	}
	return transfers, nil
}

// DeleteTransfer removes a transfer by ID.
func (s *SQLiteStore) DeleteTransfer(ctx context.Context, transferID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transfers WHERE id = ?", transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return checkAffected(res, "transfer", transferID)
}

func scanTransfer(row scanner) (*models.Transfer, error) {
	t := &models.Transfer{}
	var description sql.NullString
	if err := row.Scan(&t.ID, &t.TripID, &t.FromID, &t.ToID, &t.Amount, &t.Currency,
		&description, &t.Date, &t.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		t.Description = description.String
	}
	return t, nil
}
