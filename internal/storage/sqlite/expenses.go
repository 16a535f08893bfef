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

const expenseColumns = "id, trip_id, description, amount, currency, payer_id, date, created_at"

// CreateExpense persists a new expense and its shares in one transaction.
// If any share fails to insert, the expense row is rolled back with it.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == 0 {
		expense.Date = expense.CreatedAt
	}

	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		// Insert expense
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			expense.ID, expense.TripID, expense.Description, expense.Amount, expense.Currency,
			expense.PayerID, expense.Date, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", foreignKey(err))
		}

		return insertShares(ctx, tx, expense.ID, expense.Shares)
	})
}

// GetExpense retrieves an expense by ID, including its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+expenseColumns+" FROM expenses WHERE id = ?", expenseID)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("expense", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id, amount FROM expense_shares WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var share models.ExpenseShare
		if err := rows.Scan(&share.ParticipantID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		expense.Shares = append(expense.Shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return expense, nil
}

// ListExpenses returns all expenses of a trip with their shares, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	return listExpenses(ctx, s.db, tripID)
}

func listExpenses(ctx context.Context, q querier, tripID string) ([]*models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE trip_id = ? ORDER BY date DESC, created_at DESC, id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	// All shares of the trip in one query, attached to their expense.
	shareRows, err := q.QueryContext(ctx, `
		SELECT s.expense_id, s.participant_id, s.amount
		FROM expense_shares s
		JOIN expenses e ON e.id = s.expense_id
		WHERE e.trip_id = ?
		ORDER BY s.expense_id, s.position`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var expenseID string
		var share models.ExpenseShare
		if err := shareRows.Scan(&expenseID, &share.ParticipantID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.Shares = append(expense.Shares, share)
		}
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return expenses, nil
}

// UpdateExpense rewrites an expense and replaces all of its shares.
// Old shares are deleted and new ones inserted in the same transaction.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE expenses SET description = ?, amount = ?, currency = ?, payer_id = ?, date = ?
			 WHERE id = ?`,
			expense.Description, expense.Amount, expense.Currency, expense.PayerID, expense.Date, expense.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update expense: %w", foreignKey(err))
		}
		if err := checkAffected(res, "expense", expense.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM expense_shares WHERE expense_id = ?", expense.ID); err != nil {
			return fmt.Errorf("failed to delete old expense shares: %w", err)
		}
		if err := insertShares(ctx, tx, expense.ID, expense.Shares); err != nil {
			return err
		}

		// Reload immutable columns so the caller sees the stored record.
		return tx.QueryRowContext(ctx,
			"SELECT trip_id, created_at FROM expenses WHERE id = ?", expense.ID,
		).Scan(&expense.TripID, &expense.CreatedAt)
	})
}

// DeleteExpense removes an expense; its shares cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return checkAffected(res, "expense", expenseID)
}

func insertShares(ctx context.Context, tx *sql.Tx, expenseID string, shares []models.ExpenseShare) error {
	for i, share := range shares {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, participant_id, amount, position) VALUES (?, ?, ?, ?)",
			expenseID, share.ParticipantID, share.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", foreignKey(err))
		}
	}
	return nil
}

func scanExpense(row scanner) (*models.Expense, error) {
	e := &models.Expense{}
	if err := row.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount, &e.Currency,
		&e.PayerID, &e.Date, &e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}
