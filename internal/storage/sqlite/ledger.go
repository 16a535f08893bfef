package sqlite

import (
	"context"
	"database/sql"

	"github.com/mmynk/tripsplit/internal/models"
)

// GetLedger reads a trip's roster, expenses and transfers inside one
// transaction so concurrent edits are seen entirely or not at all.
func (s *SQLiteStore) GetLedger(ctx context.Context, tripID string) (*models.Ledger, error) {
	ledger := &models.Ledger{}
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		if _, err := getTrip(ctx, tx, tripID); err != nil {
			return err
		}

		participants, err := listParticipants(ctx, tx, tripID)
		if err != nil {
			return err
		}
		expenses, err := listExpenses(ctx, tx, tripID)
		if err != nil {
			return err
		}
		transfers, err := listTransfers(ctx, tx, tripID)
		if err != nil {
			return err
		}

		for _, p := range participants {
			ledger.Participants = append(ledger.Participants, *p)
		}
		for _, e := range expenses {
			ledger.Expenses = append(ledger.Expenses, *e)
		}
		for _, t := range transfers {
			ledger.Transfers = append(ledger.Transfers, *t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}
