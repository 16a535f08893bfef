package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// AddParticipant adds a participant to an existing trip.
func (s *SQLiteStore) AddParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}

	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		if _, err := getTrip(ctx, tx, participant.TripID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (id, trip_id, name) VALUES (?, ?, ?)",
			participant.ID, participant.TripID, participant.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
		return nil
	})
}

// GetParticipant retrieves a participant by ID.
func (s *SQLiteStore) GetParticipant(ctx context.Context, participantID string) (*models.Participant, error) {
	return getParticipant(ctx, s.db, participantID)
}

func getParticipant(ctx context.Context, q querier, participantID string) (*models.Participant, error) {
	p := &models.Participant{}
	err := q.QueryRowContext(ctx,
		"SELECT id, trip_id, name FROM participants WHERE id = ?", participantID,
	).Scan(&p.ID, &p.TripID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("participant", participantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// ListParticipants returns a trip's roster ordered by name.
func (s *SQLiteStore) ListParticipants(ctx context.Context, tripID string) ([]*models.Participant, error) {
	return listParticipants(ctx, s.db, tripID)
}

func listParticipants(ctx context.Context, q querier, tripID string) ([]*models.Participant, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, trip_id, name FROM participants WHERE trip_id = ? ORDER BY name, id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.TripID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

// RenameParticipant changes a participant's display name.
func (s *SQLiteStore) RenameParticipant(ctx context.Context, participantID, name string) (*models.Participant, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE participants SET name = ? WHERE id = ?", name, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to rename participant: %w", err)
	}
	if err := checkAffected(res, "participant", participantID); err != nil {
		return nil, err
	}

	return getParticipant(ctx, s.db, participantID)
}

// RemoveParticipant deletes a participant nobody references.
func (s *SQLiteStore) RemoveParticipant(ctx context.Context, participantID string) error {
	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		if _, err := getParticipant(ctx, tx, participantID); err != nil {
			return err
		}

		var refs int
		err := tx.QueryRowContext(ctx, `
			SELECT (SELECT COUNT(*) FROM expenses WHERE payer_id = ?)
			     + (SELECT COUNT(*) FROM expense_shares WHERE participant_id = ?)
			     + (SELECT COUNT(*) FROM transfers WHERE from_id = ? OR to_id = ?)`,
			participantID, participantID, participantID, participantID,
		).Scan(&refs)
		if err != nil {
			return fmt.Errorf("failed to count participant references: %w", err)
		}
		if refs > 0 {
			return fmt.Errorf("participant %s: %w", participantID, storage.ErrParticipantInUse)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", participantID); err != nil {
			return fmt.Errorf("failed to delete participant: %w", err)
		}
		return nil
	})
}
