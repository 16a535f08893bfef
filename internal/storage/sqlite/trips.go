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

const tripColumns = "id, name, location, start_date, end_date, is_archived, created_at, updated_at"

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	// Generate ID if not set
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if trip.CreatedAt == 0 {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = trip.CreatedAt

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO trips ("+tripColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		trip.ID, trip.Name, nullString(trip.Location), nullString(trip.StartDate), nullString(trip.EndDate),
		trip.IsArchived, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return getTrip(ctx, s.db, tripID)
}

func getTrip(ctx context.Context, q querier, tripID string) (*models.Trip, error) {
	row := q.QueryRowContext(ctx, "SELECT "+tripColumns+" FROM trips WHERE id = ?", tripID)
	trip, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("trip", tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListTrips retrieves all trips, newest first.
func (s *SQLiteStore) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+tripColumns+" FROM trips ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// UpdateTrip applies the non-nil fields of update to the trip.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, tripID string, update models.TripUpdate) (*models.Trip, error) {
	var updated *models.Trip
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		trip, err := getTrip(ctx, tx, tripID)
		if err != nil {
			return err
		}

		if update.Name != nil {
			trip.Name = *update.Name
		}
		if update.Location != nil {
			trip.Location = *update.Location
		}
		if update.StartDate != nil {
			trip.StartDate = *update.StartDate
		}
		if update.EndDate != nil {
			trip.EndDate = *update.EndDate
		}
		if update.IsArchived != nil {
			trip.IsArchived = *update.IsArchived
		}
		trip.UpdatedAt = time.Now().Unix()

		_, err = tx.ExecContext(ctx,
			`UPDATE trips SET name = ?, location = ?, start_date = ?, end_date = ?, is_archived = ?, updated_at = ?
			 WHERE id = ?`,
			trip.Name, nullString(trip.Location), nullString(trip.StartDate), nullString(trip.EndDate),
			trip.IsArchived, trip.UpdatedAt, trip.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update trip: %w", err)
		}
		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTrip removes a trip. Participants, expenses, shares and transfers
// go with it through ON DELETE CASCADE.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return checkAffected(res, "trip", tripID)
}

func scanTrip(row scanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var location, startDate, endDate sql.NullString
	if err := row.Scan(&trip.ID, &trip.Name, &location, &startDate, &endDate,
		&trip.IsArchived, &trip.CreatedAt, &trip.UpdatedAt); err != nil {
		return nil, err
	}
	trip.Location = location.String
	trip.StartDate = startDate.String
	trip.EndDate = endDate.String
	return trip, nil
}
