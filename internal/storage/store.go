// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripsplit/internal/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrParticipantInUse is returned when removing a participant that is
	// still referenced by an expense, share or transfer.
	ErrParticipantInUse = errors.New("participant is referenced by expenses or transfers")

	// ErrInvalidReference is returned when a write names a trip or
	// participant that no longer exists, e.g. one removed concurrently.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Store defines the interface for trip storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	TripStore
	ParticipantStore
	ExpenseStore
	TransferStore

	// GetLedger returns the roster, expenses (with shares) and transfers of a
	// trip read inside a single transaction, so balances are never computed
	// from a half-applied edit.
	GetLedger(ctx context.Context, tripID string) (*models.Ledger, error)

	// Close releases any resources held by the store.
	Close() error
}

// TripStore manages trips.
type TripStore interface {
	// CreateTrip persists a new trip. ID, CreatedAt and UpdatedAt are filled in.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID. Returns ErrNotFound if it does not exist.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips returns all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// UpdateTrip applies a partial update and returns the updated trip.
	UpdateTrip(ctx context.Context, tripID string, update models.TripUpdate) (*models.Trip, error)

	// DeleteTrip removes a trip and everything that belongs to it.
	DeleteTrip(ctx context.Context, tripID string) error
}

// ParticipantStore manages trip rosters.
type ParticipantStore interface {
	AddParticipant(ctx context.Context, participant *models.Participant) error
	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)
	ListParticipants(ctx context.Context, tripID string) ([]*models.Participant, error)
	RenameParticipant(ctx context.Context, participantID, name string) (*models.Participant, error)

	// RemoveParticipant fails with ErrParticipantInUse while anything still
	// references the participant.
	RemoveParticipant(ctx context.Context, participantID string) error
}

// ExpenseStore manages expenses together with their shares.
type ExpenseStore interface {
	// CreateExpense writes the expense and all of its shares atomically.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns a trip's expenses, most recent date first.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// UpdateExpense rewrites the expense and replaces its shares as one unit.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	DeleteExpense(ctx context.Context, expenseID string) error
}

// TransferStore manages direct payments between participants.
type TransferStore interface {
	CreateTransfer(ctx context.Context, transfer *models.Transfer) error
	GetTransfer(ctx context.Context, transferID string) (*models.Transfer, error)

	// ListTransfers returns a trip's transfers, most recent date first.
	ListTransfers(ctx context.Context, tripID string) ([]*models.Transfer, error)

	DeleteTransfer(ctx context.Context, transferID string) error
}
