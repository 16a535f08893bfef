// Package service implements the Connect handlers of the tripsplit API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/events"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

const dateLayout = "2006-01-02"

// storeError maps a storage error to the matching Connect error.
func storeError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrParticipantInUse), errors.Is(err, storage.ErrInvalidReference):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// notify publishes a trip change. Failures are logged; the write that caused
// the change has already been committed.
func notify(ctx context.Context, p events.Publisher, tripID, kind, entityID string) {
	msg := events.NewTripChanged(tripID, kind, entityID)
	if err := p.PublishTripChanged(ctx, msg); err != nil {
		slog.Warn("Failed to publish trip change",
			"trip_id", tripID,
			"kind", kind,
			"error", err,
		)
	}
}

func orNop(p events.Publisher) events.Publisher {
	if p == nil {
		return events.NopPublisher{}
	}
	return p
}

// validateDate accepts "" or a YYYY-MM-DD calendar date.
func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return invalidArgument("%s must be a YYYY-MM-DD date, got %q", field, value)
	}
	return nil
}

// validateMoney requires a positive amount with at most two decimal places.
func validateMoney(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidArgument("%s must be positive, got %s", field, amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return invalidArgument("%s must have at most two decimal places, got %s", field, amount)
	}
	return nil
}

// roster indexes a trip's participants by ID.
type roster struct {
	ids  []string
	byID map[string]*models.Participant
}

func newRoster(participants []*models.Participant) roster {
	r := roster{byID: make(map[string]*models.Participant, len(participants))}
	for _, p := range participants {
		r.ids = append(r.ids, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

// require fails with InvalidArgument when id is not on the roster.
func (r roster) require(id, role string) error {
	if _, ok := r.byID[id]; !ok {
		return connect.NewError(connect.CodeInvalidArgument,
			&calculator.UnknownParticipantError{ParticipantID: id, Role: role})
	}
	return nil
}
