// Package events announces trip changes to interested consumers so they can
// refresh balances without polling.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Kinds of change carried by TripChanged.
const (
	KindTripUpdated        = "trip.updated"
	KindTripDeleted        = "trip.deleted"
	KindParticipantAdded   = "participant.added"
	KindParticipantRenamed = "participant.renamed"
	KindParticipantRemoved = "participant.removed"
	KindExpenseCreated     = "expense.created"
	KindExpenseUpdated     = "expense.updated"
	KindExpenseDeleted     = "expense.deleted"
	KindTransferCreated    = "transfer.created"
	KindTransferDeleted    = "transfer.deleted"
)

// TripChanged is a lightweight notification. It carries IDs only; consumers
// fetch the current state through the API.
type TripChanged struct {
	TripID    string    `json:"tripId"`
	Kind      string    `json:"kind"`
	EntityID  string    `json:"entityId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTripChanged creates a notification stamped with the current time.
func NewTripChanged(tripID, kind, entityID string) TripChanged {
	return TripChanged{
		TripID:    tripID,
		Kind:      kind,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// RoutingKey is the topic the message is published under, e.g.
// "trip.expense.created".
func (m TripChanged) RoutingKey() string {
	return "trip." + m.Kind
}

// ToJSON converts the message to JSON bytes.
func (m TripChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TripChangedFromJSON decodes a message published by ToJSON.
func TripChangedFromJSON(data []byte) (TripChanged, error) {
	var msg TripChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return TripChanged{}, err
	}
	return msg, nil
}

// Publisher delivers trip change notifications.
type Publisher interface {
	PublishTripChanged(ctx context.Context, msg TripChanged) error
	Close() error
}

// NopPublisher drops every message. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishTripChanged(context.Context, TripChanged) error { return nil }

func (NopPublisher) Close() error { return nil }
