package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/events"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	api "github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// TripService implements the Connect TripService
type TripService struct {
	apiconnect.UnimplementedTripServiceHandler
	store     storage.Store
	publisher events.Publisher
}

// NewTripService creates a new TripService with the given storage backend.
// A nil publisher disables change notifications.
func NewTripService(store storage.Store, publisher events.Publisher) *TripService {
	return &TripService{store: store, publisher: orNop(publisher)}
}

// CreateTrip creates a new trip with an empty roster.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	slog.Info("CreateTrip request received", "name", req.Msg.Name)

	trip := &models.Trip{
		Name:      strings.TrimSpace(req.Msg.Name),
		Location:  strings.TrimSpace(req.Msg.Location),
		StartDate: req.Msg.StartDate,
		EndDate:   req.Msg.EndDate,
	}
	if trip.Name == "" {
		return nil, invalidArgument("name required")
	}
	if err := validateTripDates(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}

	// Save to storage (generates ID and timestamps)
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)

	return connect.NewResponse(&api.CreateTripResponse{
		Trip: toAPITrip(trip),
	}), nil
}

// GetTrip retrieves a trip together with its roster.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("GetTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	participants, err := s.store.ListParticipants(ctx, trip.ID)
	if err != nil {
		slog.Error("GetTrip failed - could not list participants", "trip_id", trip.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("GetTrip successful", "trip_id", trip.ID, "participants_count", len(participants))

	return connect.NewResponse(&api.GetTripResponse{
		Trip:         toAPITrip(trip),
		Participants: toAPIParticipants(participants),
	}), nil
}

// ListTrips retrieves all trips, newest first. Archived trips are left out
// unless requested.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	slog.Info("ListTrips request received", "include_archived", req.Msg.IncludeArchived)

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, storeError(err)
	}

	apiTrips := make([]*api.Trip, 0, len(trips))
	for _, trip := range trips {
		if trip.IsArchived && !req.Msg.IncludeArchived {
			continue
		}
		apiTrips = append(apiTrips, toAPITrip(trip))
	}

	slog.Info("ListTrips successful", "count", len(apiTrips))

	return connect.NewResponse(&api.ListTripsResponse{
		Trips: apiTrips,
	}), nil
}

// UpdateTrip applies a partial update; absent fields keep their value.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	slog.Info("UpdateTrip request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}

	update := models.TripUpdate{
		StartDate:  req.Msg.StartDate,
		EndDate:    req.Msg.EndDate,
		IsArchived: req.Msg.IsArchived,
	}
	if req.Msg.Name != nil {
		name := strings.TrimSpace(*req.Msg.Name)
		if name == "" {
			return nil, invalidArgument("name cannot be empty")
		}
		update.Name = &name
	}
	if req.Msg.Location != nil {
		location := strings.TrimSpace(*req.Msg.Location)
		update.Location = &location
	}

	current, err := s.store.GetTrip(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("UpdateTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}
	start, end := current.StartDate, current.EndDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	if update.EndDate != nil {
		end = *update.EndDate
	}
	if err := validateTripDates(start, end); err != nil {
		return nil, err
	}

	trip, err := s.store.UpdateTrip(ctx, req.Msg.TripId, update)
	if err != nil {
		slog.Error("UpdateTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip updated", "trip_id", trip.ID)
	notify(ctx, s.publisher, trip.ID, events.KindTripUpdated, trip.ID)

	return connect.NewResponse(&api.UpdateTripResponse{
		Trip: toAPITrip(trip),
	}), nil
}

// DeleteTrip removes a trip and everything recorded on it.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}

	if err := s.store.DeleteTrip(ctx, req.Msg.TripId); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripId)
	notify(ctx, s.publisher, req.Msg.TripId, events.KindTripDeleted, req.Msg.TripId)

	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddParticipant adds a person to a trip's roster.
func (s *TripService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	slog.Info("AddParticipant request received", "trip_id", req.Msg.TripId, "name", req.Msg.Name)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}
	participant := &models.Participant{
		TripID: req.Msg.TripId,
		Name:   strings.TrimSpace(req.Msg.Name),
	}
	if participant.Name == "" {
		return nil, invalidArgument("name required")
	}

	if err := s.store.AddParticipant(ctx, participant); err != nil {
		slog.Error("AddParticipant failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Participant added", "trip_id", participant.TripID, "participant_id", participant.ID)
	notify(ctx, s.publisher, participant.TripID, events.KindParticipantAdded, participant.ID)

	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: toAPIParticipant(participant),
	}), nil
}

// ListParticipants returns a trip's roster ordered by name.
func (s *TripService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	slog.Info("ListParticipants request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}
	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		slog.Error("ListParticipants failed - trip not found", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	participants, err := s.store.ListParticipants(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("ListParticipants failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.ListParticipantsResponse{
		Participants: toAPIParticipants(participants),
	}), nil
}

// RenameParticipant changes a participant's display name.
func (s *TripService) RenameParticipant(ctx context.Context, req *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	slog.Info("RenameParticipant request received", "participant_id", req.Msg.ParticipantId)

	if req.Msg.ParticipantId == "" {
		return nil, invalidArgument("participant_id required")
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name required")
	}

	participant, err := s.store.RenameParticipant(ctx, req.Msg.ParticipantId, name)
	if err != nil {
		slog.Error("RenameParticipant failed", "participant_id", req.Msg.ParticipantId, "error", err)
		return nil, storeError(err)
	}

	notify(ctx, s.publisher, participant.TripID, events.KindParticipantRenamed, participant.ID)

	return connect.NewResponse(&api.RenameParticipantResponse{
		Participant: toAPIParticipant(participant),
	}), nil
}

// RemoveParticipant takes someone off the roster. It fails with
// FailedPrecondition while any expense, share or transfer still refers to them.
func (s *TripService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	slog.Info("RemoveParticipant request received", "participant_id", req.Msg.ParticipantId)

	if req.Msg.ParticipantId == "" {
		return nil, invalidArgument("participant_id required")
	}

	participant, err := s.store.GetParticipant(ctx, req.Msg.ParticipantId)
	if err != nil {
		slog.Error("RemoveParticipant failed", "participant_id", req.Msg.ParticipantId, "error", err)
		return nil, storeError(err)
	}

	if err := s.store.RemoveParticipant(ctx, participant.ID); err != nil {
		slog.Error("RemoveParticipant failed", "participant_id", participant.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Participant removed", "trip_id", participant.TripID, "participant_id", participant.ID)
	notify(ctx, s.publisher, participant.TripID, events.KindParticipantRemoved, participant.ID)

	return connect.NewResponse(&api.RemoveParticipantResponse{}), nil
}

func validateTripDates(start, end string) error {
	if err := validateDate("start_date", start); err != nil {
		return err
	}
	if err := validateDate("end_date", end); err != nil {
		return err
	}
	if start != "" && end != "" && end < start {
		return invalidArgument("end_date %s is before start_date %s", end, start)
	}
	return nil
}
