package service

import (
	"context"
	"slices"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/events"
	api "github.com/mmynk/tripsplit/pkg/api"
)

func ptr[T any](v T) *T { return &v }

func TestCreateTrip(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := ts.trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{
		Name:      "  Lisbon 2026  ",
		Location:  "Portugal",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-08",
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	trip := resp.Msg.Trip
	if trip.Id == "" {
		t.Error("expected non-empty trip ID")
	}
	if trip.Name != "Lisbon 2026" {
		t.Errorf("name: expected 'Lisbon 2026', got '%s'", trip.Name)
	}
	if trip.StartDate != "2026-05-01" || trip.EndDate != "2026-05-08" {
		t.Errorf("dates: got %s..%s", trip.StartDate, trip.EndDate)
	}
	if trip.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
	if trip.IsArchived {
		t.Error("new trip should not be archived")
	}
}

func TestCreateTrip_Validation(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.CreateTripRequest
	}{
		{"empty name", &api.CreateTripRequest{Name: "   "}},
		{"malformed start date", &api.CreateTripRequest{Name: "Trip", StartDate: "05/01/2026"}},
		{"malformed end date", &api.CreateTripRequest{Name: "Trip", EndDate: "2026-13-01"}},
		{"end before start", &api.CreateTripRequest{Name: "Trip", StartDate: "2026-05-08", EndDate: "2026-05-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.trips.CreateTrip(context.Background(), connect.NewRequest(tt.req))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestGetTrip(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	tripID, _ := seedTrip(t, ts, "Charlie", "Alice", "Bob")

	resp, err := ts.trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripId: tripID}))
	if err != nil {
		t.Fatalf("GetTrip failed: %v", err)
	}

	if resp.Msg.Trip.Name != "Lisbon" {
		t.Errorf("name: expected 'Lisbon', got '%s'", resp.Msg.Trip.Name)
	}
	var names []string
	for _, p := range resp.Msg.Participants {
		names = append(names, p.Name)
	}
	if !slices.Equal(names, []string{"Alice", "Bob", "Charlie"}) {
		t.Errorf("participants: expected [Alice Bob Charlie], got %v", names)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := ts.trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripId: "nonexistent-id"}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = ts.trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestListTrips_HidesArchived(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	active, _ := seedTrip(t, ts)
	archived, _ := seedTrip(t, ts)
	if _, err := ts.trips.UpdateTrip(ctx, connect.NewRequest(&api.UpdateTripRequest{
		TripId:     archived,
		IsArchived: ptr(true),
	})); err != nil {
		t.Fatalf("UpdateTrip failed: %v", err)
	}

	resp, err := ts.trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{}))
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(resp.Msg.Trips) != 1 || resp.Msg.Trips[0].Id != active {
		t.Errorf("expected only the active trip, got %d trips", len(resp.Msg.Trips))
	}

	resp, err = ts.trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{IncludeArchived: true}))
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(resp.Msg.Trips) != 2 {
		t.Errorf("expected 2 trips with archived included, got %d", len(resp.Msg.Trips))
	}
}

func TestUpdateTrip_Partial(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	created, err := ts.trips.CreateTrip(ctx, connect.NewRequest(&api.CreateTripRequest{
		Name:      "Alps",
		Location:  "Chamonix",
		StartDate: "2026-02-01",
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	tripID := created.Msg.Trip.Id

	resp, err := ts.trips.UpdateTrip(ctx, connect.NewRequest(&api.UpdateTripRequest{
		TripId:  tripID,
		EndDate: ptr("2026-02-10"),
	}))
	if err != nil {
		t.Fatalf("UpdateTrip failed: %v", err)
	}

	trip := resp.Msg.Trip
	if trip.Name != "Alps" || trip.Location != "Chamonix" {
		t.Errorf("untouched fields changed: %+v", trip)
	}
	if trip.EndDate != "2026-02-10" {
		t.Errorf("end date: expected 2026-02-10, got %s", trip.EndDate)
	}
	if trip.UpdatedAt < trip.CreatedAt {
		t.Errorf("UpdatedAt %d before CreatedAt %d", trip.UpdatedAt, trip.CreatedAt)
	}

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := ts.trips.UpdateTrip(ctx, connect.NewRequest(&api.UpdateTripRequest{TripId: tripID, Name: ptr("  ")}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("end date before stored start date rejected", func(t *testing.T) {
		_, err := ts.trips.UpdateTrip(ctx, connect.NewRequest(&api.UpdateTripRequest{TripId: tripID, EndDate: ptr("2026-01-01")}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown trip", func(t *testing.T) {
		_, err := ts.trips.UpdateTrip(ctx, connect.NewRequest(&api.UpdateTripRequest{TripId: "missing", Name: ptr("x")}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestDeleteTrip(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tripID, ids := seedTrip(t, ts, "Alice", "Bob")
	if _, err := ts.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
		TripId:      tripID,
		Description: "Taxi",
		Amount:      dec("20"),
		PayerId:     ids["Alice"],
	})); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if _, err := ts.trips.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripId: tripID})); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	_, err := ts.trips.GetTrip(ctx, connect.NewRequest(&api.GetTripRequest{TripId: tripID}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = ts.trips.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripId: tripID}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestParticipants(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tripID, ids := seedTrip(t, ts, "Alice", "Bob")

	t.Run("add requires a name", func(t *testing.T) {
		_, err := ts.trips.AddParticipant(ctx, connect.NewRequest(&api.AddParticipantRequest{TripId: tripID, Name: " "}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("add to unknown trip", func(t *testing.T) {
		_, err := ts.trips.AddParticipant(ctx, connect.NewRequest(&api.AddParticipantRequest{TripId: "missing", Name: "Eve"}))
		expectCode(t, err, connect.CodeNotFound)
	})

	t.Run("rename", func(t *testing.T) {
		resp, err := ts.trips.RenameParticipant(ctx, connect.NewRequest(&api.RenameParticipantRequest{
			ParticipantId: ids["Bob"],
			Name:          "Robert",
		}))
		if err != nil {
			t.Fatalf("RenameParticipant failed: %v", err)
		}
		if resp.Msg.Participant.Name != "Robert" {
			t.Errorf("name: expected 'Robert', got '%s'", resp.Msg.Participant.Name)
		}
	})

	t.Run("remove referenced participant fails", func(t *testing.T) {
		if _, err := ts.expenses.CreateTransfer(ctx, connect.NewRequest(&api.CreateTransferRequest{
			TripId: tripID,
			FromId: ids["Bob"],
			ToId:   ids["Alice"],
			Amount: dec("5"),
		})); err != nil {
			t.Fatalf("CreateTransfer failed: %v", err)
		}

		_, err := ts.trips.RemoveParticipant(ctx, connect.NewRequest(&api.RemoveParticipantRequest{ParticipantId: ids["Bob"]}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("remove unreferenced participant", func(t *testing.T) {
		added, err := ts.trips.AddParticipant(ctx, connect.NewRequest(&api.AddParticipantRequest{TripId: tripID, Name: "Dave"}))
		if err != nil {
			t.Fatalf("AddParticipant failed: %v", err)
		}
		if _, err := ts.trips.RemoveParticipant(ctx, connect.NewRequest(&api.RemoveParticipantRequest{
			ParticipantId: added.Msg.Participant.Id,
		})); err != nil {
			t.Fatalf("RemoveParticipant failed: %v", err)
		}

		list, err := ts.trips.ListParticipants(ctx, connect.NewRequest(&api.ListParticipantsRequest{TripId: tripID}))
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		if len(list.Msg.Participants) != 2 {
			t.Errorf("expected 2 participants, got %d", len(list.Msg.Participants))
		}
	})

	t.Run("list unknown trip", func(t *testing.T) {
		_, err := ts.trips.ListParticipants(ctx, connect.NewRequest(&api.ListParticipantsRequest{TripId: "missing"}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestTripService_PublishesChanges(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tripID, ids := seedTrip(t, ts, "Alice")
	if _, err := ts.trips.RenameParticipant(ctx, connect.NewRequest(&api.RenameParticipantRequest{
		ParticipantId: ids["Alice"],
		Name:          "Alicia",
	})); err != nil {
		t.Fatalf("RenameParticipant failed: %v", err)
	}
	if _, err := ts.trips.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripId: tripID})); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	want := []string{events.KindParticipantAdded, events.KindParticipantRenamed, events.KindTripDeleted}
	if got := ts.publisher.kinds(); !slices.Equal(got, want) {
		t.Errorf("published kinds: expected %v, got %v", want, got)
	}
}
