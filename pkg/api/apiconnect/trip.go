package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	api "github.com/mmynk/tripsplit/pkg/api"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripsplit.v1.TripService"

// Procedure paths of the TripService RPCs.
const (
	TripServiceCreateTripProcedure        = "/tripsplit.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure           = "/tripsplit.v1.TripService/GetTrip"
	TripServiceListTripsProcedure         = "/tripsplit.v1.TripService/ListTrips"
	TripServiceUpdateTripProcedure        = "/tripsplit.v1.TripService/UpdateTrip"
	TripServiceDeleteTripProcedure        = "/tripsplit.v1.TripService/DeleteTrip"
	TripServiceAddParticipantProcedure    = "/tripsplit.v1.TripService/AddParticipant"
	TripServiceListParticipantsProcedure  = "/tripsplit.v1.TripService/ListParticipants"
	TripServiceRenameParticipantProcedure = "/tripsplit.v1.TripService/RenameParticipant"
	TripServiceRemoveParticipantProcedure = "/tripsplit.v1.TripService/RemoveParticipant"
)

// TripServiceHandler manages trips and their rosters.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
}

// NewTripServiceHandler builds an HTTP handler serving every TripService procedure.
// It returns the path prefix to mount the handler on.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(TripServiceCreateTripProcedure, connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...))
	mux.Handle(TripServiceGetTripProcedure, connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...))
	mux.Handle(TripServiceListTripsProcedure, connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...))
	mux.Handle(TripServiceUpdateTripProcedure, connect.NewUnaryHandler(TripServiceUpdateTripProcedure, svc.UpdateTrip, opts...))
	mux.Handle(TripServiceDeleteTripProcedure, connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...))
	mux.Handle(TripServiceAddParticipantProcedure, connect.NewUnaryHandler(TripServiceAddParticipantProcedure, svc.AddParticipant, opts...))
	mux.Handle(TripServiceListParticipantsProcedure, connect.NewUnaryHandler(TripServiceListParticipantsProcedure, svc.ListParticipants, opts...))
	mux.Handle(TripServiceRenameParticipantProcedure, connect.NewUnaryHandler(TripServiceRenameParticipantProcedure, svc.RenameParticipant, opts...))
	mux.Handle(TripServiceRemoveParticipantProcedure, connect.NewUnaryHandler(TripServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...))
	return "/" + TripServiceName + "/", mux
}

// TripServiceClient is a client for the TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
}

type tripServiceClient struct {
	createTrip        *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip           *connect.Client[api.GetTripRequest, api.GetTripResponse]
	listTrips         *connect.Client[api.ListTripsRequest, api.ListTripsResponse]
	updateTrip        *connect.Client[api.UpdateTripRequest, api.UpdateTripResponse]
	deleteTrip        *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
	addParticipant    *connect.Client[api.AddParticipantRequest, api.AddParticipantResponse]
	listParticipants  *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	renameParticipant *connect.Client[api.RenameParticipantRequest, api.RenameParticipantResponse]
	removeParticipant *connect.Client[api.RemoveParticipantRequest, api.RemoveParticipantResponse]
}

// NewTripServiceClient constructs a client for the TripService service at baseURL
// (for example, http://localhost:8080).
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	opts = clientOptions(opts)
	return &tripServiceClient{
		createTrip:        connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:           connect.NewClient[api.GetTripRequest, api.GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:         connect.NewClient[api.ListTripsRequest, api.ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		updateTrip:        connect.NewClient[api.UpdateTripRequest, api.UpdateTripResponse](httpClient, baseURL+TripServiceUpdateTripProcedure, opts...),
		deleteTrip:        connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addParticipant:    connect.NewClient[api.AddParticipantRequest, api.AddParticipantResponse](httpClient, baseURL+TripServiceAddParticipantProcedure, opts...),
		listParticipants:  connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](httpClient, baseURL+TripServiceListParticipantsProcedure, opts...),
		renameParticipant: connect.NewClient[api.RenameParticipantRequest, api.RenameParticipantResponse](httpClient, baseURL+TripServiceRenameParticipantProcedure, opts...),
		removeParticipant: connect.NewClient[api.RemoveParticipantRequest, api.RemoveParticipantResponse](httpClient, baseURL+TripServiceRemoveParticipantProcedure, opts...),
	}
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *tripServiceClient) RenameParticipant(ctx context.Context, req *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	return c.renameParticipant.CallUnary(ctx, req)
}

func (c *tripServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

// UnimplementedTripServiceHandler returns CodeUnimplemented for every method.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.UpdateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.AddParticipant is not implemented"))
}

func (UnimplementedTripServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListParticipants is not implemented"))
}

func (UnimplementedTripServiceHandler) RenameParticipant(context.Context, *connect.Request[api.RenameParticipantRequest]) (*connect.Response[api.RenameParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.RenameParticipant is not implemented"))
}

func (UnimplementedTripServiceHandler) RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.RemoveParticipant is not implemented"))
}
