package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	api "github.com/mmynk/tripsplit/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "tripsplit.v1.LedgerService"

// Procedure paths of the LedgerService RPCs.
const (
	LedgerServiceGetBalancesProcedure    = "/tripsplit.v1.LedgerService/GetBalances"
	LedgerServiceGetDebtsProcedure       = "/tripsplit.v1.LedgerService/GetDebts"
	LedgerServiceGetSummaryProcedure     = "/tripsplit.v1.LedgerService/GetSummary"
	LedgerServiceValidateSharesProcedure = "/tripsplit.v1.LedgerService/ValidateShares"
)

// LedgerServiceHandler computes balances and settlement suggestions.
type LedgerServiceHandler interface {
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ValidateShares(context.Context, *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler serving every LedgerService procedure.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...))
	mux.Handle(LedgerServiceGetDebtsProcedure, connect.NewUnaryHandler(LedgerServiceGetDebtsProcedure, svc.GetDebts, opts...))
	mux.Handle(LedgerServiceGetSummaryProcedure, connect.NewUnaryHandler(LedgerServiceGetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(LedgerServiceValidateSharesProcedure, connect.NewUnaryHandler(LedgerServiceValidateSharesProcedure, svc.ValidateShares, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a client for the LedgerService service.
type LedgerServiceClient interface {
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ValidateShares(context.Context, *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error)
}

type ledgerServiceClient struct {
	getBalances    *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	getDebts       *connect.Client[api.GetDebtsRequest, api.GetDebtsResponse]
	getSummary     *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
	validateShares *connect.Client[api.ValidateSharesRequest, api.ValidateSharesResponse]
}

// NewLedgerServiceClient constructs a client for the LedgerService service at baseURL
// (for example, http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		getBalances:    connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		getDebts:       connect.NewClient[api.GetDebtsRequest, api.GetDebtsResponse](httpClient, baseURL+LedgerServiceGetDebtsProcedure, opts...),
		getSummary:     connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](httpClient, baseURL+LedgerServiceGetSummaryProcedure, opts...),
		validateShares: connect.NewClient[api.ValidateSharesRequest, api.ValidateSharesResponse](httpClient, baseURL+LedgerServiceValidateSharesProcedure, opts...),
	}
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetDebts(ctx context.Context, req *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	return c.getDebts.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ValidateShares(ctx context.Context, req *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error) {
	return c.validateShares.CallUnary(ctx, req)
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented for every method.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.LedgerService.GetBalances is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetDebts(context.Context, *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.LedgerService.GetDebts is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.LedgerService.GetSummary is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ValidateShares(context.Context, *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.LedgerService.ValidateShares is not implemented"))
}
