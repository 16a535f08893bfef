package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/storage"
	api "github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService. Balances and debts are
// recomputed from a fresh ledger snapshot on every call.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewLedgerService creates a new LedgerService. m may be nil.
func NewLedgerService(store storage.Store, m *metrics.Metrics) *LedgerService {
	return &LedgerService{store: store, metrics: m}
}

// ledgerView is everything derived from one snapshot.
type ledgerView struct {
	participants []calculator.Participant
	expenses     []calculator.Expense
	balances     []calculator.Balance
}

func (s *LedgerService) load(ctx context.Context, tripID string) (*ledgerView, error) {
	if tripID == "" {
		return nil, invalidArgument("trip_id required")
	}

	ledger, err := s.store.GetLedger(ctx, tripID)
	if err != nil {
		slog.Error("Failed to load ledger", "trip_id", tripID, "error", err)
		return nil, storeError(err)
	}

	participants, expenses, transfers := toCalculatorInputs(ledger)
	balances, err := calculator.ComputeBalances(participants, expenses, transfers)
	if err != nil {
		// Foreign keys keep stored references on the roster, so this is a
		// corrupted ledger rather than a bad request.
		slog.Error("Failed to compute balances", "trip_id", tripID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return &ledgerView{
		participants: participants,
		expenses:     expenses,
		balances:     balances,
	}, nil
}

func (s *LedgerService) debts(view *ledgerView) []calculator.Debt {
	debts := calculator.ComputeDebts(view.balances)
	s.metrics.ObserveDebts(len(debts))
	return debts
}

// GetBalances returns every participant's net position per currency.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	slog.Info("GetBalances request received", "trip_id", req.Msg.TripId)

	view, err := s.load(ctx, req.Msg.TripId)
	if err != nil {
		return nil, err
	}

	slog.Info("GetBalances successful", "trip_id", req.Msg.TripId, "balances_count", len(view.balances))

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances: toAPIBalances(view.balances),
	}), nil
}

// GetDebts returns a short list of transfers that settles the trip.
func (s *LedgerService) GetDebts(ctx context.Context, req *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	slog.Info("GetDebts request received", "trip_id", req.Msg.TripId)

	view, err := s.load(ctx, req.Msg.TripId)
	if err != nil {
		return nil, err
	}
	debts := s.debts(view)

	slog.Info("GetDebts successful", "trip_id", req.Msg.TripId, "debts_count", len(debts))

	return connect.NewResponse(&api.GetDebtsResponse{
		Debts: toAPIDebts(debts),
	}), nil
}

// GetSummary returns balances, debts and the spending distribution computed
// from the same snapshot.
func (s *LedgerService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	slog.Info("GetSummary request received", "trip_id", req.Msg.TripId)

	view, err := s.load(ctx, req.Msg.TripId)
	if err != nil {
		return nil, err
	}
	debts := s.debts(view)

	spending, err := calculator.SummarizeSpending(view.participants, view.expenses)
	if err != nil {
		slog.Error("GetSummary failed - spending summary", "trip_id", req.Msg.TripId, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("GetSummary successful",
		"trip_id", req.Msg.TripId,
		"balances_count", len(view.balances),
		"debts_count", len(debts),
		"currencies_count", len(spending),
	)

	return connect.NewResponse(&api.GetSummaryResponse{
		Balances: toAPIBalances(view.balances),
		Debts:    toAPIDebts(debts),
		Spending: toAPISpending(spending),
	}), nil
}

// ValidateShares pre-checks a custom split without touching storage. A
// mismatch is reported in the response, not as an RPC error.
func (s *LedgerService) ValidateShares(ctx context.Context, req *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error) {
	slog.Debug("ValidateShares request received",
		"amount", req.Msg.Amount,
		"shares_count", len(req.Msg.Shares),
	)

	if err := validateMoney("amount", req.Msg.Amount); err != nil {
		return nil, err
	}

	shares := fromAPIShares(req.Msg.Shares)
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Amount)
	}

	resp := &api.ValidateSharesResponse{
		Result:      api.ShareCheckOK,
		SharesTotal: total,
	}
	err := calculator.ValidateShares(req.Msg.Amount, shares)
	switch {
	case err == nil:
	case errors.Is(err, calculator.ErrEmptyShares):
		resp.Result = api.ShareCheckEmptyShares
		resp.Message = err.Error()
	case errors.Is(err, calculator.ErrShareSumMismatch):
		resp.Result = api.ShareCheckMismatch
		resp.Message = err.Error()
	default:
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(resp), nil
}
