package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/events"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	api "github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store           storage.Store
	publisher       events.Publisher
	defaultCurrency string
}

// NewExpenseService creates a new ExpenseService. Expenses and transfers
// without a currency are recorded in defaultCurrency.
func NewExpenseService(store storage.Store, publisher events.Publisher, defaultCurrency string) *ExpenseService {
	return &ExpenseService{
		store:           store,
		publisher:       orNop(publisher),
		defaultCurrency: defaultCurrency,
	}
}

// expenseInput is the part of CreateExpense and UpdateExpense requests that
// describes the expense itself.
type expenseInput struct {
	description string
	amount      decimal.Decimal
	currency    string
	payerID     string
	date        int64
	split       string
	shares      []*api.Share
}

// buildExpense validates in against the trip's roster and resolves its
// shares. Nothing is written. The roster is read outside the write
// transaction; a participant removed in between surfaces from the store as
// ErrInvalidReference and reaches the client as FailedPrecondition.
func (s *ExpenseService) buildExpense(ctx context.Context, tripID string, in expenseInput) (*models.Expense, error) {
	description := strings.TrimSpace(in.description)
	if description == "" {
		return nil, invalidArgument("description required")
	}
	if err := validateMoney("amount", in.amount); err != nil {
		return nil, err
	}
	currency, err := calculator.NormalizeCurrency(in.currency, s.defaultCurrency)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if in.payerID == "" {
		return nil, invalidArgument("payer_id required")
	}

	r, err := s.roster(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := r.require(in.payerID, "payer"); err != nil {
		return nil, err
	}

	shares, err := resolveShares(r, in.amount, in.split, in.shares)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		TripID:      tripID,
		Description: description,
		Amount:      in.amount,
		Currency:    currency,
		PayerID:     in.payerID,
		Date:        in.date,
		Shares:      make([]models.ExpenseShare, len(shares)),
	}
	for i, share := range shares {
		expense.Shares[i] = models.ExpenseShare{ParticipantID: share.ParticipantID, Amount: share.Amount}
	}
	return expense, nil
}

// resolveShares turns the requested split into explicit shares. An equal
// split is frozen over the current roster, so later roster changes do not
// alter the expense.
func resolveShares(r roster, amount decimal.Decimal, split string, requested []*api.Share) ([]calculator.Share, error) {
	split = strings.ToLower(strings.TrimSpace(split))
	if split == "" {
		split = api.SplitEqual
		if len(requested) > 0 {
			split = api.SplitCustom
		}
	}

	switch split {
	case api.SplitEqual:
		if len(requested) > 0 {
			return nil, invalidArgument("shares must be empty for an equal split")
		}
		return calculator.EqualShares(amount, r.ids), nil

	case api.SplitCustom:
		shares := fromAPIShares(requested)
		seen := make(map[string]bool, len(shares))
		for _, share := range shares {
			if share.ParticipantID == "" {
				return nil, invalidArgument("share participant_id required")
			}
			if err := r.require(share.ParticipantID, "share"); err != nil {
				return nil, err
			}
			if seen[share.ParticipantID] {
				return nil, invalidArgument("participant %s has more than one share", share.ParticipantID)
			}
			seen[share.ParticipantID] = true
			if share.Amount.IsNegative() {
				return nil, invalidArgument("share of %s must not be negative", share.ParticipantID)
			}
			if !share.Amount.Equal(share.Amount.Round(2)) {
				return nil, invalidArgument("share of %s must have at most two decimal places", share.ParticipantID)
			}
		}
		if err := calculator.ValidateShares(amount, shares); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return shares, nil

	default:
		return nil, invalidArgument("unknown split %q: must be %q or %q", split, api.SplitEqual, api.SplitCustom)
	}
}

// roster loads the participants of an existing trip.
func (s *ExpenseService) roster(ctx context.Context, tripID string) (roster, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return roster{}, storeError(err)
	}
	participants, err := s.store.ListParticipants(ctx, tripID)
	if err != nil {
		return roster{}, storeError(err)
	}
	return newRoster(participants), nil
}

// CreateExpense validates and records a new expense with its shares.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"trip_id", req.Msg.TripId,
		"amount", req.Msg.Amount,
		"split", req.Msg.Split,
		"shares_count", len(req.Msg.Shares),
	)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}

	expense, err := s.buildExpense(ctx, req.Msg.TripId, expenseInput{
		description: req.Msg.Description,
		amount:      req.Msg.Amount,
		currency:    req.Msg.Currency,
		payerID:     req.Msg.PayerId,
		date:        req.Msg.Date,
		split:       req.Msg.Split,
		shares:      req.Msg.Shares,
	})
	if err != nil {
		slog.Warn("CreateExpense rejected", "trip_id", req.Msg.TripId, "error", err)
		return nil, err
	}

	// Save to storage (generates ID, CreatedAt and a default Date)
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense created", "trip_id", expense.TripID, "expense_id", expense.ID)
	notify(ctx, s.publisher, expense.TripID, events.KindExpenseCreated, expense.ID)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// GetExpense retrieves an expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseId)

	if req.Msg.ExpenseId == "" {
		return nil, invalidArgument("expense_id required")
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses returns a trip's expenses, newest first, optionally only those
// a participant paid for or shares in.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received",
		"trip_id", req.Msg.TripId,
		"participant_id", req.Msg.ParticipantId,
	)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}
	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		slog.Error("ListExpenses failed - trip not found", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	apiExpenses := make([]*api.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if req.Msg.ParticipantId != "" && !expense.Involves(req.Msg.ParticipantId) {
			continue
		}
		apiExpenses = append(apiExpenses, toAPIExpense(expense))
	}

	slog.Info("ListExpenses successful", "trip_id", req.Msg.TripId, "count", len(apiExpenses))

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: apiExpenses,
	}), nil
}

// UpdateExpense rewrites an expense and replaces all of its shares.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received",
		"expense_id", req.Msg.ExpenseId,
		"amount", req.Msg.Amount,
		"split", req.Msg.Split,
		"shares_count", len(req.Msg.Shares),
	)

	if req.Msg.ExpenseId == "" {
		return nil, invalidArgument("expense_id required")
	}

	current, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storeError(err)
	}

	date := req.Msg.Date
	if date == 0 {
		date = current.Date
	}
	expense, err := s.buildExpense(ctx, current.TripID, expenseInput{
		description: req.Msg.Description,
		amount:      req.Msg.Amount,
		currency:    req.Msg.Currency,
		payerID:     req.Msg.PayerId,
		date:        date,
		split:       req.Msg.Split,
		shares:      req.Msg.Shares,
	})
	if err != nil {
		slog.Warn("UpdateExpense rejected", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, err
	}
	expense.ID = current.ID

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense updated", "trip_id", expense.TripID, "expense_id", expense.ID)
	notify(ctx, s.publisher, expense.TripID, events.KindExpenseUpdated, expense.ID)

	return connect.NewResponse(&api.UpdateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// DeleteExpense removes an expense and its shares.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	if req.Msg.ExpenseId == "" {
		return nil, invalidArgument("expense_id required")
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storeError(err)
	}
	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense deleted", "trip_id", expense.TripID, "expense_id", expense.ID)
	notify(ctx, s.publisher, expense.TripID, events.KindExpenseDeleted, expense.ID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// CreateTransfer records money that moved directly between two participants.
func (s *ExpenseService) CreateTransfer(ctx context.Context, req *connect.Request[api.CreateTransferRequest]) (*connect.Response[api.CreateTransferResponse], error) {
	slog.Info("CreateTransfer request received",
		"trip_id", req.Msg.TripId,
		"from_id", req.Msg.FromId,
		"to_id", req.Msg.ToId,
		"amount", req.Msg.Amount,
	)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}
	if req.Msg.FromId == "" || req.Msg.ToId == "" {
		return nil, invalidArgument("from_id and to_id required")
	}
	if req.Msg.FromId == req.Msg.ToId {
		return nil, invalidArgument("from_id and to_id must differ")
	}
	if err := validateMoney("amount", req.Msg.Amount); err != nil {
		return nil, err
	}
	currency, err := calculator.NormalizeCurrency(req.Msg.Currency, s.defaultCurrency)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	r, err := s.roster(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("CreateTransfer failed - could not load roster", "trip_id", req.Msg.TripId, "error", err)
		return nil, err
	}
	if err := r.require(req.Msg.FromId, "sender"); err != nil {
		return nil, err
	}
	if err := r.require(req.Msg.ToId, "receiver"); err != nil {
		return nil, err
	}

	transfer := &models.Transfer{
		TripID:      req.Msg.TripId,
		FromID:      req.Msg.FromId,
		ToID:        req.Msg.ToId,
		Amount:      req.Msg.Amount,
		Currency:    currency,
		Description: strings.TrimSpace(req.Msg.Description),
		Date:        req.Msg.Date,
	}
	if err := s.store.CreateTransfer(ctx, transfer); err != nil {
		slog.Error("CreateTransfer failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Transfer created", "trip_id", transfer.TripID, "transfer_id", transfer.ID)
	notify(ctx, s.publisher, transfer.TripID, events.KindTransferCreated, transfer.ID)

	return connect.NewResponse(&api.CreateTransferResponse{
		Transfer: toAPITransfer(transfer),
	}), nil
}

// ListTransfers returns a trip's transfers, newest first.
func (s *ExpenseService) ListTransfers(ctx context.Context, req *connect.Request[api.ListTransfersRequest]) (*connect.Response[api.ListTransfersResponse], error) {
	slog.Info("ListTransfers request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, invalidArgument("trip_id required")
	}
	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		slog.Error("ListTransfers failed - trip not found", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	transfers, err := s.store.ListTransfers(ctx, req.Msg.TripId)
	if err != nil {
		slog.Error("ListTransfers failed", "trip_id", req.Msg.TripId, "error", err)
		return nil, storeError(err)
	}

	apiTransfers := make([]*api.Transfer, len(transfers))
	for i, transfer := range transfers {
		apiTransfers[i] = toAPITransfer(transfer)
	}

	return connect.NewResponse(&api.ListTransfersResponse{
		Transfers: apiTransfers,
	}), nil
}

// DeleteTransfer removes a transfer.
func (s *ExpenseService) DeleteTransfer(ctx context.Context, req *connect.Request[api.DeleteTransferRequest]) (*connect.Response[api.DeleteTransferResponse], error) {
	slog.Info("DeleteTransfer request received", "transfer_id", req.Msg.TransferId)

	if req.Msg.TransferId == "" {
		return nil, invalidArgument("transfer_id required")
	}

	transfer, err := s.store.GetTransfer(ctx, req.Msg.TransferId)
	if err != nil {
		slog.Error("DeleteTransfer failed", "transfer_id", req.Msg.TransferId, "error", err)
		return nil, storeError(err)
	}
	if err := s.store.DeleteTransfer(ctx, transfer.ID); err != nil {
		slog.Error("DeleteTransfer failed", "transfer_id", transfer.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Transfer deleted", "trip_id", transfer.TripID, "transfer_id", transfer.ID)
	notify(ctx, s.publisher, transfer.TripID, events.KindTransferDeleted, transfer.ID)

	return connect.NewResponse(&api.DeleteTransferResponse{}), nil
}
