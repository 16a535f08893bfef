package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	api "github.com/mmynk/tripsplit/pkg/api"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "tripsplit.v1.ExpenseService"

// Procedure paths of the ExpenseService RPCs.
const (
	ExpenseServiceCreateExpenseProcedure  = "/tripsplit.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure     = "/tripsplit.v1.ExpenseService/GetExpense"
	ExpenseServiceListExpensesProcedure   = "/tripsplit.v1.ExpenseService/ListExpenses"
	ExpenseServiceUpdateExpenseProcedure  = "/tripsplit.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure  = "/tripsplit.v1.ExpenseService/DeleteExpense"
	ExpenseServiceCreateTransferProcedure = "/tripsplit.v1.ExpenseService/CreateTransfer"
	ExpenseServiceListTransfersProcedure  = "/tripsplit.v1.ExpenseService/ListTransfers"
	ExpenseServiceDeleteTransferProcedure = "/tripsplit.v1.ExpenseService/DeleteTransfer"
)

// ExpenseServiceHandler records expenses, their shares, and direct transfers.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	CreateTransfer(context.Context, *connect.Request[api.CreateTransferRequest]) (*connect.Response[api.CreateTransferResponse], error)
	ListTransfers(context.Context, *connect.Request[api.ListTransfersRequest]) (*connect.Response[api.ListTransfersResponse], error)
	DeleteTransfer(context.Context, *connect.Request[api.DeleteTransferRequest]) (*connect.Response[api.DeleteTransferResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler serving every ExpenseService procedure.
// It returns the path prefix to mount the handler on.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ExpenseServiceCreateExpenseProcedure, connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...))
	mux.Handle(ExpenseServiceGetExpenseProcedure, connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...))
	mux.Handle(ExpenseServiceListExpensesProcedure, connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(ExpenseServiceUpdateExpenseProcedure, connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...))
	mux.Handle(ExpenseServiceDeleteExpenseProcedure, connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(ExpenseServiceCreateTransferProcedure, connect.NewUnaryHandler(ExpenseServiceCreateTransferProcedure, svc.CreateTransfer, opts...))
	mux.Handle(ExpenseServiceListTransfersProcedure, connect.NewUnaryHandler(ExpenseServiceListTransfersProcedure, svc.ListTransfers, opts...))
	mux.Handle(ExpenseServiceDeleteTransferProcedure, connect.NewUnaryHandler(ExpenseServiceDeleteTransferProcedure, svc.DeleteTransfer, opts...))
	return "/" + ExpenseServiceName + "/", mux
}

// ExpenseServiceClient is a client for the ExpenseService service.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	CreateTransfer(context.Context, *connect.Request[api.CreateTransferRequest]) (*connect.Response[api.CreateTransferResponse], error)
	ListTransfers(context.Context, *connect.Request[api.ListTransfersRequest]) (*connect.Response[api.ListTransfersResponse], error)
	DeleteTransfer(context.Context, *connect.Request[api.DeleteTransferRequest]) (*connect.Response[api.DeleteTransferResponse], error)
}

type expenseServiceClient struct {
	createExpense  *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	getExpense     *connect.Client[api.GetExpenseRequest, api.GetExpenseResponse]
	listExpenses   *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	updateExpense  *connect.Client[api.UpdateExpenseRequest, api.UpdateExpenseResponse]
	deleteExpense  *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	createTransfer *connect.Client[api.CreateTransferRequest, api.CreateTransferResponse]
	listTransfers  *connect.Client[api.ListTransfersRequest, api.ListTransfersResponse]
	deleteTransfer *connect.Client[api.DeleteTransferRequest, api.DeleteTransferResponse]
}

// NewExpenseServiceClient constructs a client for the ExpenseService service at baseURL
// (for example, http://localhost:8080).
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	opts = clientOptions(opts)
	return &expenseServiceClient{
		createExpense:  connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		getExpense:     connect.NewClient[api.GetExpenseRequest, api.GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		listExpenses:   connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		updateExpense:  connect.NewClient[api.UpdateExpenseRequest, api.UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense:  connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		createTransfer: connect.NewClient[api.CreateTransferRequest, api.CreateTransferResponse](httpClient, baseURL+ExpenseServiceCreateTransferProcedure, opts...),
		listTransfers:  connect.NewClient[api.ListTransfersRequest, api.ListTransfersResponse](httpClient, baseURL+ExpenseServiceListTransfersProcedure, opts...),
		deleteTransfer: connect.NewClient[api.DeleteTransferRequest, api.DeleteTransferResponse](httpClient, baseURL+ExpenseServiceDeleteTransferProcedure, opts...),
	}
}

func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) CreateTransfer(ctx context.Context, req *connect.Request[api.CreateTransferRequest]) (*connect.Response[api.CreateTransferResponse], error) {
	return c.createTransfer.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListTransfers(ctx context.Context, req *connect.Request[api.ListTransfersRequest]) (*connect.Response[api.ListTransfersResponse], error) {
	return c.listTransfers.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteTransfer(ctx context.Context, req *connect.Request[api.DeleteTransferRequest]) (*connect.Response[api.DeleteTransferResponse], error) {
	return c.deleteTransfer.CallUnary(ctx, req)
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented for every method.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.CreateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.GetExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.ListExpenses is not implemented"))
}

func (UnimplementedExpenseServiceHandler) UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.UpdateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.DeleteExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) CreateTransfer(context.Context, *connect.Request[api.CreateTransferRequest]) (*connect.Response[api.CreateTransferResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.CreateTransfer is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListTransfers(context.Context, *connect.Request[api.ListTransfersRequest]) (*connect.Response[api.ListTransfersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.ListTransfers is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteTransfer(context.Context, *connect.Request[api.DeleteTransferRequest]) (*connect.Response[api.DeleteTransferResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.DeleteTransfer is not implemented"))
}
