package api

import "github.com/shopspring/decimal"

// Split modes accepted by CreateExpense and UpdateExpense.
const (
	// SplitEqual divides the amount across the whole roster when no shares
	// are given.
	SplitEqual = "equal"
	// SplitCustom requires explicit shares that add up to the amount.
	SplitCustom = "custom"
)

type Share struct {
	ParticipantId string          `json:"participantId"`
	Amount        decimal.Decimal `json:"amount"`
}

type Expense struct {
	Id          string          `json:"id"`
	TripId      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PayerId     string          `json:"payerId"`
	Date        int64           `json:"date"`
	Shares      []*Share        `json:"shares"`
	CreatedAt   int64           `json:"createdAt"`
}

type Transfer struct {
	Id          string          `json:"id"`
	TripId      string          `json:"tripId"`
	FromId      string          `json:"fromId"`
	ToId        string          `json:"toId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	Date        int64           `json:"date"`
	CreatedAt   int64           `json:"createdAt"`
}

type CreateExpenseRequest struct {
	TripId      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	PayerId     string          `json:"payerId"`
	Date        int64           `json:"date,omitempty"`
	Split       string          `json:"split,omitempty"`
	Shares      []*Share        `json:"shares,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

// ListExpensesRequest optionally narrows the list to expenses a participant
// paid for or has a share in.
type ListExpensesRequest struct {
	TripId        string `json:"tripId"`
	ParticipantId string `json:"participantId,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type UpdateExpenseRequest struct {
	ExpenseId   string          `json:"expenseId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	PayerId     string          `json:"payerId"`
	Date        int64           `json:"date,omitempty"`
	Split       string          `json:"split,omitempty"`
	Shares      []*Share        `json:"shares,omitempty"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type CreateTransferRequest struct {
	TripId      string          `json:"tripId"`
	FromId      string          `json:"fromId"`
	ToId        string          `json:"toId"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	Date        int64           `json:"date,omitempty"`
}

type CreateTransferResponse struct {
	Transfer *Transfer `json:"transfer"`
}

type ListTransfersRequest struct {
	TripId string `json:"tripId"`
}

type ListTransfersResponse struct {
	Transfers []*Transfer `json:"transfers"`
}

type DeleteTransferRequest struct {
	TransferId string `json:"transferId"`
}

type DeleteTransferResponse struct{}
