package api

import "github.com/shopspring/decimal"

type Balance struct {
	ParticipantId   string          `json:"participantId"`
	ParticipantName string          `json:"participantName"`
	Currency        string          `json:"currency"`
	Balance         decimal.Decimal `json:"balance"` // Positive = owed money, Negative = owes money
}

type Debt struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	FromName string          `json:"fromName"`
	ToName   string          `json:"toName"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type ParticipantTotal struct {
	ParticipantId   string          `json:"participantId"`
	ParticipantName string          `json:"participantName"`
	Amount          decimal.Decimal `json:"amount"`
	Percentage      decimal.Decimal `json:"percentage"`
}

type CurrencySummary struct {
	Currency string              `json:"currency"`
	Symbol   string              `json:"symbol"`
	Total    decimal.Decimal     `json:"total"`
	Paid     []*ParticipantTotal `json:"paid"`
	Consumed []*ParticipantTotal `json:"consumed"`
}

type GetBalancesRequest struct {
	TripId string `json:"tripId"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type GetDebtsRequest struct {
	TripId string `json:"tripId"`
}

type GetDebtsResponse struct {
	Debts []*Debt `json:"debts"`
}

type GetSummaryRequest struct {
	TripId string `json:"tripId"`
}

type GetSummaryResponse struct {
	Balances []*Balance         `json:"balances"`
	Debts    []*Debt            `json:"debts"`
	Spending []*CurrencySummary `json:"spending"`
}

// Outcomes reported by ValidateShares.
const (
	ShareCheckOK          = "ok"
	ShareCheckMismatch    = "share_sum_mismatch"
	ShareCheckEmptyShares = "empty_shares"
)

type ValidateSharesRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Shares []*Share        `json:"shares"`
}

type ValidateSharesResponse struct {
	Result      string          `json:"result"`
	SharesTotal decimal.Decimal `json:"sharesTotal"`
	Message     string          `json:"message,omitempty"`
}
