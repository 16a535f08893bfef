package models

import "github.com/shopspring/decimal"

// Transfer represents a payment between participants to clear debts.
type Transfer struct {
	// ID is the unique identifier for the transfer (UUID format).
	ID string

	// TripID is the trip this transfer belongs to.
	TripID string

	// FromID is the participant who paid (debtor settling up).
	FromID string

	// ToID is the participant who received the money.
	ToID string

	// Amount is the payment amount, always positive.
	Amount decimal.Decimal

	// Currency is an upper-case three letter code.
	Currency string

	// Description is an optional note.
	Description string

	// Date is the Unix timestamp of when the money moved.
	Date int64

	// CreatedAt is the Unix timestamp when the transfer was recorded.
	CreatedAt int64
}

// Ledger is a consistent snapshot of everything needed to compute a trip's
// balances.
type Ledger struct {
	Participants []Participant
	Expenses     []Expense
	Transfers    []Transfer
}
