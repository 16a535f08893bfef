package models

import "github.com/shopspring/decimal"

// Expense is a payment made by one participant for the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Description is a short human-readable label (e.g., "Dinner").
	Description string

	// Amount is the total paid, always positive.
	Amount decimal.Decimal

	// Currency is an upper-case three letter code.
	Currency string

	// PayerID is the participant who paid.
	PayerID string

	// Date is the Unix timestamp of when the expense happened.
	Date int64

	// Shares split Amount between participants. They are written and
	// replaced together with the expense, never one by one.
	Shares []ExpenseShare

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseShare is the part of an expense owed by one participant.
type ExpenseShare struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// Involves reports whether participantID paid for or shares in the expense.
func (e *Expense) Involves(participantID string) bool {
	if e.PayerID == participantID {
		return true
	}
	for _, s := range e.Shares {
		if s.ParticipantID == participantID {
			return true
		}
	}
	return false
}
