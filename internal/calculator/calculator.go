// Package calculator turns a trip's expenses, transfers and roster into
// per-currency balances and a short list of settlement transfers.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// package state, safe to call from any number of goroutines.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance, in currency units, below which an amount is
// treated as zero. Share validation, balance filtering and settlement
// termination all compare against it.
var Epsilon = decimal.New(1, -2)

var (
	// ErrEmptyShares is returned when an expense carries no shares and no
	// equal split was requested.
	ErrEmptyShares = errors.New("expense shares are required")

	// ErrShareSumMismatch is returned when the shares of an expense do not
	// add up to its amount.
	ErrShareSumMismatch = errors.New("shares total does not equal expense amount")

	// ErrUnknownParticipant is returned when an expense or transfer refers to
	// a participant that is not on the roster.
	ErrUnknownParticipant = errors.New("unknown participant")
)

// ShareSumMismatchError reports the expected and actual totals of a
// rejected split.
type ShareSumMismatchError struct {
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *ShareSumMismatchError) Error() string {
	return fmt.Sprintf("shares total (%s) does not equal total amount (%s)",
		e.Actual.StringFixed(2), e.Expected.StringFixed(2))
}

func (e *ShareSumMismatchError) Unwrap() error { return ErrShareSumMismatch }

// UnknownParticipantError names the participant id that was not found and
// where it was referenced from.
type UnknownParticipantError struct {
	ParticipantID string
	Role          string // payer, share, sender, receiver
}

func (e *UnknownParticipantError) Error() string {
	return fmt.Sprintf("unknown participant %q referenced as %s", e.ParticipantID, e.Role)
}

func (e *UnknownParticipantError) Unwrap() error { return ErrUnknownParticipant }

// Participant is a member of the trip roster.
type Participant struct {
	ID   string
	Name string
}

// Share is the portion of one expense owed by one participant.
type Share struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// Expense holds the minimal expense information needed for balance calculations.
type Expense struct {
	Amount   decimal.Decimal
	Currency string
	PayerID  string
	// Shares may be empty; the expense is then split equally across the
	// roster passed to ComputeBalances.
	Shares []Share
}

// Transfer is money that already moved from one participant to another.
type Transfer struct {
	Amount   decimal.Decimal
	Currency string
	FromID   string
	ToID     string
}

// Balance is a participant's net position in one currency.
type Balance struct {
	ParticipantID   string
	ParticipantName string
	Currency        string
	Amount          decimal.Decimal // Positive = owed money, Negative = owes money
}

// Debt is a suggested payment that moves both parties toward zero.
type Debt struct {
	From     string // Person who owes
	To       string // Person who is owed
	FromName string
	ToName   string
	Amount   decimal.Decimal
	Currency string
}

// round2 rounds to the nearest cent.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// isZero reports whether d is within Epsilon of zero.
func isZero(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}
