package calculator

import (
	"github.com/shopspring/decimal"
)

// ValidateShares checks that shares add up to amount within Epsilon.
// It must run before anything about the expense is written, so a rejected
// split never leaves a half-stored expense behind.
func ValidateShares(amount decimal.Decimal, shares []Share) error {
	if len(shares) == 0 {
		return ErrEmptyShares
	}

	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}

	if total.Sub(amount).Abs().GreaterThan(Epsilon) {
		return &ShareSumMismatchError{Expected: amount, Actual: total}
	}
	return nil
}

// EqualShares splits amount equally among participantIDs in whole cents.
// Cents that do not divide evenly go to the first participants, one each,
// so the shares always sum to the rounded amount exactly.
func EqualShares(amount decimal.Decimal, participantIDs []string) []Share {
	if len(participantIDs) == 0 {
		return nil
	}

	total := round2(amount)
	n := decimal.NewFromInt(int64(len(participantIDs)))
	base := total.Div(n).RoundDown(2)
	leftover := total.Sub(base.Mul(n)).Shift(2).IntPart()

	cent := decimal.New(1, -2)
	shares := make([]Share, len(participantIDs))
	for i, id := range participantIDs {
		share := base
		if int64(i) < leftover {
			share = share.Add(cent)
		}
		shares[i] = Share{ParticipantID: id, Amount: share}
	}
	return shares
}
