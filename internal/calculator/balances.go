package calculator

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ledgerKey addresses one participant's running total in one currency.
type ledgerKey struct {
	participantID string
	currency      string
}

// ledger accumulates signed amounts per participant and currency. Only ids
// present on the roster can be posted to.
type ledger struct {
	order      []Participant
	roster     map[string]Participant
	totals     map[ledgerKey]decimal.Decimal
	currencies map[string]struct{}
}

func newLedger(participants []Participant) *ledger {
	roster := make(map[string]Participant, len(participants))
	order := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if _, dup := roster[p.ID]; dup {
			continue
		}
		roster[p.ID] = p
		order = append(order, p)
	}
	return &ledger{
		order:      order,
		roster:     roster,
		totals:     make(map[ledgerKey]decimal.Decimal),
		currencies: make(map[string]struct{}),
	}
}

func (l *ledger) check(participantID, role string) error {
	if _, ok := l.roster[participantID]; !ok {
		return &UnknownParticipantError{ParticipantID: participantID, Role: role}
	}
	return nil
}

func (l *ledger) post(participantID, currency string, amount decimal.Decimal) {
	k := ledgerKey{participantID: participantID, currency: currency}
	l.totals[k] = l.totals[k].Add(amount)
	l.currencies[currency] = struct{}{}
}

// ComputeBalances computes every participant's net balance per currency.
//
// Algorithm:
//   - For each expense: payer is credited the full amount, each share holder
//     is debited their share. An expense without shares is split equally
//     across the whole roster as it is now.
//   - For each transfer: sender is credited, receiver is debited. Money sent
//     pays down the sender's debt and uses up the receiver's credit.
//   - Totals are rounded to the cent and anything within Epsilon of zero is
//     dropped as settled.
//
// Results are ordered by roster position, then currency code. An id that is
// not on the roster fails the whole computation with *UnknownParticipantError.
func ComputeBalances(participants []Participant, expenses []Expense, transfers []Transfer) ([]Balance, error) {
	l := newLedger(participants)

	for _, e := range expenses {
		if err := l.check(e.PayerID, "payer"); err != nil {
			return nil, err
		}
		for _, s := range e.Shares {
			if err := l.check(s.ParticipantID, "share"); err != nil {
				return nil, err
			}
		}

		// Payer paid the full amount
		l.post(e.PayerID, e.Currency, e.Amount)

		if len(e.Shares) > 0 {
			for _, s := range e.Shares {
				l.post(s.ParticipantID, e.Currency, s.Amount.Neg())
			}
			continue
		}

		// No shares: everyone on the roster owes an equal part. The roster
		// is never empty here because the payer passed check.
		for _, s := range l.equalSplit(e.Amount) {
			l.post(s.ParticipantID, e.Currency, s.Amount.Neg())
		}
	}

	for _, t := range transfers {
		if err := l.check(t.FromID, "sender"); err != nil {
			return nil, err
		}
		if err := l.check(t.ToID, "receiver"); err != nil {
			return nil, err
		}
		l.post(t.FromID, t.Currency, t.Amount)
		l.post(t.ToID, t.Currency, t.Amount.Neg())
	}

	return l.balances(), nil
}

// equalSplit divides amount across the roster in whole cents, in roster
// order. Any sub-cent remainder stays on the first share so the parts always
// add up to amount exactly.
func (l *ledger) equalSplit(amount decimal.Decimal) []Share {
	ids := make([]string, len(l.order))
	for i, p := range l.order {
		ids[i] = p.ID
	}
	shares := EqualShares(amount, ids)
	if len(shares) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Amount)
	}
	shares[0].Amount = shares[0].Amount.Add(amount.Sub(sum))
	return shares
}

// balances flattens the accumulator into rounded, non-zero entries.
func (l *ledger) balances() []Balance {
	currencies := make([]string, 0, len(l.currencies))
	for c := range l.currencies {
		currencies = append(currencies, c)
	}
	slices.Sort(currencies)

	var result []Balance
	for _, p := range l.order {
		for _, c := range currencies {
			amount := round2(l.totals[ledgerKey{participantID: p.ID, currency: c}])
			if isZero(amount) {
				continue
			}
			result = append(result, Balance{
				ParticipantID:   p.ID,
				ParticipantName: p.Name,
				Currency:        c,
				Amount:          amount,
			})
		}
	}
	return result
}
