package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParticipantTotal is one participant's amount within a currency, with its
// share of the currency total in percent (one decimal place).
type ParticipantTotal struct {
	ParticipantID   string
	ParticipantName string
	Amount          decimal.Decimal
	Percentage      decimal.Decimal
}

// CurrencySummary describes how spending in one currency was distributed.
type CurrencySummary struct {
	Currency string
	Total    decimal.Decimal
	// Paid is what each participant paid out of pocket.
	Paid []ParticipantTotal
	// Consumed is what each participant's shares add up to.
	Consumed []ParticipantTotal
}

// SummarizeSpending groups expenses by currency and reports who paid and who
// consumed what. Share-less expenses are split across the roster exactly as
// ComputeBalances does. Entries are sorted by amount, largest first.
func SummarizeSpending(participants []Participant, expenses []Expense) ([]CurrencySummary, error) {
	l := newLedger(participants)
	paid := make(map[ledgerKey]decimal.Decimal)
	consumed := make(map[ledgerKey]decimal.Decimal)
	totals := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		if err := l.check(e.PayerID, "payer"); err != nil {
			return nil, err
		}
		for _, s := range e.Shares {
			if err := l.check(s.ParticipantID, "share"); err != nil {
				return nil, err
			}
		}

		totals[e.Currency] = totals[e.Currency].Add(e.Amount)
		pk := ledgerKey{participantID: e.PayerID, currency: e.Currency}
		paid[pk] = paid[pk].Add(e.Amount)

		shares := e.Shares
		if len(shares) == 0 {
			shares = l.equalSplit(e.Amount)
		}
		for _, s := range shares {
			ck := ledgerKey{participantID: s.ParticipantID, currency: e.Currency}
			consumed[ck] = consumed[ck].Add(s.Amount)
		}
	}

	currencies := make([]string, 0, len(totals))
	for c := range totals {
		currencies = append(currencies, c)
	}
	slices.Sort(currencies)

	summaries := make([]CurrencySummary, 0, len(currencies))
	for _, c := range currencies {
		total := round2(totals[c])
		summaries = append(summaries, CurrencySummary{
			Currency: c,
			Total:    total,
			Paid:     l.distribution(c, total, paid),
			Consumed: l.distribution(c, total, consumed),
		})
	}
	return summaries, nil
}

func (l *ledger) distribution(currency string, total decimal.Decimal, amounts map[ledgerKey]decimal.Decimal) []ParticipantTotal {
	var out []ParticipantTotal
	for _, p := range l.order {
		amount := round2(amounts[ledgerKey{participantID: p.ID, currency: currency}])
		if isZero(amount) {
			continue
		}
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amount.Mul(hundred).DivRound(total, 1)
		}
		out = append(out, ParticipantTotal{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			Amount:          amount,
			Percentage:      pct,
		})
	}

	slices.SortStableFunc(out, func(a, b ParticipantTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})
	return out
}
