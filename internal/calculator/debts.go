package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// position is a participant's remaining balance while debts are matched.
type position struct {
	id        string
	name      string
	remaining decimal.Decimal // always kept positive
}

// ComputeDebts turns balances into a list of suggested payments, one
// currency at a time, in currency code order.
//
// Greedy matching: creditors sorted by largest credit, debtors by largest
// debt, ties broken by participant id. Each step settles the smaller of the
// two current positions and moves on from whichever side reached zero.
// For each currency at most (participants with a balance - 1) debts are
// produced, and paying all of them brings every balance to zero.
func ComputeDebts(balances []Balance) []Debt {
	byCurrency := make(map[string][]Balance)
	for _, b := range balances {
		byCurrency[b.Currency] = append(byCurrency[b.Currency], b)
	}

	currencies := make([]string, 0, len(byCurrency))
	for c := range byCurrency {
		currencies = append(currencies, c)
	}
	slices.Sort(currencies)

	var debts []Debt
	for _, currency := range currencies {
		debts = append(debts, settleCurrency(currency, byCurrency[currency])...)
	}
	return debts
}

func settleCurrency(currency string, balances []Balance) []Debt {
	// Create lists of creditors (owed money) and debtors (owe money)
	var creditors, debtors []position
	for _, b := range balances {
		switch {
		case b.Amount.GreaterThan(Epsilon):
			creditors = append(creditors, position{id: b.ParticipantID, name: b.ParticipantName, remaining: b.Amount})
		case b.Amount.LessThan(Epsilon.Neg()):
			debtors = append(debtors, position{id: b.ParticipantID, name: b.ParticipantName, remaining: b.Amount.Neg()})
		}
	}

	// Largest positions first on both sides, so the big debts are cleared in
	// a single payment wherever possible.
	slices.SortFunc(creditors, byRemainingDesc)
	slices.SortFunc(debtors, byRemainingDesc)

	var debts []Debt
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := round2(decimal.Min(creditor.remaining, debtor.remaining))
		if amount.GreaterThan(Epsilon) {
			debts = append(debts, Debt{
				From:     debtor.id,
				To:       creditor.id,
				FromName: debtor.name,
				ToName:   creditor.name,
				Amount:   amount,
				Currency: currency,
			})
		}

		creditor.remaining = creditor.remaining.Sub(amount)
		debtor.remaining = debtor.remaining.Sub(amount)

		// Move to next debtor/creditor if fully settled. The smaller side is
		// always within half a cent of zero here, so the loop advances.
		if isZero(creditor.remaining) {
			i++
		}
		if isZero(debtor.remaining) {
			j++
		}
	}

	return debts
}

func byRemainingDesc(a, b position) int {
	if c := b.remaining.Cmp(a.remaining); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}
