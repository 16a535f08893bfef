package calculator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debtStrings(debts []Debt) []string {
	out := make([]string, len(debts))
	for i, debt := range debts {
		out[i] = debt.From + "->" + debt.To + " " + debt.Amount.StringFixed(2) + " " + debt.Currency
	}
	return out
}

func TestComputeDebts_EqualSplitScenario(t *testing.T) {
	balances, err := ComputeBalances(
		[]Participant{alice, bob, charlie},
		[]Expense{{Amount: d("300"), Currency: "EUR", PayerID: "a"}},
		nil,
	)
	require.NoError(t, err)

	debts := ComputeDebts(balances)
	assert.Equal(t, []string{
		"b->a 100.00 EUR",
		"c->a 100.00 EUR",
	}, debtStrings(debts))
	assert.Equal(t, "Bob", debts[0].FromName)
	assert.Equal(t, "Alice", debts[0].ToName)
}

func TestComputeDebts_GreedyMatching(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "a", Currency: "USD", Amount: d("70")},
		{ParticipantID: "b", Currency: "USD", Amount: d("30")},
		{ParticipantID: "c", Currency: "USD", Amount: d("-50")},
		{ParticipantID: "d", Currency: "USD", Amount: d("-50")},
	}

	// Largest creditor a meets first debtor c (tie with d broken by id).
	assert.Equal(t, []string{
		"c->a 50.00 USD",
		"d->a 20.00 USD",
		"d->b 30.00 USD",
	}, debtStrings(ComputeDebts(balances)))
}

func TestComputeDebts_TieBreakIsDeterministic(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "z", Currency: "EUR", Amount: d("-10")},
		{ParticipantID: "y", Currency: "EUR", Amount: d("10")},
		{ParticipantID: "m", Currency: "EUR", Amount: d("-10")},
		{ParticipantID: "b", Currency: "EUR", Amount: d("10")},
	}
	want := []string{"m->b 10.00 EUR", "z->y 10.00 EUR"}
	assert.Equal(t, want, debtStrings(ComputeDebts(balances)))

	// Input order does not matter.
	reversed := []Balance{balances[3], balances[2], balances[1], balances[0]}
	assert.Equal(t, want, debtStrings(ComputeDebts(reversed)))
}

func TestComputeDebts_CurrenciesAreIndependent(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "a", Currency: "USD", Amount: d("-25")},
		{ParticipantID: "b", Currency: "USD", Amount: d("25")},
		{ParticipantID: "a", Currency: "EUR", Amount: d("50")},
		{ParticipantID: "b", Currency: "EUR", Amount: d("-50")},
	}

	assert.Equal(t, []string{
		"b->a 50.00 EUR",
		"a->b 25.00 USD",
	}, debtStrings(ComputeDebts(balances)))
}

func TestComputeDebts_IgnoresNoise(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "a", Currency: "EUR", Amount: d("0.01")},
		{ParticipantID: "b", Currency: "EUR", Amount: d("-0.01")},
	}
	assert.Empty(t, ComputeDebts(balances))
	assert.Empty(t, ComputeDebts(nil))
}

func TestComputeDebts_DoesNotMutateInput(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "a", Currency: "EUR", Amount: d("40")},
		{ParticipantID: "b", Currency: "EUR", Amount: d("-40")},
	}
	ComputeDebts(balances)
	assert.True(t, balances[0].Amount.Equal(d("40")))
	assert.True(t, balances[1].Amount.Equal(d("-40")))
}

func TestComputeDebts_SettlementProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 11))

	for i := range 300 {
		roster, expenses, transfers := randomTrip(r)

		balances, err := ComputeBalances(roster, expenses, transfers)
		require.NoError(t, err)
		debts := ComputeDebts(balances)

		// Edge bound per currency
		nonZero := make(map[string]int)
		for _, b := range balances {
			nonZero[b.Currency]++
		}
		edges := make(map[string]int)
		for _, debt := range debts {
			edges[debt.Currency]++
			assert.NotEqual(t, debt.From, debt.To)
			assert.True(t, debt.Amount.GreaterThan(Epsilon))
		}
		for currency, n := range edges {
			assert.LessOrEqual(t, n, max(0, nonZero[currency]-1), "trip %d %s", i, currency)
		}

		// Paying every debt settles the trip.
		settled := append([]Transfer(nil), transfers...)
		for _, debt := range debts {
			settled = append(settled, Transfer{
				Amount:   debt.Amount,
				Currency: debt.Currency,
				FromID:   debt.From,
				ToID:     debt.To,
			})
		}
		after, err := ComputeBalances(roster, expenses, settled)
		require.NoError(t, err)
		assert.Empty(t, after, "trip %d left balances %v", i, balanceMap(after))
	}
}
