package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSpending(t *testing.T) {
	roster := []Participant{alice, bob, charlie}
	expenses := []Expense{
		{Amount: d("60"), Currency: "EUR", PayerID: "a", Shares: EqualShares(d("60"), []string{"a", "b"})},
		{Amount: d("30"), Currency: "EUR", PayerID: "c"},
		{Amount: d("10"), Currency: "USD", PayerID: "b", Shares: []Share{{ParticipantID: "c", Amount: d("10")}}},
	}

	summaries, err := SummarizeSpending(roster, expenses)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	eur := summaries[0]
	assert.Equal(t, "EUR", eur.Currency)
	assert.Equal(t, "90.00", eur.Total.StringFixed(2))

	require.Len(t, eur.Paid, 2)
	assert.Equal(t, "a", eur.Paid[0].ParticipantID)
	assert.Equal(t, "60.00", eur.Paid[0].Amount.StringFixed(2))
	assert.Equal(t, "66.7", eur.Paid[0].Percentage.StringFixed(1))
	assert.Equal(t, "c", eur.Paid[1].ParticipantID)
	assert.Equal(t, "33.3", eur.Paid[1].Percentage.StringFixed(1))

	// a and b consume 30+10 each, c consumes 10 from the share-less expense.
	require.Len(t, eur.Consumed, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{
		eur.Consumed[0].ParticipantID, eur.Consumed[1].ParticipantID, eur.Consumed[2].ParticipantID,
	})
	assert.Equal(t, "40.00", eur.Consumed[0].Amount.StringFixed(2))
	assert.Equal(t, "10.00", eur.Consumed[2].Amount.StringFixed(2))

	usd := summaries[1]
	assert.Equal(t, "USD", usd.Currency)
	require.Len(t, usd.Paid, 1)
	assert.Equal(t, "Bob", usd.Paid[0].ParticipantName)
	assert.Equal(t, "100.0", usd.Paid[0].Percentage.StringFixed(1))
	require.Len(t, usd.Consumed, 1)
	assert.Equal(t, "c", usd.Consumed[0].ParticipantID)
}

func TestSummarizeSpending_UnevenEqualSplitMatchesBalances(t *testing.T) {
	roster := []Participant{alice, bob, charlie}
	expenses := []Expense{{Amount: d("100"), Currency: "EUR", PayerID: "a"}}

	summaries, err := SummarizeSpending(roster, expenses)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	consumed := make(map[string]string)
	sum := decimal.Zero
	for _, c := range summaries[0].Consumed {
		consumed[c.ParticipantID] = c.Amount.StringFixed(2)
		sum = sum.Add(c.Amount)
	}
	assert.Equal(t, map[string]string{"a": "33.34", "b": "33.33", "c": "33.33"}, consumed)
	assert.True(t, sum.Equal(d("100")), "consumed sums to %s", sum)

	balances, err := ComputeBalances(roster, expenses, nil)
	require.NoError(t, err)
	assert.Equal(t, "-33.33", balanceMap(balances)["b/EUR"])
}

func TestSummarizeSpending_UnknownPayer(t *testing.T) {
	_, err := SummarizeSpending([]Participant{alice}, []Expense{{Amount: d("5"), Currency: "EUR", PayerID: "nobody"}})
	assert.ErrorIs(t, err, ErrUnknownParticipant)
}

func TestSummarizeSpending_Empty(t *testing.T) {
	summaries, err := SummarizeSpending([]Participant{alice}, nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
