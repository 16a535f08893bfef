package service

import (
	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	api "github.com/mmynk/tripsplit/pkg/api"
)

func toAPITrip(t *models.Trip) *api.Trip {
	return &api.Trip{
		Id:         t.ID,
		Name:       t.Name,
		Location:   t.Location,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		IsArchived: t.IsArchived,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		Id:     p.ID,
		TripId: p.TripID,
		Name:   p.Name,
	}
}

func toAPIParticipants(participants []*models.Participant) []*api.Participant {
	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = toAPIParticipant(p)
	}
	return out
}

func toAPIExpense(e *models.Expense) *api.Expense {
	shares := make([]*api.Share, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = &api.Share{ParticipantId: s.ParticipantID, Amount: s.Amount}
	}
	return &api.Expense{
		Id:          e.ID,
		TripId:      e.TripID,
		Description: e.Description,
		Amount:      e.Amount,
		Currency:    e.Currency,
		PayerId:     e.PayerID,
		Date:        e.Date,
		Shares:      shares,
		CreatedAt:   e.CreatedAt,
	}
}

func toAPITransfer(t *models.Transfer) *api.Transfer {
	return &api.Transfer{
		Id:          t.ID,
		TripId:      t.TripID,
		FromId:      t.FromID,
		ToId:        t.ToID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

func toAPIBalances(balances []calculator.Balance) []*api.Balance {
	out := make([]*api.Balance, len(balances))
	for i, b := range balances {
		out[i] = &api.Balance{
			ParticipantId:   b.ParticipantID,
			ParticipantName: b.ParticipantName,
			Currency:        b.Currency,
			Balance:         b.Amount,
		}
	}
	return out
}

func toAPIDebts(debts []calculator.Debt) []*api.Debt {
	out := make([]*api.Debt, len(debts))
	for i, d := range debts {
		out[i] = &api.Debt{
			From:     d.From,
			To:       d.To,
			FromName: d.FromName,
			ToName:   d.ToName,
			Amount:   d.Amount,
			Currency: d.Currency,
		}
	}
	return out
}

func toAPIParticipantTotals(totals []calculator.ParticipantTotal) []*api.ParticipantTotal {
	out := make([]*api.ParticipantTotal, len(totals))
	for i, t := range totals {
		out[i] = &api.ParticipantTotal{
			ParticipantId:   t.ParticipantID,
			ParticipantName: t.ParticipantName,
			Amount:          t.Amount,
			Percentage:      t.Percentage,
		}
	}
	return out
}

func toAPISpending(summaries []calculator.CurrencySummary) []*api.CurrencySummary {
	out := make([]*api.CurrencySummary, len(summaries))
	for i, s := range summaries {
		out[i] = &api.CurrencySummary{
			Currency: s.Currency,
			Symbol:   calculator.CurrencySymbol(s.Currency),
			Total:    s.Total,
			Paid:     toAPIParticipantTotals(s.Paid),
			Consumed: toAPIParticipantTotals(s.Consumed),
		}
	}
	return out
}

func fromAPIShares(shares []*api.Share) []calculator.Share {
	out := make([]calculator.Share, 0, len(shares))
	for _, s := range shares {
		if s == nil {
			continue
		}
		out = append(out, calculator.Share{ParticipantID: s.ParticipantId, Amount: s.Amount})
	}
	return out
}

// toCalculatorInputs converts a stored ledger snapshot into calculator inputs.
func toCalculatorInputs(l *models.Ledger) ([]calculator.Participant, []calculator.Expense, []calculator.Transfer) {
	participants := make([]calculator.Participant, len(l.Participants))
	for i, p := range l.Participants {
		participants[i] = calculator.Participant{ID: p.ID, Name: p.Name}
	}

	expenses := make([]calculator.Expense, len(l.Expenses))
	for i, e := range l.Expenses {
		shares := make([]calculator.Share, len(e.Shares))
		for j, s := range e.Shares {
			shares[j] = calculator.Share{ParticipantID: s.ParticipantID, Amount: s.Amount}
		}
		expenses[i] = calculator.Expense{
			Amount:   e.Amount,
			Currency: e.Currency,
			PayerID:  e.PayerID,
			Shares:   shares,
		}
	}

	transfers := make([]calculator.Transfer, len(l.Transfers))
	for i, t := range l.Transfers {
		transfers[i] = calculator.Transfer{
			Amount:   t.Amount,
			Currency: t.Currency,
			FromID:   t.FromID,
			ToID:     t.ToID,
		}
	}
	return participants, expenses, transfers
}
