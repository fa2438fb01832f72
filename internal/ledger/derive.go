// Package ledger implements the debt arithmetic: deriving debts from
// expenses, aggregating net balances, and the greedy debt simplifier.
// Everything here is pure; persistence lives in the service layer.
package ledger

import "dutchpay/internal/models"

// DeriveDebts expands an expense into one debt per non-payer participant,
// each owed to the payer. The payer never generates a self-debt.
func DeriveDebts(expense *models.Expense) []*models.Debt {
	var debts []*models.Debt
	for _, p := range expense.Participants {
		if p.User == expense.Payer {
			continue
		}
		debts = append(debts, &models.Debt{
			FromUser:    p.User,
			ToUser:      expense.Payer,
			Amount:      p.Amount,
			Description: expense.Description,
			Group:       expense.Group,
			Settled:     p.Settled,
			Date:        expense.Date,
			Expense:     expense.ID,
		})
	}
	return debts
}
