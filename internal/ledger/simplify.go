package ledger

import "dutchpay/internal/models"

// SimplifiedDescription is stamped on every debt the simplifier emits.
const SimplifiedDescription = "Simplified debt"

// Simplify collapses a group's debts into a replacement set with identical
// net balances, using greedy first-available matching: creditors are served
// in first-appearance order, and each draws from the earliest debtor that
// still owes anything. This is a heuristic, not a minimum-transaction
// solution, and its output depends on the order debts are passed in.
//
// Participants whose balances net to zero produce no debt and disappear.
// The returned set is empty when every balance cancels.
func Simplify(debts []*models.Debt, group, date string) []*models.Debt {
	var creditors, debtors []Balance
	for _, b := range NetBalances(debts) {
		switch {
		case b.Amount > 0:
			creditors = append(creditors, b)
		case b.Amount < 0:
			debtors = append(debtors, Balance{User: b.User, Amount: -b.Amount})
		}
	}

	// Creditor claims and debtor obligations always sum to the same total,
	// so each inner loop finds a debtor and both sides drain to zero.
	var simplified []*models.Debt
	for _, c := range creditors {
		remaining := c.Amount
		for remaining > 0 {
			d := &debtors[0]
			transfer := min(remaining, d.Amount)

			simplified = append(simplified, &models.Debt{
				FromUser:    d.User,
				ToUser:      c.User,
				Amount:      transfer,
				Description: SimplifiedDescription,
				Group:       group,
				Settled:     false,
				Date:        date,
				Expense:     "",
			})

			remaining -= transfer
			d.Amount -= transfer
			if d.Amount == 0 {
				debtors = debtors[1:]
			}
		}
	}
	return simplified
}
