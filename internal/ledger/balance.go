package ledger

import "dutchpay/internal/models"

// Balance is a signed amount attached to one user.
type Balance struct {
	User   string
	Amount int64
}

// NetBalances computes the net position of every participant across a debt
// set: each debt subtracts from the debtor and adds to the creditor, so a
// positive amount means net creditor. The result preserves first-appearance
// order of participants; the simplifier's matching depends on that order.
func NetBalances(debts []*models.Debt) []Balance {
	index := make(map[string]int)
	var balances []Balance

	add := func(user string, delta int64) {
		i, ok := index[user]
		if !ok {
			i = len(balances)
			index[user] = i
			balances = append(balances, Balance{User: user})
		}
		balances[i].Amount += delta
	}

	for _, d := range debts {
		add(d.FromUser, -d.Amount)
		add(d.ToUser, d.Amount)
	}
	return balances
}

// CounterpartyBalances computes the subject's net position against every
// counterparty with any debt history. Positive means the counterparty owes
// the subject. Debts not involving the subject are ignored. Counterparties
// appear in first-appearance order.
func CounterpartyBalances(subject string, debts []*models.Debt) []Balance {
	index := make(map[string]int)
	var balances []Balance

	for _, d := range debts {
		var other string
		var delta int64
		switch subject {
		case d.FromUser:
			other = d.ToUser
			delta = -d.Amount
		case d.ToUser:
			other = d.FromUser
			delta = d.Amount
		default:
			continue
		}

		i, ok := index[other]
		if !ok {
			i = len(balances)
			index[other] = i
			balances = append(balances, Balance{User: other})
		}
		balances[i].Amount += delta
	}
	return balances
}

// GroupNet sums the subject's signed position over a debt set, using the same
// convention as CounterpartyBalances: positive means the set nets out owing
// the subject.
func GroupNet(subject string, debts []*models.Debt) int64 {
	var total int64
	for _, d := range debts {
		switch subject {
		case d.FromUser:
			total -= d.Amount
		case d.ToUser:
			total += d.Amount
		}
	}
	return total
}
