package models

// ExpenseParticipant is one person's share of an expense.
type ExpenseParticipant struct {
	// User is the participant's Kakao ID.
	User string `json:"user"`

	// Amount is this person's share in minor currency units.
	Amount int64 `json:"amount"`

	// Settled marks the share as already paid back.
	Settled bool `json:"settled"`
}

// Expense is a payment made by one user on behalf of several participants.
// Creating an expense derives one debt per non-payer participant; the
// participant shares are not required to sum to Amount.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Amount is the total paid, in minor currency units.
	Amount int64 `json:"amount"`

	// Description is a free-form label, copied onto derived debts.
	Description string `json:"description"`

	// Payer is the Kakao ID of the user who paid.
	Payer string `json:"payer"`

	// Group is the ID of the group the expense belongs to, or empty.
	Group string `json:"group,omitempty"`

	// Participants are the per-person shares.
	Participants []ExpenseParticipant `json:"participants"`

	// Settled marks the whole expense as settled.
	Settled bool `json:"settled"`

	// Date is the expense date as YYYY-MM-DD.
	Date string `json:"date"`

	// Type is a client-defined category string.
	Type string `json:"type"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"-"`
}
