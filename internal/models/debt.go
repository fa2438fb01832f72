package models

// Debt is a directed obligation: FromUser owes ToUser Amount.
//
// Debts are created three ways: derived from an expense (Expense holds the
// originating expense ID), posted directly, or emitted by the simplifier as
// replacements for a group's prior debts. FromUser and ToUser are Kakao IDs;
// matching is always by stable identity, never by nickname.
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string `json:"id"`

	// FromUser is the Kakao ID of the debtor.
	FromUser string `json:"from_user"`

	// ToUser is the Kakao ID of the creditor.
	ToUser string `json:"to_user"`

	// Amount is the amount owed in minor currency units. A meaningful debt
	// has Amount > 0.
	Amount int64 `json:"amount"`

	// Description is a free-form label ("Simplified debt" for emitted debts).
	Description string `json:"description"`

	// Group is the ID of the group the debt is tagged to, or empty.
	Group string `json:"group,omitempty"`

	// Settled marks the debt as paid back.
	Settled bool `json:"settled"`

	// Date is the debt date as YYYY-MM-DD.
	Date string `json:"date"`

	// Expense is the originating expense ID, or empty for simplified and
	// manually posted debts.
	Expense string `json:"expense"`

	// CreatedAt is the Unix timestamp when the debt was recorded.
	CreatedAt int64 `json:"-"`
}

// DebtBalance is a derived net position against one counterparty. It is never
// stored; it is recomputed from the current debt records on every read.
type DebtBalance struct {
	// KakaoID is the counterparty's Kakao ID.
	KakaoID string `json:"kakao_id"`

	// Nickname is the counterparty's profile nickname, or "Unknown" when no
	// user record resolves.
	Nickname string `json:"profile_nickname"`

	// Balance is positive when the counterparty owes the subject.
	Balance int64 `json:"balance"`
}

// GroupDebtSummary is a derived per-group net position for one user.
type GroupDebtSummary struct {
	GroupID      string `json:"groupId"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`

	// TotalDebt is positive when the group nets out owing the subject.
	TotalDebt int64 `json:"totalDebt"`

	MembersID       []string `json:"members_id"`
	MembersNickname []string `json:"members_nickname"`
}
