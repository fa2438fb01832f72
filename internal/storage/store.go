// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"dutchpay/internal/models"
)

// ErrNotFound is returned when a record does not exist. Callers should test
// with errors.Is; the wrapped message names the missing resource.
var ErrNotFound = errors.New("not found")

// NotFound wraps ErrNotFound with the resource kind and identifier.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %q: %w", resource, id, ErrNotFound)
}

// Store defines the persistence operations the services need. The interface
// allows swapping storage backends without changing the service layer, and
// keeps every lookup keyed by stable identifiers (Kakao IDs, group IDs),
// never by display nicknames.
type Store interface {
	// CreateUser inserts a new user keyed by Kakao ID.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by Kakao ID. Returns ErrNotFound if absent.
	GetUser(ctx context.Context, kakaoID string) (*models.User, error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUser overwrites the mutable profile fields of an existing user.
	// Returns ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, user *models.User) error

	// GetUsersByKakaoIDs returns the users that exist among ids, keyed by
	// Kakao ID. Missing users are omitted, not an error.
	GetUsersByKakaoIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// CreateGroup persists a new group. The group ID is generated if empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members. Returns ErrNotFound if absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForMember returns every group the Kakao ID belongs to.
	ListGroupsForMember(ctx context.Context, kakaoID string) ([]*models.Group, error)

	// CreateExpense persists a new expense with its participants.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID. Returns ErrNotFound if absent.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup returns a group's expenses in insertion order.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense. Returns ErrNotFound if absent.
	// Debts derived from the expense are removed separately.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateDebt persists a new debt. The debt ID is generated if empty.
	CreateDebt(ctx context.Context, debt *models.Debt) error

	// ListDebtsForUser returns every debt where the Kakao ID is debtor or
	// creditor, in insertion order.
	ListDebtsForUser(ctx context.Context, kakaoID string) ([]*models.Debt, error)

	// ListDebtsByGroup returns a group's debts in insertion order. The
	// simplifier's tie-breaking depends on that order.
	ListDebtsByGroup(ctx context.Context, groupID string) ([]*models.Debt, error)

	// ListDebtsBetween returns the debts in both directions between two users.
	ListDebtsBetween(ctx context.Context, kakaoID, otherKakaoID string) ([]*models.Debt, error)

	// DeleteDebtsByExpense removes every debt derived from the expense.
	DeleteDebtsByExpense(ctx context.Context, expenseID string) error

	// DeleteDebtsBetween removes every debt in either direction between two
	// users, across all groups, and returns the number deleted.
	DeleteDebtsBetween(ctx context.Context, kakaoID, otherKakaoID string) (int64, error)

	// ReplaceGroupDebts atomically deletes the group's debts and inserts the
	// replacement set in a single transaction.
	ReplaceGroupDebts(ctx context.Context, groupID string, debts []*models.Debt) error

	// Close releases any resources held by the store.
	Close() error
}
