package service

import (
	"context"
	"fmt"
	"log/slog"

	"dutchpay/internal/ledger"
	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// ExpenseService records expenses and maintains the debts derived from them.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create persists the expense and one derived debt per non-payer participant.
// Debts are written individually after the expense; a failure partway leaves
// the earlier debts in place and is reported to the caller as-is.
func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return err
	}

	debts := ledger.DeriveDebts(expense)
	for _, debt := range debts {
		if err := s.store.CreateDebt(ctx, debt); err != nil {
			slog.Error("Failed to persist derived debt",
				"expense_id", expense.ID,
				"from_user", debt.FromUser,
				"error", err,
			)
			return fmt.Errorf("failed to persist derived debt: %w", err)
		}
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"payer", expense.Payer,
		"derived_debts", len(debts),
	)
	return nil
}

// Get returns the expense for the ID.
func (s *ExpenseService) Get(ctx context.Context, expenseID string) (*models.Expense, error) {
	return s.store.GetExpense(ctx, expenseID)
}

// ListByGroup returns the expenses of a group. The group must exist.
func (s *ExpenseService) ListByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// Delete removes the expense and cascades to every debt it derived.
func (s *ExpenseService) Delete(ctx context.Context, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	if err := s.store.DeleteDebtsByExpense(ctx, expenseID); err != nil {
		slog.Error("Expense deleted but debt cascade failed", "expense_id", expenseID, "error", err)
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}
