package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// CreateExpense persists a new expense with its participant shares.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, amount, description, payer, group_id, settled, date, type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Amount, expense.Description, expense.Payer, expense.Group,
		expense.Settled, expense.Date, expense.Type, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, p := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, kakao_id, amount, settled) VALUES (?, ?, ?, ?)",
			expense.ID, p.User, p.Amount, p.Settled,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including participants.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, amount, description, payer, group_id, settled, date, type, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.Amount, &expense.Description, &expense.Payer, &expense.Group,
		&expense.Settled, &expense.Date, &expense.Type, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.NotFound("expense", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	participants, err := s.expenseParticipants(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Participants = participants
	return expense, nil
}

// ListExpensesByGroup returns a group's expenses in insertion order.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount, description, payer, group_id, settled, date, type, created_at
		 FROM expenses WHERE group_id = ? ORDER BY rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.Amount, &expense.Description, &expense.Payer,
			&expense.Group, &expense.Settled, &expense.Date, &expense.Type, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		participants, err := s.expenseParticipants(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Participants = participants
	}
	return expenses, nil
}

// DeleteExpense removes an expense and its participant rows.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.NotFound("expense", expenseID)
	}
	return nil
}

func (s *SQLiteStore) expenseParticipants(ctx context.Context, expenseID string) ([]models.ExpenseParticipant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT kakao_id, amount, settled FROM expense_participants WHERE expense_id = ? ORDER BY rowid",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense participants: %w", err)
	}
	defer rows.Close()

	var participants []models.ExpenseParticipant
	for rows.Next() {
		var p models.ExpenseParticipant
		if err := rows.Scan(&p.User, &p.Amount, &p.Settled); err != nil {
			return nil, fmt.Errorf("failed to scan expense participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense participants: %w", err)
	}
	return participants, nil
}
