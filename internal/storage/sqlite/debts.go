package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dutchpay/internal/models"
)

const debtColumns = "id, from_user, to_user, amount, description, group_id, settled, date, expense_id, created_at"

// CreateDebt persists a new debt record.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt) error {
	fillDebtDefaults(debt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (`+debtColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.FromUser, debt.ToUser, debt.Amount, debt.Description,
		debt.Group, debt.Settled, debt.Date, debt.Expense, debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// ListDebtsForUser returns every debt involving the Kakao ID, either side.
func (s *SQLiteStore) ListDebtsForUser(ctx context.Context, kakaoID string) ([]*models.Debt, error) {
	return s.queryDebts(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE from_user = ? OR to_user = ? ORDER BY rowid",
		kakaoID, kakaoID,
	)
}

// ListDebtsByGroup returns a group's debts in insertion order (rowid). The
// simplifier's tie-breaking is defined by this order.
func (s *SQLiteStore) ListDebtsByGroup(ctx context.Context, groupID string) ([]*models.Debt, error) {
	return s.queryDebts(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE group_id = ? ORDER BY rowid",
		groupID,
	)
}

// ListDebtsBetween returns the debts in both directions between two users.
func (s *SQLiteStore) ListDebtsBetween(ctx context.Context, kakaoID, otherKakaoID string) ([]*models.Debt, error) {
	return s.queryDebts(ctx,
		`SELECT `+debtColumns+` FROM debts
		 WHERE (from_user = ? AND to_user = ?) OR (from_user = ? AND to_user = ?)
		 ORDER BY rowid`,
		kakaoID, otherKakaoID, otherKakaoID, kakaoID,
	)
}

// DeleteDebtsByExpense removes every debt derived from the expense.
func (s *SQLiteStore) DeleteDebtsByExpense(ctx context.Context, expenseID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM debts WHERE expense_id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete debts for expense: %w", err)
	}
	return nil
}

// DeleteDebtsBetween removes every debt in either direction between two users
// and returns the number deleted.
func (s *SQLiteStore) DeleteDebtsBetween(ctx context.Context, kakaoID, otherKakaoID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM debts WHERE (from_user = ? AND to_user = ?) OR (from_user = ? AND to_user = ?)",
		kakaoID, otherKakaoID, otherKakaoID, kakaoID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete debts between users: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted debts: %w", err)
	}
	return deleted, nil
}

// ReplaceGroupDebts deletes the group's debts and inserts the replacement set
// inside one transaction, so no reader ever observes the half-replaced state.
func (s *SQLiteStore) ReplaceGroupDebts(ctx context.Context, groupID string, debts []*models.Debt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM debts WHERE group_id = ?", groupID); err != nil {
		return fmt.Errorf("failed to delete group debts: %w", err)
	}

	for _, debt := range debts {
		fillDebtDefaults(debt)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO debts (`+debtColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			debt.ID, debt.FromUser, debt.ToUser, debt.Amount, debt.Description,
			debt.Group, debt.Settled, debt.Date, debt.Expense, debt.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert replacement debt: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func fillDebtDefaults(debt *models.Debt) {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}
}

func (s *SQLiteStore) queryDebts(ctx context.Context, query string, args ...interface{}) ([]*models.Debt, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}

func scanDebt(rows *sql.Rows) (*models.Debt, error) {
	debt := &models.Debt{}
	if err := rows.Scan(&debt.ID, &debt.FromUser, &debt.ToUser, &debt.Amount, &debt.Description,
		&debt.Group, &debt.Settled, &debt.Date, &debt.Expense, &debt.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan debt: %w", err)
	}
	return debt, nil
}
