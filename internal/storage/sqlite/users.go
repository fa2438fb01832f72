package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (kakao_id, nickname, profile_image, created_at) VALUES (?, ?, ?, ?)",
		user.KakaoID, user.Nickname, user.ProfileImage, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by Kakao ID.
func (s *SQLiteStore) GetUser(ctx context.Context, kakaoID string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT kakao_id, nickname, profile_image, created_at FROM users WHERE kakao_id = ?",
		kakaoID,
	).Scan(&user.KakaoID, &user.Nickname, &user.ProfileImage, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.NotFound("user", kakaoID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns every registered user.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT kakao_id, nickname, profile_image, created_at FROM users ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.KakaoID, &user.Nickname, &user.ProfileImage, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the profile fields of an existing user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET nickname = ?, profile_image = ? WHERE kakao_id = ?",
		user.Nickname, user.ProfileImage, user.KakaoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.NotFound("user", user.KakaoID)
	}
	return nil
}

// GetUsersByKakaoIDs retrieves multiple users, keyed by Kakao ID.
// Users that don't exist are omitted from the result.
func (s *SQLiteStore) GetUsersByKakaoIDs(ctx context.Context, ids []string) (map[string]*models.User, error) {
	users := make(map[string]*models.User)
	if len(ids) == 0 {
		return users, nil
	}

	query := "SELECT kakao_id, nickname, profile_image, created_at FROM users WHERE kakao_id IN (?" +
		repeatPlaceholder(len(ids)-1) + ")"

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.KakaoID, &user.Nickname, &user.ProfileImage, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.KakaoID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += ", ?"
	}
	return result
}
