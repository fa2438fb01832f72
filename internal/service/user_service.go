// Package service implements the application operations on top of the
// storage layer and the ledger core.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// UserService handles Kakao login upserts and user profile operations.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// KakaoLogin upserts a user by Kakao ID: unknown IDs are registered with the
// supplied profile, known IDs are returned as stored. The second return value
// reports whether a new account was created.
func (s *UserService) KakaoLogin(ctx context.Context, kakaoID, nickname, profileImage string) (*models.User, bool, error) {
	user, err := s.store.GetUser(ctx, kakaoID)
	if err == nil {
		slog.Info("Existing user logged in", "kakao_id", kakaoID)
		return user, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		KakaoID:      kakaoID,
		Nickname:     nickname,
		ProfileImage: profileImage,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}
	slog.Info("New user registered", "kakao_id", kakaoID)
	return user, true, nil
}

// Get returns the user for the Kakao ID.
func (s *UserService) Get(ctx context.Context, kakaoID string) (*models.User, error) {
	return s.store.GetUser(ctx, kakaoID)
}

// List returns every registered user.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// Update overwrites the user's mutable profile fields and returns the stored
// result.
func (s *UserService) Update(ctx context.Context, kakaoID, nickname, profileImage string) (*models.User, error) {
	user := &models.User{KakaoID: kakaoID, Nickname: nickname, ProfileImage: profileImage}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, kakaoID)
}
