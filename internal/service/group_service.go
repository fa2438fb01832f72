package service

import (
	"context"
	"log/slog"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

// GroupService handles group creation and lookup.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Create persists a new group. The store generates the ID.
func (s *GroupService) Create(ctx context.Context, group *models.Group) error {
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "name", group.Name, "error", err)
		return err
	}
	slog.Info("Group created", "group_id", group.ID, "members_count", len(group.Members))
	return nil
}

// Get returns the group for the ID.
func (s *GroupService) Get(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}
