package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// FollowService manages subscriptions between users
type FollowService struct {
	db *gorm.DB
}

var _ IFollowService = (*FollowService)(nil)

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow subscribes followerID to authorID. Following the same author twice
// fails with gorm.ErrDuplicatedKey.
func (s *FollowService) Follow(ctx context.Context, followerID, authorID uuid.UUID) (*models.Follow, error) {
	follow := &models.Follow{FollowerID: followerID, AuthorID: authorID}
	if err := s.db.WithContext(ctx).Create(follow).Error; err != nil {
		return nil, fmt.Errorf("failed to follow user: %w", err)
	}
	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, authorID uuid.UUID) error {
	err := deleteWhere(s.db.WithContext(ctx), &models.Follow{},
		"follower_id = ? AND author_id = ?", followerID, authorID)
	if err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	return existsWhere(s.db.WithContext(ctx), &models.Follow{},
		"follower_id = ? AND author_id = ?", followerID, authorID)
}

// ListFollowing lists the authors followerID is subscribed to, by username
func (s *FollowService) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]*models.User, error) {
	var users []*models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
