package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// TagService handles tag operations. The name-ordered tag list is served
// from cache when one is configured.
type TagService struct {
	db    *gorm.DB
	cache TagCache
}

var _ ITagService = (*TagService)(nil)

// NewTagService creates a new TagService. cache may be nil.
func NewTagService(db *gorm.DB, cache TagCache) *TagService {
	return &TagService{
		db:    db,
		cache: cache,
	}
}

// CreateTag creates a new tag
func (s *TagService) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	s.invalidate(ctx)
	return tag, nil
}

// GetTag retrieves a tag by ID
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagBySlug retrieves a tag by slug
func (s *TagService) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag replaces name, color and slug of an existing tag
func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, tag *models.Tag) (*models.Tag, error) {
	existing, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = tag.Name
	existing.Color = tag.Color
	existing.Slug = tag.Slug
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	s.invalidate(ctx)
	return existing, nil
}

// DeleteTag deletes a tag and, by cascade, its recipe links
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := deleteWhere(s.db.WithContext(ctx), &models.Tag{}, "id = ?", id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// ListTags lists all tags ordered by name
func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	var (
		gen      int64
		canStore bool
	)
	if s.cache != nil {
		tags, ok, err := s.cache.GetTags(ctx)
		if err != nil {
			log.Printf("[TagService] Cache read failed, falling back to database: %v", err)
		} else if ok {
			return tags, nil
		}

		// Taken before the query so a concurrent write makes the result stale
		if gen, err = s.cache.Generation(ctx); err != nil {
			log.Printf("[TagService] Failed to read cache generation: %v", err)
		} else {
			canStore = true
		}
	}

	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}

	if canStore {
		if err := s.cache.SetTags(ctx, tags, gen); err != nil {
			log.Printf("[TagService] Failed to populate cache: %v", err)
		}
	}
	return tags, nil
}

func (s *TagService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[TagService] Failed to invalidate cache: %v", err)
	}
}
