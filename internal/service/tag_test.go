package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagUniqueness(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewTagService(db, nil)
	ctx := context.Background()

	_, err := svc.CreateTag(ctx, &models.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"})
	require.NoError(t, err)

	tests := []struct {
		name string
		tag  models.Tag
	}{
		{"same name", models.Tag{Name: "Breakfast", Color: "#000000", Slug: "morning"}},
		{"same color", models.Tag{Name: "Morning", Color: "#E26C2D", Slug: "morning"}},
		{"same slug", models.Tag{Name: "Morning", Color: "#000000", Slug: "breakfast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTag(ctx, &tt.tag)
			assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		})
	}
}

func TestCreateTagRejectsBadColor(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewTagService(db, nil)

	_, err := svc.CreateTag(context.Background(), &models.Tag{Name: "Lunch", Color: "#12345", Slug: "lunch"})
	assert.ErrorIs(t, err, models.ErrInvalidRecord)
}

func TestTagCRUD(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewTagService(db, nil)
	ctx := context.Background()

	dinner, err := svc.CreateTag(ctx, &models.Tag{Name: "Dinner", Color: "#49B64E", Slug: "dinner"})
	require.NoError(t, err)
	_, err = svc.CreateTag(ctx, &models.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"})
	require.NoError(t, err)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Breakfast", tags[0].Name)
	assert.Equal(t, "Dinner", tags[1].Name)

	updated, err := svc.UpdateTag(ctx, dinner.ID, &models.Tag{Name: "Supper", Color: "#8775D2", Slug: "supper"})
	require.NoError(t, err)
	assert.Equal(t, dinner.ID, updated.ID)

	found, err := svc.GetTagBySlug(ctx, "supper")
	require.NoError(t, err)
	assert.Equal(t, "#8775D2", found.Color)

	require.NoError(t, svc.DeleteTag(ctx, dinner.ID))
	_, err = svc.GetTag(ctx, dinner.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeleteTag(ctx, dinner.ID), gorm.ErrRecordNotFound)
}

func TestListTagsServedFromCache(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	cache := new(testhelpers.MockTagCache)
	svc := NewTagService(db, cache)

	cached := []models.Tag{{Name: "Cached", Color: "#fff", Slug: "cached"}}
	cache.On("GetTags", mock.Anything).Return(cached, true, nil).Once()

	tags, err := svc.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, tags)
	cache.AssertExpectations(t)
}

func TestListTagsPopulatesCacheOnMiss(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	testhelpers.CreateTestTag(t, db, "lunch", "#abc")

	cache := new(testhelpers.MockTagCache)
	svc := NewTagService(db, cache)

	cache.On("GetTags", mock.Anything).Return(nil, false, nil).Once()
	cache.On("Generation", mock.Anything).Return(int64(4), nil).Once()
	cache.On("SetTags", mock.Anything, mock.MatchedBy(func(tags []models.Tag) bool {
		return len(tags) == 1 && tags[0].Slug == "lunch"
	}), int64(4)).Return(nil).Once()

	tags, err := svc.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	cache.AssertExpectations(t)
}

func TestListTagsFallsBackWhenCacheFails(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	testhelpers.CreateTestTag(t, db, "lunch", "#abc")

	cache := new(testhelpers.MockTagCache)
	svc := NewTagService(db, cache)

	cache.On("GetTags", mock.Anything).Return(nil, false, errors.New("connection refused"))
	cache.On("Generation", mock.Anything).Return(int64(0), errors.New("connection refused"))

	tags, err := svc.ListTags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	cache.AssertNotCalled(t, "SetTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestTagWritesInvalidateCache(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	cache := new(testhelpers.MockTagCache)
	svc := NewTagService(db, cache)
	ctx := context.Background()

	cache.On("Invalidate", mock.Anything).Return(nil).Times(3)

	tag, err := svc.CreateTag(ctx, &models.Tag{Name: "Lunch", Color: "#abc", Slug: "lunch"})
	require.NoError(t, err)
	_, err = svc.UpdateTag(ctx, tag.ID, &models.Tag{Name: "Brunch", Color: "#abc", Slug: "brunch"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTag(ctx, tag.ID))

	cache.AssertExpectations(t)
}
