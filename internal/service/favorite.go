package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
	"gorm.io/gorm"
)

// FavoriteService manages recipe bookmarks
type FavoriteService struct {
	db      *gorm.DB
	recipes *RecipeService
}

var _ IFavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		db:      db,
		recipes: NewRecipeService(db),
	}
}

// AddFavorite bookmarks a recipe. A repeated bookmark fails with
// gorm.ErrDuplicatedKey.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.FavoriteRecipe, error) {
	favorite := &models.FavoriteRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := deleteWhere(s.db.WithContext(ctx), &models.FavoriteRecipe{},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return existsWhere(s.db.WithContext(ctx), &models.FavoriteRecipe{},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return s.recipes.ListRecipes(ctx, types.RecipeFilter{FavoritedBy: &userID})
}
