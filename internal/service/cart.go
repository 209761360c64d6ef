package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
	"gorm.io/gorm"
)

// CartService manages shopping-cart entries and the shopping list derived
// from them
type CartService struct {
	db      *gorm.DB
	recipes *RecipeService
}

var _ ICartService = (*CartService)(nil)

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		db:      db,
		recipes: NewRecipeService(db),
	}
}

// AddToCart puts a recipe in the user's cart. Adding it twice fails with
// gorm.ErrDuplicatedKey.
func (s *CartService) AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*models.RecipeInCart, error) {
	entry := &models.RecipeInCart{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to add recipe to cart: %w", err)
	}
	return entry, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := deleteWhere(s.db.WithContext(ctx), &models.RecipeInCart{},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove recipe from cart: %w", err)
	}
	return nil
}

func (s *CartService) IsInCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return existsWhere(s.db.WithContext(ctx), &models.RecipeInCart{},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (s *CartService) ListCart(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return s.recipes.ListRecipes(ctx, types.RecipeFilter{InCartOf: &userID})
}

// ShoppingList sums ingredient amounts over every recipe in the user's
// cart, one line per (name, unit) pair ordered by name
func (s *CartService) ShoppingList(ctx context.Context, userID uuid.UUID) ([]types.ShoppingListItem, error) {
	var items []types.ShoppingListItem
	err := s.db.WithContext(ctx).
		Table("recipe_in_carts").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_in_recipes.amount) AS amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipe_in_carts.recipe_id").
		Joins("JOIN ingredient_in_recipes ON ingredient_in_recipes.id = recipe_ingredients.ingredient_in_recipe_id").
		Joins("JOIN ingredients ON ingredients.id = ingredient_in_recipes.ingredient_id").
		Where("recipe_in_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build shopping list: %w", err)
	}
	return items, nil
}
