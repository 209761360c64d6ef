package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
	"gorm.io/gorm"
)

var (
	ErrUnknownTag        = errors.New("unknown tag")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a recipe by authorID together with its tag links and
// ingredient amounts
func (s *RecipeService) CreateRecipe(ctx context.Context, authorID uuid.UUID, in *types.RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{AuthorID: authorID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.assign(tx, &recipe, in); err != nil {
			return err
		}
		// Tags already exist; only the join rows are written
		if err := tx.Omit("Tags.*").Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a recipe by ID with author, tags and ingredients
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := withRecipeAssociations(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe replaces every writable field of a recipe. The previous tag
// links and ingredient amounts are dropped.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, in *types.RecipeInput) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("failed to clear recipe tags: %w", err)
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}

		if err := s.assign(tx, &recipe, in); err != nil {
			return err
		}
		if err := tx.Omit("Tags.*").Save(&recipe).Error; err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		return pruneOrphanAmounts(tx)
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe along with its links, favorites, cart
// entries and ingredient amounts
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteWhere(tx, &models.Recipe{}, "id = ?", id); err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		return pruneOrphanAmounts(tx)
	})
}

// ListRecipes lists recipes newest first
func (s *RecipeService) ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error) {
	db := s.db.WithContext(ctx)
	query := withRecipeAssociations(db)

	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := db.Session(&gorm.Session{NewDB: true}).
			Table(models.RecipeTagsTable).
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != nil {
		favorites := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.FavoriteRecipe{}).
			Select("recipe_id").
			Where("user_id = ?", *filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorites)
	}
	if filter.InCartOf != nil {
		cart := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.RecipeInCart{}).
			Select("recipe_id").
			Where("user_id = ?", *filter.InCartOf)
		query = query.Where("recipes.id IN (?)", cart)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var recipes []*models.Recipe
	if err := query.Order("recipes.created_at DESC").Order("recipes.id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// assign copies in onto recipe, resolving tags and building fresh
// ingredient amounts
func (s *RecipeService) assign(tx *gorm.DB, recipe *models.Recipe, in *types.RecipeInput) error {
	tags, err := findTags(tx, in.TagIDs)
	if err != nil {
		return err
	}
	amounts, err := buildAmounts(tx, in.Ingredients)
	if err != nil {
		return err
	}

	recipe.Name = in.Name
	recipe.Text = in.Text
	recipe.Image = in.Image
	recipe.CookingTime = in.CookingTime
	recipe.Tags = tags
	recipe.Ingredients = amounts
	return nil
}

func findTags(tx *gorm.DB, ids []uuid.UUID) ([]models.Tag, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	var tags []models.Tag
	if err := tx.Where("id IN ?", unique).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	if len(tags) != len(unique) {
		return nil, ErrUnknownTag
	}
	return tags, nil
}

func buildAmounts(tx *gorm.DB, lines []types.IngredientAmount) ([]models.IngredientInRecipe, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.IngredientID)
	}
	unique := uniqueIDs(ids)

	var count int64
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check ingredients: %w", err)
	}
	if count != int64(len(unique)) {
		return nil, ErrUnknownIngredient
	}

	amounts := make([]models.IngredientInRecipe, 0, len(lines))
	for _, line := range lines {
		amounts = append(amounts, models.IngredientInRecipe{
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		})
	}
	return amounts, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
