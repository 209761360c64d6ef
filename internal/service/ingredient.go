package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ingredientBatchSize = 500

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

var _ IIngredientService = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// CreateIngredient creates a new ingredient
func (s *IngredientService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ingredient, nil
}

// GetIngredient retrieves an ingredient by ID
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient replaces the name and unit of an existing ingredient
func (s *IngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error) {
	existing, err := s.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = ingredient.Name
	existing.MeasurementUnit = ingredient.MeasurementUnit
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}
	return existing, nil
}

// DeleteIngredient deletes an ingredient. Amounts that use it are removed
// by cascade.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	if err := deleteWhere(s.db.WithContext(ctx), &models.Ingredient{}, "id = ?", id); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

// SearchIngredients lists ingredients whose name starts with prefix,
// ignoring case, ordered by name. An empty prefix lists everything.
func (s *IngredientService) SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx)
	if prefix != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, prefixPattern(prefix))
	}

	var ingredients []models.Ingredient
	if err := query.Order("name").Order("measurement_unit").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// LoadIngredients bulk-inserts ingredients, skipping (name, unit) pairs
// that already exist. It returns the number of rows inserted.
func (s *IngredientService) LoadIngredients(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
			DoNothing: true,
		}).
		CreateInBatches(&ingredients, ingredientBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to load ingredients: %w", res.Error)
	}

	log.Printf("[IngredientService] Loaded %d of %d ingredients", res.RowsAffected, len(ingredients))
	return res.RowsAffected, nil
}
