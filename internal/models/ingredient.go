package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a named foodstuff measured in a single unit. The
// (name, measurement_unit) pair is unique.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"size:50;not null;index:ingredients_idx;uniqueIndex:unique_ingredients_unit,priority:1" json:"name" validate:"required,max=50"`
	MeasurementUnit string    `gorm:"size:10;not null;uniqueIndex:unique_ingredients_unit,priority:2" json:"measurement_unit" validate:"required,max=10"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

func (i Ingredient) String() string {
	return i.Name
}

// IngredientInRecipe is a quantified use of an ingredient. Recipes link to
// it through the recipe_ingredients join table.
type IngredientInRecipe struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primaryKey" json:"id"`
	IngredientID uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"ingredient_id" validate:"required"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredient,omitempty" validate:"-"`
	Amount       int         `gorm:"type:smallint;not null;check:amount >= 1" json:"amount" validate:"min_amount,lte=32767"`
}

func (IngredientInRecipe) TableName() string {
	return "ingredient_in_recipes"
}

func (i *IngredientInRecipe) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
