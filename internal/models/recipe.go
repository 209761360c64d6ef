package models

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Join tables backing the recipe many-to-many relations
const (
	RecipeTagsTable        = "recipe_tags"
	RecipeIngredientsTable = "recipe_ingredients"
)

type Recipe struct {
	ID          uuid.UUID            `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt   time.Time            `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	AuthorID    uuid.UUID            `gorm:"type:varchar(36);not null;index" json:"author_id" validate:"required"`
	Author      *User                `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty" validate:"-"`
	Name        string               `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Text        string               `gorm:"type:text;not null" json:"text" validate:"required"`
	Image       string               `gorm:"size:255;not null" json:"image" validate:"required,max=255"`
	CookingTime int                  `gorm:"type:smallint;not null;check:cooking_time >= 1" json:"cooking_time" validate:"min_cooking_time,lte=32767"`
	Tags        []Tag                `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags" validate:"-"`
	Ingredients []IngredientInRecipe `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"ingredients" validate:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

func (r Recipe) String() string {
	return r.Name
}

// ErrInvalidImageName is returned for an upload path that would not name a
// file under the user's image directory
var ErrInvalidImageName = errors.New("invalid image name")

// ImageUploadPath is where a recipe image uploaded by username is stored.
// Only the base name of filename is kept.
func ImageUploadPath(username, filename string) (string, error) {
	if !IsUsername(username) {
		return "", fmt.Errorf("%w: username %q", ErrInvalidImageName, username)
	}
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	switch base {
	case ".", "..", "/":
		return "", fmt.Errorf("%w: file name %q", ErrInvalidImageName, filename)
	}
	return fmt.Sprintf("recipes/images/%s/%s", username, base), nil
}
