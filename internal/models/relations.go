package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow is a subscription of Follower to the recipes of Author
type Follow struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FollowerID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:unique_users,priority:1" json:"follower_id" validate:"required"`
	Follower   *User     `gorm:"constraint:OnDelete:CASCADE" json:"follower,omitempty" validate:"-"`
	AuthorID   uuid.UUID `gorm:"type:varchar(36);not null;index;uniqueIndex:unique_users,priority:2" json:"author_id" validate:"required"`
	Author     *User     `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty" validate:"-"`
}

func (Follow) TableName() string {
	return "follows"
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}

// FavoriteRecipe is a user's bookmark of a recipe
type FavoriteRecipe struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:unique_fav_recipes,priority:1" json:"user_id" validate:"required"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty" validate:"-"`
	RecipeID  uuid.UUID `gorm:"type:varchar(36);not null;index;uniqueIndex:unique_fav_recipes,priority:2" json:"recipe_id" validate:"required"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

func (f *FavoriteRecipe) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}

// RecipeInCart is a shopping-cart entry
type RecipeInCart struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:unique_recipe_in_cart,priority:1" json:"user_id" validate:"required"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty" validate:"-"`
	RecipeID  uuid.UUID `gorm:"type:varchar(36);not null;index;uniqueIndex:unique_recipe_in_cart,priority:2" json:"recipe_id" validate:"required"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
}

func (RecipeInCart) TableName() string {
	return "recipe_in_carts"
}

func (c *RecipeInCart) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// All returns every model in dependency order, for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Tag{},
		&Ingredient{},
		&IngredientInRecipe{},
		&Recipe{},
		&Follow{},
		&FavoriteRecipe{},
		&RecipeInCart{},
	}
}
