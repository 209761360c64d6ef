package types

import (
	"github.com/google/uuid"
)

// RecipeInput is the complete set of writable recipe fields. Updates
// replace every field, including the tag and ingredient lists.
type RecipeInput struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	Image       string             `json:"image"`
	CookingTime int                `json:"cooking_time"`
	TagIDs      []uuid.UUID        `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// IngredientAmount is one line of a recipe's ingredient list
type IngredientAmount struct {
	IngredientID uuid.UUID `json:"id"`
	Amount       int       `json:"amount"`
}

// RecipeFilter narrows ListRecipes. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Limit       int
	Offset      int
}

// ShoppingListItem is the total amount of one ingredient across every
// recipe in a user's cart
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}
