package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user named username
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hashed_password",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTag inserts a tag whose slug is derived from name
func CreateTestTag(t *testing.T, db *gorm.DB, name, color string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Color: color, Slug: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}
	return tag
}

// CreateTestIngredient inserts an ingredient
func CreateTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create test ingredient: %v", err)
	}
	return ingredient
}

// CreateTestRecipe inserts a recipe by author using amounts of the given
// ingredients, keyed by ingredient ID
func CreateTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, tags []models.Tag, amounts map[uuid.UUID]int) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "Mix everything and serve.",
		Image:       ImagePath(t, author.Username, name+".png"),
		CookingTime: 10,
		Tags:        tags,
	}
	for id, amount := range amounts {
		recipe.Ingredients = append(recipe.Ingredients, models.IngredientInRecipe{
			IngredientID: id,
			Amount:       amount,
		})
	}
	if err := db.Omit("Tags.*").Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}

// ImagePath returns the upload path for a test image
func ImagePath(t *testing.T, username, filename string) string {
	t.Helper()
	key, err := models.ImageUploadPath(username, filename)
	if err != nil {
		t.Fatalf("failed to build image path: %v", err)
	}
	return key
}
