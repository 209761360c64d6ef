package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHexCode(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#fff", true},
		{"#FFF", true},
		{"#49B64E", true},
		{"#a1b2c3", true},
		{"fff", false},
		{"#ffff", false},
		{"#12345g", false},
		{"#1234567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexCode(tt.color))
		})
	}
}

func TestTagValidation(t *testing.T) {
	v := NewValidator(DefaultLimits)

	valid := Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name  string
		tag   Tag
		field string
	}{
		{"bad color", Tag{Name: "Lunch", Color: "orange", Slug: "lunch"}, "color"},
		{"bad slug", Tag{Name: "Lunch", Color: "#fff", Slug: "lunch time"}, "slug"},
		{"missing name", Tag{Color: "#fff", Slug: "lunch"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.tag)
			require.Error(t, err)

			verr := &ValidationError{Table: "tags", Err: err}
			assert.Equal(t, []string{tt.field}, verr.Fields())
		})
	}
}

func TestUserValidation(t *testing.T) {
	v := NewValidator(DefaultLimits)

	assert.NoError(t, v.Struct(User{Username: "chef.bob+1@home", Email: "bob@example.com"}))
	assert.Error(t, v.Struct(User{Username: "chef bob", Email: "bob@example.com"}))
	assert.Error(t, v.Struct(User{Username: "bob", Email: "not-an-email"}))
}

func TestLimitsAreConfigurable(t *testing.T) {
	recipe := Recipe{
		AuthorID:    uuid.New(),
		Name:        "Porridge",
		Text:        "Boil oats.",
		Image:       "recipes/images/bob/porridge.png",
		CookingTime: 3,
	}
	amount := IngredientInRecipe{IngredientID: uuid.New(), Amount: 3}

	assert.NoError(t, NewValidator(DefaultLimits).Struct(recipe))
	assert.NoError(t, NewValidator(DefaultLimits).Struct(amount))

	strict := NewValidator(Limits{MinCookingTime: 5, MinIngredientAmount: 5})
	assert.Error(t, strict.Struct(recipe))
	assert.Error(t, strict.Struct(amount))

	recipe.CookingTime = 0
	assert.Error(t, NewValidator(DefaultLimits).Struct(recipe))

	recipe.CookingTime = 40000
	assert.Error(t, NewValidator(DefaultLimits).Struct(recipe))
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("failed to create tag: %w", &ValidationError{Table: "tags", Err: errors.New("boom")})

	assert.ErrorIs(t, err, ErrInvalidRecord)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tags", verr.Table)
	assert.Nil(t, verr.Fields())
	assert.Contains(t, err.Error(), "invalid tags: boom")
}

func TestImageUploadPath(t *testing.T) {
	tests := []struct {
		name     string
		username string
		filename string
		want     string
	}{
		{"plain", "bob", "pie.jpg", "recipes/images/bob/pie.jpg"},
		{"directories stripped", "bob", "../../etc/pie.jpg", "recipes/images/bob/pie.jpg"},
		{"windows path", "alice", `C:\photos\soup.png`, "recipes/images/alice/soup.png"},
		{"trailing slash", "bob", "pie.jpg/", "recipes/images/bob/pie.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImageUploadPath(tt.username, tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageUploadPathRejectsDegenerateNames(t *testing.T) {
	tests := []struct {
		name     string
		username string
		filename string
	}{
		{"empty file name", "bob", ""},
		{"root", "bob", "/"},
		{"dot", "bob", "."},
		{"parent", "bob", ".."},
		{"parent with backslash", "bob", `..\`},
		{"parent username", "..", "x.png"},
		{"dot username", ".", "x.png"},
		{"empty username", "", "x.png"},
		{"username with slash", "a/b", "x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImageUploadPath(tt.username, tt.filename)
			assert.ErrorIs(t, err, ErrInvalidImageName)
		})
	}
}

func TestDotUsernamesAreRejected(t *testing.T) {
	v := NewValidator(DefaultLimits)
	for _, name := range []string{".", ".."} {
		err := v.Struct(User{Username: name, Email: "dots@example.com"})
		assert.Error(t, err, "username %q", name)
	}
	assert.NoError(t, v.Struct(User{Username: "a.b", Email: "dots@example.com"}))
}
