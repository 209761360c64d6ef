package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/testhelpers"
	"github.com/pageza/foodgram/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := testhelpers.SetupTestDB(t)
	svc := NewUserService(db)
	svc.cost = bcrypt.MinCost
	return svc, db
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &types.CreateUserRequest{
		Username:  "julia",
		Email:     "julia@example.com",
		FirstName: "Julia",
		LastName:  "Child",
		Password:  "bon-appetit",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "bon-appetit", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("bon-appetit")))

	found, err := svc.GetUserByUsername(ctx, "julia")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestCreateUserErrors(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &types.CreateUserRequest{Username: "a", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{Username: "bad name", Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, models.ErrInvalidRecord)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{Username: "a", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{Username: "a", Email: "other@example.com", Password: "pw"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{Username: "b", Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateUserChangesOnlySetFields(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db, "gordon")

	email := "chef@example.com"
	password := "new-password"
	updated, err := svc.UpdateUser(ctx, user.ID, &types.UpdateUserRequest{Email: &email, Password: &password})
	require.NoError(t, err)

	assert.Equal(t, "chef@example.com", updated.Email)
	assert.Equal(t, "Test", updated.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)))

	_, err = svc.UpdateUser(ctx, uuid.New(), &types.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db, "author")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	salt := testhelpers.CreateTestIngredient(t, db, "salt", "g")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "broth", nil, map[uuid.UUID]int{salt.ID: 5})
	require.NoError(t, db.Create(&models.FavoriteRecipe{UserID: reader.ID, RecipeID: recipe.ID}).Error)

	require.NoError(t, svc.DeleteUser(ctx, author.ID))

	var recipes, favorites, amounts int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&models.FavoriteRecipe{}).Count(&favorites).Error)
	require.NoError(t, db.Model(&models.IngredientInRecipe{}).Count(&amounts).Error)
	assert.Zero(t, recipes)
	assert.Zero(t, favorites)
	assert.Zero(t, amounts)

	assert.ErrorIs(t, svc.DeleteUser(ctx, author.ID), gorm.ErrRecordNotFound)
}
