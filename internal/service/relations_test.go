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
	"gorm.io/gorm"
)

func TestFollow(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFollowService(db)
	ctx := context.Background()

	reader := testhelpers.CreateTestUser(t, db, "reader")
	zoe := testhelpers.CreateTestUser(t, db, "zoe")
	adam := testhelpers.CreateTestUser(t, db, "adam")

	_, err := svc.Follow(ctx, reader.ID, zoe.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, reader.ID, adam.ID)
	require.NoError(t, err)

	_, err = svc.Follow(ctx, reader.ID, zoe.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The reverse edge is a different subscription
	_, err = svc.Follow(ctx, zoe.ID, reader.ID)
	assert.NoError(t, err)

	following, err := svc.ListFollowing(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "adam", following[0].Username)
	assert.Equal(t, "zoe", following[1].Username)

	ok, err := svc.IsFollowing(ctx, reader.ID, zoe.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Unfollow(ctx, reader.ID, zoe.ID))
	ok, err = svc.IsFollowing(ctx, reader.ID, zoe.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Unfollow(ctx, reader.ID, zoe.ID), gorm.ErrRecordNotFound)
}

func TestFollowRequiresExistingUsers(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFollowService(db)
	reader := testhelpers.CreateTestUser(t, db, "reader")

	_, err := svc.Follow(context.Background(), reader.ID, uuid.New())
	assert.Error(t, err)
}

func TestFavorites(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFavoriteService(db)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db, "author")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "pie", nil, nil)

	_, err := svc.AddFavorite(ctx, reader.ID, recipe.ID)
	require.NoError(t, err)
	_, err = svc.AddFavorite(ctx, reader.ID, recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	ok, err := svc.IsFavorite(ctx, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	favorites, err := svc.ListFavorites(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, recipe.ID, favorites[0].ID)

	require.NoError(t, svc.RemoveFavorite(ctx, reader.ID, recipe.ID))
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, reader.ID, recipe.ID), gorm.ErrRecordNotFound)
}

func TestCartAndShoppingList(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewCartService(db)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db, "author")
	shopper := testhelpers.CreateTestUser(t, db, "shopper")
	flour := testhelpers.CreateTestIngredient(t, db, "flour", "g")
	eggs := testhelpers.CreateTestIngredient(t, db, "eggs", "pcs")
	milk := testhelpers.CreateTestIngredient(t, db, "milk", "ml")

	pancakes := testhelpers.CreateTestRecipe(t, db, author, "pancakes", nil,
		map[uuid.UUID]int{flour.ID: 200, eggs.ID: 2, milk.ID: 300})
	bread := testhelpers.CreateTestRecipe(t, db, author, "bread", nil,
		map[uuid.UUID]int{flour.ID: 500})
	testhelpers.CreateTestRecipe(t, db, author, "omelette", nil,
		map[uuid.UUID]int{eggs.ID: 3})

	_, err := svc.AddToCart(ctx, shopper.ID, pancakes.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, shopper.ID, bread.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, shopper.ID, bread.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	list, err := svc.ShoppingList(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Equal(t, []types.ShoppingListItem{
		{Name: "eggs", MeasurementUnit: "pcs", Amount: 2},
		{Name: "flour", MeasurementUnit: "g", Amount: 700},
		{Name: "milk", MeasurementUnit: "ml", Amount: 300},
	}, list)

	cart, err := svc.ListCart(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Len(t, cart, 2)

	require.NoError(t, svc.RemoveFromCart(ctx, shopper.ID, bread.ID))
	ok, err := svc.IsInCart(ctx, shopper.ID, bread.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	empty, err := svc.ShoppingList(ctx, author.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Deleting a recipe drops it from every cart
	require.NoError(t, db.Delete(&models.Recipe{}, "id = ?", pancakes.ID).Error)
	cart, err = svc.ListCart(ctx, shopper.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}
