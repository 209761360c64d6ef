package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/testhelpers"
	"github.com/pageza/foodgram/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithSQLite(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	ctx := context.Background()
	cfg := testhelpers.TestConfig(t)

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Redis)
	require.NoError(t, a.Ping(ctx))

	user, err := a.Users.CreateUser(ctx, &types.CreateUserRequest{
		Username: "cook",
		Email:    "cook@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	tag, err := a.Tags.CreateTag(ctx, &models.Tag{Name: "Lunch", Color: "#abcdef", Slug: "lunch"})
	require.NoError(t, err)

	recipe, err := a.Recipes.CreateRecipe(ctx, user.ID, &types.RecipeInput{
		Name:        "Sandwich",
		Text:        "Stack it.",
		Image:       testhelpers.ImagePath(t, user.Username, "sandwich.jpg"),
		CookingTime: 5,
		TagIDs:      []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)

	_, err = a.Cart.AddToCart(ctx, user.ID, recipe.ID)
	require.NoError(t, err)
	cart, err := a.Cart.ListCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestNewWithRedis(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	t.Setenv("AWS_REGION", "us-east-1")
	ctx := context.Background()

	cfg := testhelpers.TestConfig(t)
	cfg.RedisURL = "redis://" + client.Options().Addr

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Redis)
	require.NoError(t, a.Ping(ctx))

	_, err = a.Tags.CreateTag(ctx, &models.Tag{Name: "Lunch", Color: "#abcdef", Slug: "lunch"})
	require.NoError(t, err)

	tags, err := a.Tags.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	n, err := a.Redis.Exists(ctx, "foodgram:tags:all").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
