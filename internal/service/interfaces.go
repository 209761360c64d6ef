package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
)

// IUserService defines the interface for user record operations
type IUserService interface {
	CreateUser(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *types.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ITagService defines the interface for tag operations
type ITagService interface {
	CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, tag *models.Tag) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
	SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error)
	LoadIngredients(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, in *types.RecipeInput) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, in *types.RecipeInput) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error)
}

// IFollowService defines the interface for follow edges between users
type IFollowService interface {
	Follow(ctx context.Context, followerID, authorID uuid.UUID) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, authorID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, followerID uuid.UUID) ([]*models.User, error)
}

// IFavoriteService defines the interface for recipe bookmarks
type IFavoriteService interface {
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.FavoriteRecipe, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
}

// ICartService defines the interface for shopping-cart entries
type ICartService interface {
	AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*models.RecipeInCart, error)
	RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error
	IsInCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ListCart(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	ShoppingList(ctx context.Context, userID uuid.UUID) ([]types.ShoppingListItem, error)
}

// IImageService defines the interface for recipe image storage
type IImageService interface {
	StoreRecipeImage(ctx context.Context, username, filename string, body io.Reader) (string, error)
	ImageURL(ctx context.Context, path string) (string, error)
}

// TagCache is the read-through cache used by TagService
type TagCache interface {
	GetTags(ctx context.Context) ([]models.Tag, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetTags(ctx context.Context, tags []models.Tag, generation int64) error
	Invalidate(ctx context.Context) error
}
