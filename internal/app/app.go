package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/cache"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App bundles the connections and services built from one configuration
type App struct {
	DB    *gorm.DB
	Redis *redis.Client

	Users       *service.UserService
	Tags        *service.TagService
	Ingredients *service.IngredientService
	Recipes     *service.RecipeService
	Follows     *service.FollowService
	Favorites   *service.FavoriteService
	Cart        *service.CartService
	Images      *service.ImageService
}

// New connects to the database, Redis when configured and S3, then migrates
// the schema and builds every service
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{DB: db}

	if err := database.RunMigrations(ctx, db); err != nil {
		a.Close()
		return nil, err
	}

	var tagCache service.TagCache
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(ctx, cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = client
		tagCache = cache.NewTagCache(client, cfg.TagCacheTTL)
	} else {
		log.Printf("[App] Redis not configured, tag cache disabled")
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	a.Users = service.NewUserService(db)
	a.Tags = service.NewTagService(db, tagCache)
	a.Ingredients = service.NewIngredientService(db)
	a.Recipes = service.NewRecipeService(db)
	a.Follows = service.NewFollowService(db)
	a.Favorites = service.NewFavoriteService(db)
	a.Cart = service.NewCartService(db)
	a.Images = service.NewImageService(s3Config)

	return a, nil
}

// Ping checks every backing store the app is connected to
func (a *App) Ping(ctx context.Context) error {
	var errs []error
	if err := database.HealthCheck(ctx, a.DB); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if a.Redis != nil {
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close releases the database and Redis connections
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Printf("[App] Failed to close Redis: %v", err)
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("[App] Failed to close database: %v", err)
		}
	}
}
