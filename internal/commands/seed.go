package commands

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/app"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const demoPassword = "testpassword123"

var demoUsers = []types.CreateUserRequest{
	{Username: "johndoe", Email: "john.doe@example.com", FirstName: "John", LastName: "Doe"},
	{Username: "janesmith", Email: "jane.smith@example.com", FirstName: "Jane", LastName: "Smith"},
	{Username: "bobwilson", Email: "bob.wilson@example.com", FirstName: "Bob", LastName: "Wilson"},
}

var demoTags = []models.Tag{
	{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
}

// SeedCmd creates demo users and the default meal tags for development
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo users and the default tags",
		Long: `Creates a few demo users (password "` + demoPassword + `") and the
Breakfast, Lunch and Dinner tags. Records that already exist are skipped.
Refuses to run in production.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.IsProduction() {
				return errors.New("refusing to seed a production database")
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			users, tags, err := seed(cmd.Context(), a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d users and %d tags\n", users, tags)
			return nil
		},
	}
}

func seed(ctx context.Context, a *app.App) (users, tags int, err error) {
	for _, req := range demoUsers {
		req := req
		req.Password = demoPassword
		_, err := a.Users.CreateUser(ctx, &req)
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			log.Printf("[Seed] User %s already exists, skipping", req.Username)
		case err != nil:
			return users, tags, err
		default:
			users++
		}
	}

	for _, tag := range demoTags {
		tag := tag
		_, err := a.Tags.CreateTag(ctx, &tag)
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			log.Printf("[Seed] Tag %s already exists, skipping", tag.Slug)
		case err != nil:
			return users, tags, err
		default:
			tags++
		}
	}

	return users, tags, nil
}
