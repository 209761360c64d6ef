package commands

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/spf13/cobra"
)

// MigrateCmd applies or rolls back the PostgreSQL schema migrations
func MigrateCmd() *cobra.Command {
	var down, status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL schema migrations",
		Long: `Applies every pending migration to the PostgreSQL database.

The connection string is taken from DATABASE_URL when set, otherwise it
is built from the loaded configuration.

Examples:
  foodgram migrate            # Apply all pending migrations
  foodgram migrate --down     # Roll back the last migration
  foodgram migrate --status   # Print the current schema version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := migrationDSN()
			if err != nil {
				return err
			}

			db, err := sql.Open("postgres", dsn)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			switch {
			case status:
			case down:
				if err := database.MigrateDown(ctx, db); err != nil {
					return err
				}
			default:
				if err := database.MigrateUp(ctx, db); err != nil {
					return err
				}
			}

			version, err := database.MigrationVersion(ctx, db)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			log.Printf("[Migrate] Schema is at version %d", version)
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the last migration")
	cmd.Flags().BoolVar(&status, "status", false, "Only print the current schema version")
	cmd.MarkFlagsMutuallyExclusive("down", "status")

	return cmd
}

func migrationDSN() (string, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	if cfg.DBDriver != config.DriverPostgres {
		return "", fmt.Errorf("migrations run against postgres, configured driver is %s", cfg.DBDriver)
	}
	return database.PostgresDSN(cfg), nil
}
