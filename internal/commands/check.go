package commands

import (
	"fmt"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/app"
	"github.com/spf13/cobra"
)

// CheckCmd connects to every configured backing store and reports whether
// it is reachable
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the configuration and backing stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Ping(cmd.Context()); err != nil {
				return err
			}

			cache := "disabled"
			if a.Redis != nil {
				cache = "redis"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: driver=%s environment=%s tag_cache=%s\n",
				cfg.DBDriver, config.GetEnvironment(), cache)
			return nil
		},
	}
}
