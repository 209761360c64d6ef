package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the foodgram CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foodgram",
		Short: "Operator tasks for the foodgram recipe database",
		Long: `foodgram manages the recipe database: schema migrations and
bulk loading of reference data.

Configuration is read from Docker secrets or the environment, see
config.LoadConfig. Set CI=true to read the environment only.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(MigrateCmd())
	cmd.AddCommand(LoadIngredientsCmd())
	cmd.AddCommand(CheckCmd())
	cmd.AddCommand(SeedCmd())

	return cmd
}
