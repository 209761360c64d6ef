package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/service"
	"github.com/spf13/cobra"
)

// ingredientRecord is one entry of an ingredients fixture file
type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// LoadIngredientsCmd bulk-loads ingredients from a JSON file
func LoadIngredientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-ingredients <file.json>",
		Short: "Load ingredients from a JSON file",
		Long: `Loads a JSON array of {"name": ..., "measurement_unit": ...}
objects into the ingredients table. Pairs that already exist are skipped,
so the command can be re-run safely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open ingredients file: %w", err)
			}
			defer f.Close()

			ingredients, err := readIngredients(f)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			db, err := database.New(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := database.RunMigrations(cmd.Context(), db); err != nil {
				return err
			}

			inserted, err := service.NewIngredientService(db).LoadIngredients(cmd.Context(), ingredients)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d new ingredients (%d in file)\n", inserted, len(ingredients))
			return nil
		},
	}
}

func readIngredients(r io.Reader) ([]models.Ingredient, error) {
	var records []ingredientRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}

	ingredients := make([]models.Ingredient, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" || rec.MeasurementUnit == "" {
			return nil, fmt.Errorf("ingredient %d: name and measurement_unit are required", i)
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:            rec.Name,
			MeasurementUnit: rec.MeasurementUnit,
		})
	}
	return ingredients, nil
}
