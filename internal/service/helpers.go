package service

import (
	"strings"

	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// deleteWhere deletes the rows of model matching query and reports
// gorm.ErrRecordNotFound when nothing matched.
func deleteWhere(tx *gorm.DB, model interface{}, query string, args ...interface{}) error {
	res := tx.Where(query, args...).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func existsWhere(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// pruneOrphanAmounts removes ingredient amounts no recipe links to any more.
// Recipe deletes only cascade to the join rows.
func pruneOrphanAmounts(tx *gorm.DB) error {
	linked := tx.Session(&gorm.Session{NewDB: true}).
		Table(models.RecipeIngredientsTable).
		Select("ingredient_in_recipe_id")
	return tx.Where("id NOT IN (?)", linked).Delete(&models.IngredientInRecipe{}).Error
}

// withRecipeAssociations preloads everything a recipe is displayed with
func withRecipeAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name")
		}).
		Preload("Ingredients.Ingredient")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// prefixPattern builds a LIKE pattern matching values starting with s
func prefixPattern(s string) string {
	return likeEscaper.Replace(strings.ToLower(s)) + "%"
}
