package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pantry-on-command/internal/model"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts the recipe together with its join rows in one transaction.
func (r *RecipeRepository) Create(recipe *model.Recipe, ingredientIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return replaceJoinRows(tx, recipe.ID, ingredientIDs)
	})
	if err != nil {
		return fmt.Errorf("create recipe failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) GetByID(id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query recipe by id failed: %w", err)
	}
	return &recipe, nil
}

// FindPage lists recipes, optionally restricted to recipes containing any
// of the given ingredient ids via the explicit join table.
func (r *RecipeRepository) FindPage(ingredientIDs []uint, page, size int) ([]model.Recipe, int64, error) {
	// The count dedupes on recipes.id; COUNT(DISTINCT recipes.*) is not
	// a valid MySQL aggregate.
	var total int64
	if err := r.filtered(ingredientIDs).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes failed: %w", err)
	}

	query := r.filtered(ingredientIDs)
	if len(ingredientIDs) > 0 {
		query = query.Distinct("recipes.*")
	}

	var recipes []model.Recipe
	if err := query.Offset(page * size).Limit(size).Find(&recipes).Error; err != nil {
		return nil, 0, fmt.Errorf("list recipes failed: %w", err)
	}
	return recipes, total, nil
}

func (r *RecipeRepository) filtered(ingredientIDs []uint) *gorm.DB {
	query := r.db.Model(&model.Recipe{})
	if len(ingredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ri ON ri.recipe_id = recipes.id").
			Where("ri.ingredient_id IN ?", ingredientIDs)
	}
	return query
}

func (r *RecipeRepository) IngredientIDs(recipeID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.RecipeIngredient{}).
		Where("recipe_id = ?", recipeID).
		Pluck("ingredient_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list recipe ingredient ids failed: %w", err)
	}
	return ids, nil
}

func (r *RecipeRepository) Update(recipe *model.Recipe, ingredientIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		return replaceJoinRows(tx, recipe.ID, ingredientIDs)
	})
	if err != nil {
		return fmt.Errorf("update recipe failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) UpdatePhoto(id uint, path string) error {
	if err := r.db.Model(&model.Recipe{}).Where("id = ?", id).Update("photo", path).Error; err != nil {
		return fmt.Errorf("update recipe photo failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete recipe failed: %w", err)
	}
	return nil
}

func replaceJoinRows(tx *gorm.DB, recipeID uint, ingredientIDs []uint) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	rows := make([]model.RecipeIngredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		rows = append(rows, model.RecipeIngredient{RecipeID: recipeID, IngredientID: id})
	}
	return tx.Create(&rows).Error
}
