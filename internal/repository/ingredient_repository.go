package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/model"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) Create(ingredient *model.Ingredient) error {
	if err := r.db.Create(ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return app.ErrIngredientAlreadyExists
		}
		return fmt.Errorf("create ingredient failed: %w", err)
	}
	return nil
}

func (r *IngredientRepository) GetByID(id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query ingredient by id failed: %w", err)
	}
	return &ingredient, nil
}

func (r *IngredientRepository) ListByIDs(ids []uint) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}
	var ingredients []model.Ingredient
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("list ingredients by ids failed: %w", err)
	}
	return ingredients, nil
}

func (r *IngredientRepository) FindPage(categoryID uint, page, size int) ([]model.Ingredient, int64, error) {
	query := r.db.Model(&model.Ingredient{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count ingredients failed: %w", err)
	}

	var ingredients []model.Ingredient
	if err := query.Offset(page * size).Limit(size).Find(&ingredients).Error; err != nil {
		return nil, 0, fmt.Errorf("list ingredients failed: %w", err)
	}
	return ingredients, total, nil
}

func (r *IngredientRepository) CountByCategoryID(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Ingredient{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count ingredients by category failed: %w", err)
	}
	return count, nil
}

func (r *IngredientRepository) Update(ingredient *model.Ingredient) error {
	if err := r.db.Save(ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return app.ErrIngredientAlreadyExists
		}
		return fmt.Errorf("update ingredient failed: %w", err)
	}
	return nil
}

func (r *IngredientRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Ingredient{}, id).Error; err != nil {
		return fmt.Errorf("delete ingredient failed: %w", err)
	}
	return nil
}
