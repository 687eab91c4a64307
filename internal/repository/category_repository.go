package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return app.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("create category failed: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category by id failed: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindPage(page, size int) ([]model.Category, int64, error) {
	var total int64
	if err := r.db.Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count categories failed: %w", err)
	}

	var categories []model.Category
	if err := r.db.Offset(page * size).Limit(size).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("list categories failed: %w", err)
	}
	return categories, total, nil
}

func (r *CategoryRepository) Update(category *model.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return app.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("update category failed: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Category{}, id).Error; err != nil {
		return fmt.Errorf("delete category failed: %w", err)
	}
	return nil
}
