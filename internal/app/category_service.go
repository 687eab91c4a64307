package app

import (
	"errors"
	"fmt"
	"strings"

	"pantry-on-command/internal/model"
)

type CategoryStore interface {
	Create(category *model.Category) error
	GetByID(id uint) (*model.Category, error)
	FindPage(page, size int) ([]model.Category, int64, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type CategoryService struct {
	categories  CategoryStore
	ingredients IngredientStore
}

func NewCategoryService(categories CategoryStore, ingredients IngredientStore) *CategoryService {
	return &CategoryService{categories: categories, ingredients: ingredients}
}

func (s *CategoryService) Add(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	category := &model.Category{Name: name}
	if err := s.categories.Create(category); err != nil {
		if errors.Is(err, ErrCategoryAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return category, nil
}

func (s *CategoryService) GetByID(categoryID uint) (*model.Category, error) {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) List(page, size int) (Paginated[model.Category], error) {
	page, size = NormalizePage(page, size)

	categories, total, err := s.categories.FindPage(page, size)
	if err != nil {
		return Paginated[model.Category]{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return NewPaginated(categories, page, size, total), nil
}

func (s *CategoryService) Update(categoryID uint, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = name
	if err := s.categories.Update(category); err != nil {
		if errors.Is(err, ErrCategoryAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return category, nil
}

// Delete removes an empty category. A category that still has ingredients
// is rejected with ErrCategoryInUse; nothing cascades.
func (s *CategoryService) Delete(categoryID uint) error {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.ingredients.CountByCategoryID(categoryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.categories.Delete(categoryID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return nil
}
