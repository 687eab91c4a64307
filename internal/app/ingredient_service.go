package app

import (
	"errors"
	"fmt"
	"strings"

	"pantry-on-command/internal/model"
)

type IngredientStore interface {
	Create(ingredient *model.Ingredient) error
	GetByID(id uint) (*model.Ingredient, error)
	ListByIDs(ids []uint) ([]model.Ingredient, error)
	FindPage(categoryID uint, page, size int) ([]model.Ingredient, int64, error)
	CountByCategoryID(categoryID uint) (int64, error)
	Update(ingredient *model.Ingredient) error
	Delete(id uint) error
}

type IngredientService struct {
	ingredients IngredientStore
	categories  CategoryStore
}

type IngredientInput struct {
	Name       string
	CategoryID uint
}

func NewIngredientService(ingredients IngredientStore, categories CategoryStore) *IngredientService {
	return &IngredientService{ingredients: ingredients, categories: categories}
}

func (s *IngredientService) Add(input IngredientInput) (*model.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.CategoryID == 0 {
		return nil, ErrInvalidInput
	}

	category, err := s.categories.GetByID(input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	ingredient := &model.Ingredient{Name: name, CategoryID: input.CategoryID}
	if err := s.ingredients.Create(ingredient); err != nil {
		if errors.Is(err, ErrIngredientAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return ingredient, nil
}

func (s *IngredientService) GetByID(ingredientID uint) (*model.Ingredient, error) {
	ingredient, err := s.ingredients.GetByID(ingredientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}
	return ingredient, nil
}

// List returns one page of ingredients, optionally restricted to a single
// category (categoryID 0 means all).
func (s *IngredientService) List(categoryID uint, page, size int) (Paginated[model.Ingredient], error) {
	page, size = NormalizePage(page, size)

	ingredients, total, err := s.ingredients.FindPage(categoryID, page, size)
	if err != nil {
		return Paginated[model.Ingredient]{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return NewPaginated(ingredients, page, size, total), nil
}

func (s *IngredientService) Update(ingredientID uint, input IngredientInput) (*model.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.CategoryID == 0 {
		return nil, ErrInvalidInput
	}

	ingredient, err := s.ingredients.GetByID(ingredientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}

	category, err := s.categories.GetByID(input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	ingredient.Name = name
	ingredient.CategoryID = input.CategoryID
	if err := s.ingredients.Update(ingredient); err != nil {
		if errors.Is(err, ErrIngredientAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return ingredient, nil
}

func (s *IngredientService) Delete(ingredientID uint) error {
	ingredient, err := s.ingredients.GetByID(ingredientID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if ingredient == nil {
		return ErrIngredientNotFound
	}

	if err := s.ingredients.Delete(ingredientID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return nil
}
