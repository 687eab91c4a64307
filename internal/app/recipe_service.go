package app

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"pantry-on-command/internal/model"
)

type RecipeStore interface {
	Create(recipe *model.Recipe, ingredientIDs []uint) error
	GetByID(id uint) (*model.Recipe, error)
	FindPage(ingredientIDs []uint, page, size int) ([]model.Recipe, int64, error)
	IngredientIDs(recipeID uint) ([]uint, error)
	Update(recipe *model.Recipe, ingredientIDs []uint) error
	UpdatePhoto(id uint, path string) error
	Delete(id uint) error
}

// FileStore persists image blobs by generated path.
type FileStore interface {
	Save(name string, content []byte) (string, error)
	Read(path string) ([]byte, error)
	Delete(path string) error
}

type RecipeService struct {
	recipes     RecipeStore
	ingredients IngredientStore
	users       UserStore
	files       FileStore
}

type CreateRecipeInput struct {
	UserID        uint
	Name          string
	Steps         string
	PrepTime      string
	IngredientIDs []uint
}

type UpdateRecipeInput struct {
	Name          string
	Steps         string
	PrepTime      string
	IngredientIDs []uint
}

// RecipeDetails is a recipe together with its resolved ingredients.
type RecipeDetails struct {
	model.Recipe
	Ingredients []model.Ingredient `json:"ingredients"`
}

func NewRecipeService(recipes RecipeStore, ingredients IngredientStore, users UserStore, files FileStore) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		ingredients: ingredients,
		users:       users,
		files:       files,
	}
}

func (s *RecipeService) Add(input CreateRecipeInput) (*RecipeDetails, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Steps) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ingredientIDs := dedupe(input.IngredientIDs)
	ingredients, err := s.resolveIngredients(ingredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		UserID:   input.UserID,
		Name:     name,
		Steps:    input.Steps,
		PrepTime: input.PrepTime,
	}
	if err := s.recipes.Create(recipe, ingredientIDs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return &RecipeDetails{Recipe: *recipe, Ingredients: ingredients}, nil
}

func (s *RecipeService) GetByID(recipeID uint) (*RecipeDetails, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	return s.withIngredients(recipe)
}

// List returns one page of recipes. When ingredientIDs is non-empty, only
// recipes containing at least one of the given ingredients are returned.
func (s *RecipeService) List(ingredientIDs []uint, page, size int) (Paginated[RecipeDetails], error) {
	page, size = NormalizePage(page, size)

	recipes, total, err := s.recipes.FindPage(ingredientIDs, page, size)
	if err != nil {
		return Paginated[RecipeDetails]{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	details := make([]RecipeDetails, 0, len(recipes))
	for i := range recipes {
		d, err := s.withIngredients(&recipes[i])
		if err != nil {
			return Paginated[RecipeDetails]{}, err
		}
		details = append(details, *d)
	}
	return NewPaginated(details, page, size, total), nil
}

func (s *RecipeService) Update(recipeID, userID uint, input UpdateRecipeInput) (*RecipeDetails, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Steps) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	ingredientIDs := dedupe(input.IngredientIDs)
	ingredients, err := s.resolveIngredients(ingredientIDs)
	if err != nil {
		return nil, err
	}

	recipe.Name = name
	recipe.Steps = input.Steps
	recipe.PrepTime = input.PrepTime
	if err := s.recipes.Update(recipe, ingredientIDs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return &RecipeDetails{Recipe: *recipe, Ingredients: ingredients}, nil
}

// Delete removes the recipe's photo from disk first, then the row. A row
// failure after the file is gone is reported as ErrDatabase; that
// inconsistency is not recoverable here.
func (s *RecipeService) Delete(recipeID uint) error {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return err
	}

	if recipe.Photo != "" {
		if err := s.files.Delete(recipe.Photo); err != nil {
			return ErrFileNotFound
		}
	}

	if err := s.recipes.Delete(recipeID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return nil
}

// UploadImage stores a new photo for the recipe. The file is written before
// the row is updated, so a failed row update can orphan a file on disk but
// the recipe's visible photo reference never points at a missing file.
func (s *RecipeService) UploadImage(recipeID uint, content []byte, filename string) (*RecipeDetails, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	if err := requireImage(content); err != nil {
		return nil, err
	}

	path, err := s.files.Save(filename, content)
	if err != nil {
		return nil, ErrFileNotSaved
	}
	if err := s.recipes.UpdatePhoto(recipeID, path); err != nil {
		return nil, ErrFileNotSaved
	}

	recipe.Photo = path
	return s.withIngredients(recipe)
}

// ReplaceImage swaps the recipe's photo. The old file is deleted before the
// new one is written; if that deletion fails the operation aborts and the
// old photo reference stays valid.
func (s *RecipeService) ReplaceImage(recipeID, userID uint, content []byte, filename string) (*RecipeDetails, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	if err := requireImage(content); err != nil {
		return nil, err
	}

	if recipe.Photo != "" {
		if err := s.files.Delete(recipe.Photo); err != nil {
			return nil, ErrFileNotFound
		}
	}

	path, err := s.files.Save(filename, content)
	if err != nil {
		return nil, ErrFileNotSaved
	}
	if err := s.recipes.UpdatePhoto(recipeID, path); err != nil {
		return nil, ErrFileNotSaved
	}

	recipe.Photo = path
	return s.withIngredients(recipe)
}

// FetchImage reads the recipe's photo and returns the bytes together with
// the content type sniffed from them.
func (s *RecipeService) FetchImage(recipeID uint) ([]byte, string, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, "", err
	}
	if recipe.Photo == "" {
		return nil, "", ErrFileNotFound
	}

	content, err := s.files.Read(recipe.Photo)
	if err != nil {
		return nil, "", ErrFileNotFound
	}
	return content, mimetype.Detect(content).String(), nil
}

func (s *RecipeService) getRecipe(recipeID uint) (*model.Recipe, error) {
	recipe, err := s.recipes.GetByID(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

// resolveIngredients loads the ingredients for a set of unique ids and
// fails when any of them does not exist.
func (s *RecipeService) resolveIngredients(ids []uint) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}
	ingredients, err := s.ingredients.ListByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if len(ingredients) != len(ids) {
		return nil, ErrIngredientNotFound
	}
	return ingredients, nil
}

func (s *RecipeService) withIngredients(recipe *model.Recipe) (*RecipeDetails, error) {
	ids, err := s.recipes.IngredientIDs(recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	ingredients, err := s.resolveIngredients(ids)
	if err != nil {
		return nil, err
	}
	return &RecipeDetails{Recipe: *recipe, Ingredients: ingredients}, nil
}

// requireImage sniffs the content itself; the filename and any
// client-declared type are ignored.
func requireImage(content []byte) error {
	if len(content) == 0 {
		return ErrNotAnImage
	}
	if !strings.HasPrefix(mimetype.Detect(content).String(), "image/") {
		return ErrNotAnImage
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
