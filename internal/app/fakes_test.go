package app

import (
	"errors"
	"fmt"
	"sort"

	"pantry-on-command/internal/model"
)

// In-memory store fakes used across the service tests.

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*model.User{}, nextID: 1}
}

func (s *fakeUserStore) add(user model.User) *model.User {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = &user
	return &user
}

func (s *fakeUserStore) Create(user *model.User) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return ErrUserAlreadyExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindPageByRole(role string, page, size int) ([]model.User, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var matched []model.User
	for _, user := range s.users {
		if user.Role == role {
			matched = append(matched, *user)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Username < matched[j].Username })

	total := int64(len(matched))
	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeUserStore) Update(user *model.User) error {
	if s.err != nil {
		return s.err
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) Delete(id uint) error {
	if s.err != nil {
		return s.err
	}
	delete(s.users, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[uint]*model.Category{}, nextID: 1}
}

func (s *fakeCategoryStore) add(name string) *model.Category {
	category := &model.Category{ID: s.nextID, Name: name}
	s.nextID++
	s.categories[category.ID] = category
	return category
}

func (s *fakeCategoryStore) Create(category *model.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return ErrCategoryAlreadyExists
		}
	}
	category.ID = s.nextID
	s.nextID++
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) GetByID(id uint) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (s *fakeCategoryStore) FindPage(page, size int) ([]model.Category, int64, error) {
	var all []model.Category
	for _, category := range s.categories {
		all = append(all, *category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *fakeCategoryStore) Update(category *model.Category) error {
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) Delete(id uint) error {
	delete(s.categories, id)
	return nil
}

type fakeIngredientStore struct {
	ingredients map[uint]*model.Ingredient
	nextID      uint
}

func newFakeIngredientStore() *fakeIngredientStore {
	return &fakeIngredientStore{ingredients: map[uint]*model.Ingredient{}, nextID: 1}
}

func (s *fakeIngredientStore) add(name string, categoryID uint) *model.Ingredient {
	ingredient := &model.Ingredient{ID: s.nextID, Name: name, CategoryID: categoryID}
	s.nextID++
	s.ingredients[ingredient.ID] = ingredient
	return ingredient
}

func (s *fakeIngredientStore) Create(ingredient *model.Ingredient) error {
	ingredient.ID = s.nextID
	s.nextID++
	copied := *ingredient
	s.ingredients[ingredient.ID] = &copied
	return nil
}

func (s *fakeIngredientStore) GetByID(id uint) (*model.Ingredient, error) {
	ingredient, ok := s.ingredients[id]
	if !ok {
		return nil, nil
	}
	copied := *ingredient
	return &copied, nil
}

func (s *fakeIngredientStore) ListByIDs(ids []uint) ([]model.Ingredient, error) {
	seen := map[uint]struct{}{}
	var out []model.Ingredient
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if ingredient, ok := s.ingredients[id]; ok {
			out = append(out, *ingredient)
		}
	}
	return out, nil
}

func (s *fakeIngredientStore) FindPage(categoryID uint, page, size int) ([]model.Ingredient, int64, error) {
	var matched []model.Ingredient
	for _, ingredient := range s.ingredients {
		if categoryID == 0 || ingredient.CategoryID == categoryID {
			matched = append(matched, *ingredient)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeIngredientStore) CountByCategoryID(categoryID uint) (int64, error) {
	var count int64
	for _, ingredient := range s.ingredients {
		if ingredient.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (s *fakeIngredientStore) Update(ingredient *model.Ingredient) error {
	copied := *ingredient
	s.ingredients[ingredient.ID] = &copied
	return nil
}

func (s *fakeIngredientStore) Delete(id uint) error {
	delete(s.ingredients, id)
	return nil
}

type fakeRecipeStore struct {
	recipes     map[uint]*model.Recipe
	joins       map[uint][]uint
	nextID      uint
	photoErr    error
	photoCalled bool
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: map[uint]*model.Recipe{}, joins: map[uint][]uint{}, nextID: 1}
}

func (s *fakeRecipeStore) add(recipe model.Recipe, ingredientIDs []uint) *model.Recipe {
	recipe.ID = s.nextID
	s.nextID++
	s.recipes[recipe.ID] = &recipe
	s.joins[recipe.ID] = ingredientIDs
	return &recipe
}

func (s *fakeRecipeStore) Create(recipe *model.Recipe, ingredientIDs []uint) error {
	recipe.ID = s.nextID
	s.nextID++
	copied := *recipe
	s.recipes[recipe.ID] = &copied
	s.joins[recipe.ID] = append([]uint(nil), ingredientIDs...)
	return nil
}

func (s *fakeRecipeStore) GetByID(id uint) (*model.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	copied := *recipe
	return &copied, nil
}

func (s *fakeRecipeStore) FindPage(ingredientIDs []uint, page, size int) ([]model.Recipe, int64, error) {
	var matched []model.Recipe
	for id, recipe := range s.recipes {
		if len(ingredientIDs) == 0 {
			matched = append(matched, *recipe)
			continue
		}
		for _, want := range ingredientIDs {
			if containsID(s.joins[id], want) {
				matched = append(matched, *recipe)
				break
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeRecipeStore) IngredientIDs(recipeID uint) ([]uint, error) {
	return append([]uint(nil), s.joins[recipeID]...), nil
}

func (s *fakeRecipeStore) Update(recipe *model.Recipe, ingredientIDs []uint) error {
	copied := *recipe
	s.recipes[recipe.ID] = &copied
	s.joins[recipe.ID] = append([]uint(nil), ingredientIDs...)
	return nil
}

func (s *fakeRecipeStore) UpdatePhoto(id uint, path string) error {
	s.photoCalled = true
	if s.photoErr != nil {
		return s.photoErr
	}
	recipe, ok := s.recipes[id]
	if !ok {
		return errors.New("no such recipe")
	}
	recipe.Photo = path
	return nil
}

func (s *fakeRecipeStore) Delete(id uint) error {
	delete(s.recipes, id)
	delete(s.joins, id)
	return nil
}

type fakeFileStore struct {
	files      map[string][]byte
	nextID     int
	saveErr    error
	deleteErr  error
	saveCalled bool
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (s *fakeFileStore) Save(name string, content []byte) (string, error) {
	s.saveCalled = true
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.nextID++
	path := fmt.Sprintf("/images/%d-%s", s.nextID, name)
	s.files[path] = append([]byte(nil), content...)
	return path, nil
}

func (s *fakeFileStore) Read(path string) ([]byte, error) {
	content, ok := s.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return content, nil
}

func (s *fakeFileStore) Delete(path string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.files[path]; !ok {
		return errors.New("no such file")
	}
	delete(s.files, path)
	return nil
}

func containsID(ids []uint, want uint) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
