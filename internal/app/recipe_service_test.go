package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-on-command/internal/model"
)

// pngBytes is a minimal PNG signature; content sniffing keys off the magic.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

type recipeFixture struct {
	svc         *RecipeService
	recipes     *fakeRecipeStore
	ingredients *fakeIngredientStore
	users       *fakeUserStore
	files       *fakeFileStore
}

func newRecipeFixture() *recipeFixture {
	recipes := newFakeRecipeStore()
	ingredients := newFakeIngredientStore()
	users := newFakeUserStore()
	files := newFakeFileStore()
	return &recipeFixture{
		svc:         NewRecipeService(recipes, ingredients, users, files),
		recipes:     recipes,
		ingredients: ingredients,
		users:       users,
		files:       files,
	}
}

func (f *recipeFixture) addUser() *model.User {
	return f.users.add(model.User{Username: "ana", Email: "ana@x.com", Role: model.RoleUser})
}

func TestRecipeAdd(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	paprika := f.ingredients.add("Paprika", 1)
	cumin := f.ingredients.add("Cumin", 1)

	details, err := f.svc.Add(CreateRecipeInput{
		UserID:        user.ID,
		Name:          "Goulash",
		Steps:         "Brown the beef, add everything, simmer.",
		PrepTime:      "90m",
		IngredientIDs: []uint{paprika.ID, cumin.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, details.ID)
	assert.Len(t, details.Ingredients, 2)
	assert.Empty(t, details.Photo)
}

func TestRecipeAdd_DeduplicatesIngredientIDs(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	paprika := f.ingredients.add("Paprika", 1)

	details, err := f.svc.Add(CreateRecipeInput{
		UserID:        user.ID,
		Name:          "Goulash",
		Steps:         "steps",
		IngredientIDs: []uint{paprika.ID, paprika.ID},
	})
	require.NoError(t, err)
	assert.Len(t, details.Ingredients, 1)
	assert.Equal(t, []uint{paprika.ID}, f.recipes.joins[details.ID], "only one join row per ingredient")
}

func TestRecipeUpdate_DeduplicatesIngredientIDs(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	cumin := f.ingredients.add("Cumin", 1)
	recipe := f.recipes.add(model.Recipe{UserID: user.ID, Name: "Goulash", Steps: "s"}, nil)

	details, err := f.svc.Update(recipe.ID, user.ID, UpdateRecipeInput{
		Name:          "Goulash",
		Steps:         "steps",
		IngredientIDs: []uint{cumin.ID, cumin.ID, cumin.ID},
	})
	require.NoError(t, err)
	assert.Len(t, details.Ingredients, 1)
	assert.Equal(t, []uint{cumin.ID}, f.recipes.joins[recipe.ID], "only one join row per ingredient")
}

func TestRecipeAdd_UnknownIngredient(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()

	_, err := f.svc.Add(CreateRecipeInput{
		UserID:        user.ID,
		Name:          "Goulash",
		Steps:         "steps",
		IngredientIDs: []uint{42},
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestRecipeAdd_UnknownUser(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()

	_, err := f.svc.Add(CreateRecipeInput{UserID: 9, Name: "Goulash", Steps: "steps"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecipeList_FiltersByIngredient(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	paprika := f.ingredients.add("Paprika", 1)
	milk := f.ingredients.add("Milk", 2)
	f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, []uint{paprika.ID})
	f.recipes.add(model.Recipe{UserID: 1, Name: "Porridge", Steps: "s"}, []uint{milk.ID})

	all, err := f.svc.List(nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalElements)

	filtered, err := f.svc.List([]uint{paprika.ID}, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 1, filtered.ElementsCurrentPage)
	assert.Equal(t, "Goulash", filtered.Results[0].Name)
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)

	details, err := f.svc.UploadImage(recipe.ID, pngBytes, "photo.png")
	require.NoError(t, err)
	assert.NotEmpty(t, details.Photo)

	content, contentType, err := f.svc.FetchImage(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, content)
	assert.Equal(t, "image/png", contentType)
}

func TestUploadImage_RecipeNotFound(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()

	_, err := f.svc.UploadImage(99, pngBytes, "photo.png")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestUploadImage_NotAnImageLeavesPhotoUntouched(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)

	_, err := f.svc.UploadImage(recipe.ID, []byte("just some text"), "notes.txt")
	assert.ErrorIs(t, err, ErrNotAnImage)
	assert.False(t, f.files.saveCalled, "nothing may reach disk")

	stored, _ := f.recipes.GetByID(recipe.ID)
	assert.Empty(t, stored.Photo)
}

func TestUploadImage_WriteFailureLeavesPhotoUntouched(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)
	f.files.saveErr = errors.New("disk full")

	_, err := f.svc.UploadImage(recipe.ID, pngBytes, "photo.png")
	assert.ErrorIs(t, err, ErrFileNotSaved)
	assert.False(t, f.recipes.photoCalled, "row must not be touched after a failed write")
}

func TestUploadImage_RowFailureOrphansFileOnly(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)
	f.recipes.photoErr = errors.New("connection lost")

	_, err := f.svc.UploadImage(recipe.ID, pngBytes, "photo.png")
	assert.ErrorIs(t, err, ErrFileNotSaved)
	assert.Len(t, f.files.files, 1, "the written file stays as an orphan")

	stored, _ := f.recipes.GetByID(recipe.ID)
	assert.Empty(t, stored.Photo, "the visible reference is unchanged")
}

func TestReplaceImage(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	recipe := f.recipes.add(model.Recipe{UserID: user.ID, Name: "Goulash", Steps: "s"}, nil)

	first, err := f.svc.UploadImage(recipe.ID, pngBytes, "one.png")
	require.NoError(t, err)

	second, err := f.svc.ReplaceImage(recipe.ID, user.ID, pngBytes, "two.png")
	require.NoError(t, err)
	assert.NotEqual(t, first.Photo, second.Photo)

	_, err = f.files.Read(first.Photo)
	assert.Error(t, err, "the old file is gone")
	assert.Len(t, f.files.files, 1)
}

func TestReplaceImage_OldFileMissingAborts(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	recipe := f.recipes.add(model.Recipe{UserID: user.ID, Name: "Goulash", Steps: "s", Photo: "/images/gone.png"}, nil)

	_, err := f.svc.ReplaceImage(recipe.ID, user.ID, pngBytes, "new.png")
	assert.ErrorIs(t, err, ErrFileNotFound)

	stored, _ := f.recipes.GetByID(recipe.ID)
	assert.Equal(t, "/images/gone.png", stored.Photo, "the old pointer is preserved")
	assert.False(t, f.files.saveCalled, "no new file may be written")
}

func TestFetchImage_NoPhoto(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)

	_, _, err := f.svc.FetchImage(recipe.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDeleteRecipe_RemovesPhotoFirst(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s"}, nil)

	_, err := f.svc.UploadImage(recipe.ID, pngBytes, "photo.png")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(recipe.ID))
	assert.Empty(t, f.files.files)

	_, err = f.svc.GetByID(recipe.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipe_MissingPhotoFile(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	recipe := f.recipes.add(model.Recipe{UserID: 1, Name: "Goulash", Steps: "s", Photo: "/images/gone.png"}, nil)

	assert.ErrorIs(t, f.svc.Delete(recipe.ID), ErrFileNotFound)

	_, err := f.svc.GetByID(recipe.ID)
	assert.NoError(t, err, "the row stays when the file delete fails")
}

func TestRecipeUpdate_RewritesIngredients(t *testing.T) {
	t.Parallel()

	f := newRecipeFixture()
	user := f.addUser()
	paprika := f.ingredients.add("Paprika", 1)
	cumin := f.ingredients.add("Cumin", 1)
	recipe := f.recipes.add(model.Recipe{UserID: user.ID, Name: "Goulash", Steps: "s"}, []uint{paprika.ID})

	details, err := f.svc.Update(recipe.ID, user.ID, UpdateRecipeInput{
		Name:          "Goulash v2",
		Steps:         "new steps",
		PrepTime:      "60m",
		IngredientIDs: []uint{cumin.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Goulash v2", details.Name)
	require.Len(t, details.Ingredients, 1)
	assert.Equal(t, cumin.ID, details.Ingredients[0].ID)
}
