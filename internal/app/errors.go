package app

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound            = errors.New("Can't find any user with the given id")
	ErrUserAlreadyExists       = errors.New("User with the given email or username already exists")
	ErrCategoryNotFound        = errors.New("Can't find any category with the given id")
	ErrCategoryAlreadyExists   = errors.New("Category with the given name already exists")
	ErrCategoryInUse           = errors.New("Category still has ingredients associated with it")
	ErrIngredientNotFound      = errors.New("Can't find any ingredient with the given id")
	ErrIngredientAlreadyExists = errors.New("Ingredient with the given name already exists")
	ErrRecipeNotFound          = errors.New("Can't find any recipe with the given id")

	ErrWrongCredentials = errors.New("The credentials given were wrong")

	ErrNotAnImage   = errors.New("The file uploaded is not an image")
	ErrFileNotSaved = errors.New("The file was not saved successfully")
	ErrFileNotFound = errors.New("Can't find the file")
	ErrReadingFile  = errors.New("Failed while reading the file")

	ErrDatabase = errors.New("Database communication error.")
)
