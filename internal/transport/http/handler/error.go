package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/transport/http/response"
)

// errStatus maps each typed domain error to its status code. The canonical
// message of the sentinel goes to the client, never the wrapped cause.
var errStatus = []struct {
	err    error
	status int
}{
	{app.ErrInvalidInput, http.StatusBadRequest},
	{app.ErrNotAnImage, http.StatusBadRequest},
	{app.ErrWrongCredentials, http.StatusUnauthorized},
	{app.ErrUserNotFound, http.StatusNotFound},
	{app.ErrCategoryNotFound, http.StatusNotFound},
	{app.ErrIngredientNotFound, http.StatusNotFound},
	{app.ErrRecipeNotFound, http.StatusNotFound},
	{app.ErrFileNotFound, http.StatusNotFound},
	{app.ErrUserAlreadyExists, http.StatusConflict},
	{app.ErrCategoryAlreadyExists, http.StatusConflict},
	{app.ErrIngredientAlreadyExists, http.StatusConflict},
	{app.ErrCategoryInUse, http.StatusConflict},
	{app.ErrFileNotSaved, http.StatusInternalServerError},
	{app.ErrReadingFile, http.StatusInternalServerError},
	{app.ErrDatabase, http.StatusInternalServerError},
}

func writeError(c *gin.Context, err error) {
	for _, mapping := range errStatus {
		if errors.Is(err, mapping.err) {
			if mapping.status >= http.StatusInternalServerError {
				log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
			}
			response.Err(c, mapping.status, mapping.err.Error())
			return
		}
	}

	log.Printf("%s %s failed with unhandled error: %v", c.Request.Method, c.Request.URL.Path, err)
	response.Err(c, http.StatusInternalServerError, "Operation failed")
}
