package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/model"
	"pantry-on-command/internal/transport/http/middleware"
	"pantry-on-command/internal/transport/http/response"
)

const maxImageSize = 5 << 20 // 5 MB

type RecipeHandler struct {
	recipeService *app.RecipeService
}

type CreateRecipeRequest struct {
	UserID        uint   `json:"user_id" binding:"required,gt=0"`
	Name          string `json:"name" binding:"required,min=1,max=128"`
	Steps         string `json:"steps" binding:"required"`
	PrepTime      string `json:"prep_time" binding:"max=32"`
	IngredientIDs []uint `json:"ingredient_ids"`
}

type UpdateRecipeRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=128"`
	Steps         string `json:"steps" binding:"required"`
	PrepTime      string `json:"prep_time" binding:"max=32"`
	IngredientIDs []uint `json:"ingredient_ids"`
}

func NewRecipeHandler(recipeService *app.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	recipe, err := h.recipeService.Add(app.CreateRecipeInput{
		UserID:        req.UserID,
		Name:          req.Name,
		Steps:         req.Steps,
		PrepTime:      req.PrepTime,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(recipeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) List(c *gin.Context) {
	page, size := pageParams(c)

	var ingredientIDs []uint
	for _, raw := range c.QueryArray("ingredientId") {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			response.Err(c, http.StatusBadRequest, "invalid ingredientId")
			return
		}
		ingredientIDs = append(ingredientIDs, uint(id))
	}

	recipes, err := h.recipeService.List(ingredientIDs, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, userID, ok := recipeOwnerParams(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	recipe, err := h.recipeService.Update(recipeID, userID, app.UpdateRecipeInput{
		Name:          req.Name,
		Steps:         req.Steps,
		PrepTime:      req.PrepTime,
		IngredientIDs: req.IngredientIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, _, ok := recipeOwnerParams(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(recipeID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	content, filename, ok := imageUpload(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.UploadImage(recipeID, content, filename)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ReplaceImage(c *gin.Context) {
	recipeID, userID, ok := recipeOwnerParams(c)
	if !ok {
		return
	}

	content, filename, ok := imageUpload(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.ReplaceImage(recipeID, userID, content, filename)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) FetchImage(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	content, contentType, err := h.recipeService.FetchImage(recipeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, content)
}

// recipeOwnerParams parses both path ids and enforces the ownership gate:
// the target user of the route, a moderator, or an admin.
func recipeOwnerParams(c *gin.Context) (uint, uint, bool) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return 0, 0, false
	}
	userID, ok := idParam(c, "userId")
	if !ok {
		return 0, 0, false
	}

	principal := middleware.PrincipalFromContext(c)
	if !(principal.IsSelf(userID) || principal.HasRole(model.RoleMod) || principal.HasRole(model.RoleAdmin)) {
		response.Err(c, http.StatusForbidden, "access denied")
		return 0, 0, false
	}
	return recipeID, userID, true
}

func imageUpload(c *gin.Context) ([]byte, string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "missing image file (form field 'image')")
		return nil, "", false
	}
	if file.Size > maxImageSize {
		response.Err(c, http.StatusBadRequest, "image too large (max 5MB)")
		return nil, "", false
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, app.ErrReadingFile)
		return nil, "", false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		writeError(c, app.ErrReadingFile)
		return nil, "", false
	}
	return content, file.Filename, true
}
