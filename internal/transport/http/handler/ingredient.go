package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/transport/http/response"
)

type IngredientHandler struct {
	ingredientService *app.IngredientService
}

type IngredientRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=64"`
	CategoryID uint   `json:"category_id" binding:"required,gt=0"`
}

func NewIngredientHandler(ingredientService *app.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

func (h *IngredientHandler) Create(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	ingredient, err := h.ingredientService.Add(app.IngredientInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	ingredientID, ok := idParam(c, "ingredientId")
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetByID(ingredientID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) List(c *gin.Context) {
	page, size := pageParams(c)

	categoryID, err := strconv.ParseUint(c.DefaultQuery("categoryId", "0"), 10, 32)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid categoryId")
		return
	}

	ingredients, err := h.ingredientService.List(uint(categoryID), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) Update(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	ingredientID, ok := idParam(c, "ingredientId")
	if !ok {
		return
	}

	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	ingredient, err := h.ingredientService.Update(ingredientID, app.IngredientInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	ingredientID, ok := idParam(c, "ingredientId")
	if !ok {
		return
	}

	if err := h.ingredientService.Delete(ingredientID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
