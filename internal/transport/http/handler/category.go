package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/model"
	"pantry-on-command/internal/transport/http/middleware"
	"pantry-on-command/internal/transport/http/response"
)

type CategoryHandler struct {
	categoryService *app.CategoryService
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

func NewCategoryHandler(categoryService *app.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	category, err := h.categoryService.Add(req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(categoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	page, size := pageParams(c)

	categories, err := h.categoryService.List(page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	category, err := h.categoryService.Update(categoryID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if !requireModOrAdmin(c) {
		return
	}

	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(categoryID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func requireModOrAdmin(c *gin.Context) bool {
	principal := middleware.PrincipalFromContext(c)
	if principal.HasRole(model.RoleMod) || principal.HasRole(model.RoleAdmin) {
		return true
	}
	response.Err(c, http.StatusForbidden, "access denied")
	return false
}
