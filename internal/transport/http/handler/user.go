package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/model"
	"pantry-on-command/internal/transport/http/middleware"
	"pantry-on-command/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Register(app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	principal := middleware.PrincipalFromContext(c)
	if !(principal.IsSelf(userID) || principal.HasRole(model.RoleMod) || principal.HasRole(model.RoleAdmin)) {
		response.Err(c, http.StatusForbidden, "access denied")
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	role := c.DefaultQuery("type", model.RoleUser)
	if !model.ValidRole(role) {
		response.Err(c, http.StatusBadRequest, "unknown role")
		return
	}

	principal := middleware.PrincipalFromContext(c)
	if !(principal.HasRole(model.RoleAdmin) || (principal.HasRole(model.RoleMod) && role == model.RoleUser)) {
		response.Err(c, http.StatusForbidden, "access denied")
		return
	}

	users, err := h.userService.List(role, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	principal := middleware.PrincipalFromContext(c)
	if !(principal.IsSelf(userID) || principal.HasRole(model.RoleAdmin)) {
		response.Err(c, http.StatusForbidden, "access denied")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.Update(userID, app.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := idParam(c, "userId")
	if !ok {
		return
	}

	principal := middleware.PrincipalFromContext(c)
	if !principal.HasRole(model.RoleAdmin) {
		response.Err(c, http.StatusForbidden, "access denied")
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Err(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		size = app.DefaultPageSize
	}
	return page, size
}
