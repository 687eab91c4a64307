package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/transport/http/middleware"
	"pantry-on-command/internal/transport/http/response"
)

const authCookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	authService *app.AuthService
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,max=128"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	// The password never reaches a log line.
	log.Printf("login requested for email %s", req.Email)

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(middleware.AuthCookieName, result.Token, authCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if principal := middleware.PrincipalFromContext(c); principal != nil {
		log.Printf("logout requested for user %d", principal.UserID)
	}

	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}
