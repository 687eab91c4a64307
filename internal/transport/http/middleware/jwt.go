package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pantry-on-command/internal/app"
	"pantry-on-command/internal/pkg/jwtutil"
	"pantry-on-command/internal/transport/http/response"
)

const (
	ContextPrincipalKey = "principal"

	// AuthCookieName mirrors the bearer token into a cookie on login.
	AuthCookieName = "auth_by_cookie"
)

// AuthJWT authenticates the request from the Authorization header or the
// auth cookie and stores the resolved principal in the request context.
func AuthJWT(authService *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Err(c, http.StatusUnauthorized, "missing authentication token")
			c.Abort()
			return
		}

		principal, err := authService.Authenticate(token)
		if err != nil {
			switch {
			case errors.Is(err, jwtutil.ErrTokenExpired):
				response.Err(c, http.StatusUnauthorized, "token expired")
			case errors.Is(err, jwtutil.ErrTokenInvalid):
				response.Err(c, http.StatusUnauthorized, "invalid token")
			case errors.Is(err, app.ErrUserNotFound):
				response.Err(c, http.StatusUnauthorized, app.ErrUserNotFound.Error())
			default:
				response.Err(c, http.StatusInternalServerError, "authentication failed")
			}
			c.Abort()
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, or nil on an
// unauthenticated request. Authorization predicates treat nil as
// "holds no role, is nobody".
func PrincipalFromContext(c *gin.Context) *app.Principal {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*app.Principal)
	if !ok {
		return nil
	}
	return principal
}

func bearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "Bearer "
	if strings.HasPrefix(authHeader, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	}

	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}
