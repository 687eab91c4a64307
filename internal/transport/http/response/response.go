package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Error is the uniform envelope every failed request gets back.
type Error struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
}

func Err(c *gin.Context, status int, message string) {
	c.JSON(status, Error{
		Timestamp: time.Now(),
		Message:   message,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
	})
}
