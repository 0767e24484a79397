package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/keksobooking/api/internal/apperr"
	"github.com/keksobooking/api/pkg/logger"
)

// Recovery recovers from panics, logs them, and returns 500 through the error formatter.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// capture stack trace and panic value, but do not leak sensitive info to client
				logger.With(c.Request.Context(), map[string]any{"panic": r, "stack": string(debug.Stack())}).Error("panic recovered")
				c.Abort()
				render(c, apperr.From(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
