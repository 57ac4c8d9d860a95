package httpapi

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"finops/internal/logger"
)

// recovery converts a panic inside a handler into a 500 response instead
// of crashing the process.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), "panic recovered: %v\nstack:\n%s", err, string(debug.Stack()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.InfoCtx(c.Request.Context(), "%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
