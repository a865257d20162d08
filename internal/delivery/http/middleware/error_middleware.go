package middleware

import (
	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
)

// ErrorHandler turns errors appended to the gin context into the standard
// error envelope. Handlers call c.Error(err) and return; classification to a
// status code happens here, in one place.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.Error(c, c.Errors.Last().Err)
		}
	}
}
