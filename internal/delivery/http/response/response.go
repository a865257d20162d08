package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

// ErrorBody standardizes the API error JSON response.
type ErrorBody struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a `{success: true, data: ...}` envelope.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"success": true,
		"data":    data,
	})
}

// Items sends a list payload wrapped the way the frontend consumes
// collections: `{success: true, data: {items: [...]}}`.
func Items(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"items": items},
	})
}

// Error resolves an error to its HTTP status and sends an error envelope.
// Internal failures are logged server-side and replaced with a generic
// message so storage and provider details never leak to clients.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)
	body := ErrorBody{Error: appErr.Message, Details: appErr.Details}
	if appErr.Kind == apperror.KindInternal {
		logger.Log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		if body.Error == "" {
			body.Error = "Erro interno do servidor"
		}
		body.Details = nil
	}
	c.JSON(appErr.HTTPStatus(), body)
}
