package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

// bindError converts a gin binding failure into the validation error shape,
// with per-field details when the failure came from struct tags.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.BadRequestWithDetails("Dados inválidos", validation.FormatValidationErrors(err))
	}
	return apperror.BadRequest("Corpo da requisição inválido")
}

// pathID parses the numeric :id path segment.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("ID inválido")
	}
	return id, nil
}
