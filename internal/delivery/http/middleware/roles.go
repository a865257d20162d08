package middleware

import (
	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// RequireCandidate resolves the caller's profile type and rejects anyone who
// is not a candidate. The type lives in the profile row, not in the JWT, so
// a revoked or switched profile takes effect immediately.
func RequireCandidate(profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return requireUserType(profileUC, domain.UserTypeCandidate, "Acesso restrito a candidatos")
}

// RequireCompany rejects anyone whose profile is not a company.
func RequireCompany(profileUC domain.ProfileUsecase) gin.HandlerFunc {
	return requireUserType(profileUC, domain.UserTypeCompany, "Acesso restrito a empresas")
}

func requireUserType(profileUC domain.ProfileUsecase, want, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))
		userType, err := profileUC.GetUserType(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if userType != want {
			response.Error(c, apperror.Forbidden(message))
			c.Abort()
			return
		}
		c.Set(string(domain.KeyUserType), userType)
		c.Next()
	}
}
