package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, registerLimit, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", registerLimit, handler.Register)
		publicAuth.POST("/login", loginLimit, handler.Login)
		publicAuth.GET("/check-auth", handler.CheckAuth)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/logout", handler.Logout)
	}
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account with the auth provider and, when possible,
// opens a session right away.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	session, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"token":         session.Token,
		"refresh_token": session.RefreshToken,
		"user":          session.User,
		"profile":       session.Profile,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	session, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"token":         session.Token,
		"refresh_token": session.RefreshToken,
		"user":          session.User,
		"profile":       session.Profile,
	})
}

// Me introspects the bearer token with the auth provider and returns the
// session plus profile state the frontend keys its navigation on.
func (h *AuthHandler) Me(c *gin.Context) {
	status, err := h.authUC.GetCurrentUser(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": status.Authenticated,
		"user":          status.User,
		"profile":       status.Profile,
		"user_type":     status.UserType,
		"is_candidate":  status.UserType == domain.UserTypeCandidate,
		"is_company":    status.UserType == domain.UserTypeCompany,
	})
}

// CheckAuth is the cheap "am I logged in" probe; it never returns an error
// status, only a boolean.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	authenticated := h.authUC.CheckAuth(c.Request.Context(), middleware.BearerToken(c))
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}

// Logout is stateless: sessions live in the provider's token, so the server
// only acknowledges and the client drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sessão encerrada"})
}
