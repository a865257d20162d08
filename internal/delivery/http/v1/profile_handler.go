package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.POST("", handler.Create)
		profiles.GET("/me", handler.Me)
		profiles.PUT("/me", handler.Update)
	}
}

type CreateProfileRequest struct {
	UserType string  `json:"user_type" binding:"required,oneof=candidate company"`
	FullName string  `json:"full_name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone" binding:"omitempty,valid_phone"`
}

type UpdateProfileRequest struct {
	FullName string  `json:"full_name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone" binding:"omitempty,valid_phone"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.CreateProfile(c.Request.Context(), userID, &domain.UserProfile{
		UserType: req.UserType,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, profile)
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// Update never touches user_type; the role is fixed at profile creation.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), userID, &domain.UserProfile{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
