package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ProfileUC      domain.ProfileUsecase
	ResumeUC       domain.ResumeUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	NotificationUC domain.NotificationUsecase
	EntityUC       domain.EntityUsecase
	JWKSProvider   *auth.Provider
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	registerLimit := middleware.RateLimit(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window))
	loginLimit := middleware.RateLimit(middleware.LoginRateLimitConfig(deps.Config.RateLimitAuthThreshold, window))

	requireCandidate := middleware.RequireCandidate(deps.ProfileUC)
	requireCompany := middleware.RequireCompany(deps.ProfileUC)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewAuthHandler(api, protected, deps.AuthUC, registerLimit, loginLimit)
		NewProfileHandler(protected, deps.ProfileUC)
		NewResumeHandler(protected, deps.ResumeUC, requireCandidate, requireCompany)
		NewJobHandler(protected, deps.JobUC, requireCandidate, requireCompany)
		NewApplicationHandler(protected, deps.ApplicationUC, requireCandidate, requireCompany)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewEntityHandler(protected, deps.EntityUC)
	}

	return r
}
