package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/supabase"
	"go-jobboard-backend/pkg/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; the rate limiter falls back to process memory.
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	profileRepo := postgres.NewProfileRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)
	entityRepo := postgres.NewEntityRepository(dbPool)

	supabaseClient := supabase.NewClient(cfg.SupabaseUrl, cfg.SupabaseKey, cfg.SupabaseServiceKey)
	if !supabaseClient.HasAdminAccess() {
		logger.Log.Warn("Service role key not configured - registrations require email confirmation")
	}

	authUC := usecase.NewAuthUsecase(supabaseClient, profileRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, resumeRepo, notificationUC)
	entityUC := usecase.NewEntityUsecase(entityRepo, jobRepo, profileRepo)

	jwksProvider := auth.NewProvider(cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json")

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		ResumeUC:       resumeUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		NotificationUC: notificationUC,
		EntityUC:       entityUC,
		JWKSProvider:   jwksProvider,
		Config:         cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
