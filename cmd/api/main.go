package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-recruitment-tracker/config"
	_ "go-recruitment-tracker/docs" // Important for Swagger
	"go-recruitment-tracker/internal/delivery/http/middleware"
	v1 "go-recruitment-tracker/internal/delivery/http/v1"
	"go-recruitment-tracker/internal/delivery/http/web"
	"go-recruitment-tracker/internal/repository/postgres"
	"go-recruitment-tracker/internal/usecase"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/database"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/redis"
	"go-recruitment-tracker/pkg/security"
	"go-recruitment-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Recruitment Tracker API
// @version         1.0
// @description     Vacantes, prospectos and their entrevistas.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting recruitment tracker", "port", cfg.Port, "env", cfg.Environment)

	secLog := security.InitSecurityLogger("go-recruitment-tracker", cfg.Environment)
	defer func() { _ = secLog.Sync() }()

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolOptions())
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis not configured, using in-memory rate limiting and no token revocation")
		} else {
			logger.Log.Warn("Redis unavailable, continuing without it", "error", err)
		}
	}
	defer func() { _ = redis.Close() }()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	vacanteRepo := postgres.NewVacanteRepository(dbPool)
	prospectoRepo := postgres.NewProspectoRepository(dbPool)
	entrevistaRepo := postgres.NewEntrevistaRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	tracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	}, secLog)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, tracker, secLog, validate)
	vacanteUC := usecase.NewVacanteUsecase(vacanteRepo, entrevistaRepo, validate)
	prospectoUC := usecase.NewProspectoUsecase(prospectoRepo, entrevistaRepo, validate)
	entrevistaUC := usecase.NewEntrevistaUsecase(entrevistaRepo, vacanteRepo, prospectoRepo, validate, usecase.EntrevistaOptions{
		NotasRequired: cfg.EntrevistaNotasRequired,
	})
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		VacanteUC:    vacanteUC,
		ProspectoUC:  prospectoUC,
		EntrevistaUC: entrevistaUC,
		HealthUC:     healthUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	pages := web.NewHandler(web.Deps{
		AuthUC:       authUC,
		VacanteUC:    vacanteUC,
		ProspectoUC:  prospectoUC,
		EntrevistaUC: entrevistaUC,
		Tokens:       tokens,
		CookieSecure: cfg.CookieSecure,
		LoginLimiter: middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)),
	})
	if err := pages.Register(router); err != nil {
		logger.Log.Error("Failed to load page templates", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
