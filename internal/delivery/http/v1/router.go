package v1

import (
	"time"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	VacanteUC    domain.VacanteUsecase
	ProspectoUC  domain.ProspectoUsecase
	EntrevistaUC domain.EntrevistaUsecase
	HealthUC     domain.HealthUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

// NewRouter builds the engine with the global middleware and the /v1 API.
// Page routes are registered on the returned engine by the web package.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")
	v1.Use(middleware.ErrorHandler(cfg.ExposeErrorDetails))
	v1.Use(middleware.CSRFMiddleware(middleware.CSRFConfig{
		Secure:      cfg.CookieSecure,
		ExemptPaths: []string{"/v1/auth/login", "/v1/auth/register"},
	}))

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter, cfg.CookieSecure)
		NewVacanteHandler(protected, deps.VacanteUC)
		NewProspectoHandler(protected, deps.ProspectoUC)
		NewEntrevistaHandler(protected, deps.EntrevistaUC)
	}

	return r
}
