package v1

import (
	"project-inquiry-backend/config"
	"project-inquiry-backend/internal/delivery/http/middleware"
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/internal/usecase"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	InquiryUC domain.InquiryUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	// Welcome and health
	NewRootHandler(r, deps.HealthUC)

	// Public routes
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	NewInquiryHandler(r, deps.InquiryUC,
		middleware.BodyLimit(deps.Config.MaxBodyBytes),
		middleware.RateLimitMiddleware(middleware.InquiryRateLimitConfig(deps.Config.RateLimitInquiryThreshold, window, deps.Config.RateLimitFailClosed)),
	)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
