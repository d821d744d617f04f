package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"project-inquiry-backend/config"
	_ "project-inquiry-backend/docs" // Important for Swagger
	v1 "project-inquiry-backend/internal/delivery/http/v1"
	"project-inquiry-backend/internal/usecase"
	"project-inquiry-backend/pkg/email"
	"project-inquiry-backend/pkg/llm"
	"project-inquiry-backend/pkg/logger"
	"project-inquiry-backend/pkg/redis"
	"project-inquiry-backend/pkg/security"
	"project-inquiry-backend/pkg/validation"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// @title           Project Inquiry Backend API
// @version         1.0
// @description     Accepts project inquiries, notifies the operator and auto-replies to the client.
// @host            localhost:5005
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting project inquiry backend", "port", cfg.Port)

	secLogger := security.InitSecurityLogger("project-inquiry-backend", cfg.GinMode)
	defer secLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Redis (rate limiting falls back to memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting uses in-memory counters", "error", err)
	}
	defer redis.Close()

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - inquiries will fail until SMTP credentials are set")
	}

	// 5. Setup Text Generation
	generator, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to create text generation client", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Acknowledgement generation ready", "provider", generator.Provider())

	// 6. Setup UseCases
	dispatcher := usecase.NewNotificationDispatcher(usecase.DispatcherConfig{
		OperatorEmail: cfg.ContactEmailTo,
		Signature:     cfg.ReplySignature,
		FallbackReply: cfg.FallbackReply,
	}, emailService, generator)
	inquiryUC := usecase.NewInquiryUsecase(validation.New(), dispatcher)
	healthUC := usecase.NewHealthUsecase(emailService, generator.Provider())

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: inquiryUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		// In-flight dispatches get time to finish their emails
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SMTPTimeout*2+cfg.LLMTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Server exiting")
}
