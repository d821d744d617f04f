package usecase

import (
	"context"
	"errors"
	"time"

	"project-inquiry-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// MailerStatus reports whether outbound mail has credentials
type MailerStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mailer      MailerStatus
	provider    string
	redisHealth func(ctx context.Context) error
}

func NewHealthUsecase(mailer MailerStatus, provider string) HealthUsecase {
	return &healthUsecase{
		mailer:      mailer,
		provider:    provider,
		redisHealth: redis.HealthCheck,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":    "ok",
		"mailer":    "configured",
		"generator": u.provider,
		"redis":     "up",
	}

	if !u.mailer.IsConfigured() {
		status["mailer"] = "unconfigured"
		status["status"] = "degraded"
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := u.redisHealth(ctx); err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			status["redis"] = "disabled"
		} else {
			status["redis"] = "down"
		}
	}

	return status
}
