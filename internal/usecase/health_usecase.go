package usecase

import (
	"context"
	"time"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/redis"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db Pinger
}

func NewHealthUsecase(db Pinger) domain.HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}
	healthy := true

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		healthy = false
	}

	if redis.Client() != nil {
		if err := redis.HealthCheck(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status, healthy
}
