package domain

import "context"

type HealthUsecase interface {
	// Check returns per-component status and whether the service is healthy.
	Check(ctx context.Context) (map[string]string, bool)
}
