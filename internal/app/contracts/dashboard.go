package contracts

import (
	"context"
	"hospital-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*responses.DashboardStats, error)
}
