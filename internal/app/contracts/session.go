package contracts

import (
	"context"
	"hospital-service/internal/app/models"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expirationInSeconds int) error
	Delete(ctx context.Context, key string) error
}

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttlInHours int) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
