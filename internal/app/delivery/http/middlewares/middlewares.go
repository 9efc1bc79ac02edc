package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionService contracts.SessionService
}

func New(logger *zap.Logger, internalConfig *config.InternalConfig, sessionService contracts.SessionService) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionService: sessionService,
	}
}
