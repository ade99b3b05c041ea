package middlewares

import (
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	TokenService    contracts.TokenService
	SessionResolver contracts.SessionResolver
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	tokenService contracts.TokenService,
	sessionResolver contracts.SessionResolver,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		TokenService:    tokenService,
		SessionResolver: sessionResolver,
		InternalConfig:  internalConfig,
	}
}
