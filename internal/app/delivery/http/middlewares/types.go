package middlewares

import (
	"auditflow-service/internal/app/config"
	"auditflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Metrics        *metrics.Metrics
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, appMetrics *metrics.Metrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Metrics:        appMetrics,
	}
}
