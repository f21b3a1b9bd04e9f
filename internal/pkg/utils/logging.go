package utils

import (
	"railpay-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event, requestID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}, fields...)
	logger.Info("Business event", allFields...)
}

func LogSecurityEvent(logger *zap.Logger, event, requestID, severity string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSeverityKey, severity),
	}, fields...)

	switch severity {
	case "warn":
		logger.Warn("Security event", allFields...)
	case "error":
		logger.Error("Security event", allFields...)
	default:
		logger.Info("Security event", allFields...)
	}
}
