package audit

import (
	"context"
	"sync"

	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/models"
	"railpay-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type auditService struct {
	AuditLogRepository contracts.AuditLogRepository
	Logger             *zap.Logger
}

var (
	auditServiceInstance contracts.AuditSink
	onceAuditService     sync.Once
)

// NewAuditService builds the sink that writes audit entries to the structured
// log and appends them to the durable audit trail. Record returns the
// persistence error to the caller, but callers treat the sink as best-effort.
func NewAuditService(auditLogRepository contracts.AuditLogRepository, logger *zap.Logger) contracts.AuditSink {
	onceAuditService.Do(func() {
		auditServiceInstance = &auditService{
			AuditLogRepository: auditLogRepository,
			Logger:             logger,
		}
	})
	return auditServiceInstance
}

func (s *auditService) Record(ctx context.Context, entry *models.AuditLog) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Logger.Info("Audit event recorded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("entity_type", entry.EntityType),
		zap.String("entity_id", entry.EntityID),
		zap.String("action", entry.Action),
		zap.String("actor", entry.Actor),
	)

	if _, err := s.AuditLogRepository.CreateAuditLog(ctx, entry); err != nil {
		s.Logger.Error("Failed to append audit log entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("entity_type", entry.EntityType),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
		return err
	}
	return nil
}
