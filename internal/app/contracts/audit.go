package contracts

import (
	"context"
	"railpay-service/internal/app/models"
)

// AuditSink records compliance and business events. Best-effort from the
// orchestrator's perspective: a sink failure is reported by the sink itself
// and must never fail the payment.
type AuditSink interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) (*models.AuditLog, error)
}
