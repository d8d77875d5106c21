package contracts

import (
	"context"
	"halo-optom-service/internal/app/models"
)

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	FindByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditLog, error)
}

type EventPublisher interface {
	PublishStatusEvent(ctx context.Context, event *models.StatusEvent) error
}

// TransitionRecorder fans a committed transition out to the audit trail, the
// broker and metrics. Failures are logged and never returned.
type TransitionRecorder interface {
	Record(ctx context.Context, entry *models.AuditLog)
}
