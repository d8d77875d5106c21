package transition

import (
	"context"
	"fmt"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var workflowTransitionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "workflow_transitions_total",
		Help: "Total number of committed workflow status transitions",
	},
	[]string{"entity", "from", "to"},
)

func init() {
	prometheus.MustRegister(workflowTransitionsTotal)
}

type transitionRecorder struct {
	AuditLogRepository contracts.AuditLogRepository
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

func NewTransitionRecorder(auditLogRepository contracts.AuditLogRepository, eventPublisher contracts.EventPublisher, logger *zap.Logger) contracts.TransitionRecorder {
	return &transitionRecorder{
		AuditLogRepository: auditLogRepository,
		EventPublisher:     eventPublisher,
		Log:                logger,
	}
}

func (r *transitionRecorder) Record(ctx context.Context, entry *models.AuditLog) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RequestID == "" {
		entry.RequestID = utils.GetRequestID(ctx)
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	workflowTransitionsTotal.WithLabelValues(entry.EntityType, entry.FromStatus, entry.ToStatus).Inc()

	if err := r.AuditLogRepository.Insert(ctx, entry); err != nil {
		r.Log.Error("transitionRecorder.Record failed to write audit log",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.String(constvars.LoggingOperationKey, entry.EntityType),
			zap.String(constvars.LoggingFromStatusKey, entry.FromStatus),
			zap.String(constvars.LoggingToStatusKey, entry.ToStatus),
			zap.Error(err),
		)
	}

	event := &models.StatusEvent{
		Event:      fmt.Sprintf("%s.%s", entry.EntityType, strings.ToLower(entry.ToStatus)),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Status:     entry.ToStatus,
		ActorID:    entry.ActorID,
		OccurredAt: entry.OccurredAt,
	}
	if err := r.EventPublisher.PublishStatusEvent(ctx, event); err != nil {
		r.Log.Error("transitionRecorder.Record failed to publish status event",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.String(constvars.LoggingOperationKey, event.Event),
			zap.Error(err),
		)
	}
}
