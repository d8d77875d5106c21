package contracts

import (
	"context"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/dto/requests"
	"time"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByStatus(ctx context.Context, status models.PaymentStatus, limit, offset int) ([]models.Payment, error)
	CountByStatus(ctx context.Context, status models.PaymentStatus) (int, error)
	// UpdateTransition returns nil when the row is no longer in transition.From.
	UpdateTransition(ctx context.Context, transition *models.PaymentTransition) (*models.Payment, error)
	FindExpirableIDs(ctx context.Context, now time.Time, limit int) ([]string, error)
}

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*models.Payment, error)
	GetPaymentByID(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error)
	ListPendingPayments(ctx context.Context, pagination *requests.Pagination) ([]models.Payment, int, error)
	ListPaymentAuditLogs(ctx context.Context, paymentID string) ([]models.AuditLog, error)
	SubmitProof(ctx context.Context, session *models.Session, paymentID, proofURL string) (*models.Payment, error)
	SubmitProofFile(ctx context.Context, session *models.Session, paymentID string, proof *requests.UploadPaymentProof) (*models.Payment, error)
	Verify(ctx context.Context, paymentID, adminID string) (*models.Payment, error)
	Reject(ctx context.Context, paymentID, adminID, reason string) (*models.Payment, error)
	CheckExpiry(ctx context.Context, paymentID string) (*models.Payment, error)
	MarkPaid(ctx context.Context, paymentID, actorID string) (*models.Payment, error)
	Cancel(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error)
	ExpireOverdue(ctx context.Context, limit int) (int, error)
}
