package payments

import (
	"bytes"
	"context"
	"errors"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errStatusChangedConcurrently = errors.New("status changed by a concurrent request")

type paymentUsecase struct {
	PaymentRepository  contracts.PaymentRepository
	AuditLogRepository contracts.AuditLogRepository
	TransitionRecorder contracts.TransitionRecorder
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	sweepLimiter       *rate.Limiter
	now                func() time.Time
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	auditLogRepository contracts.AuditLogRepository,
	transitionRecorder contracts.TransitionRecorder,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = newPaymentUsecase(paymentRepository, auditLogRepository, transitionRecorder, storage, internalConfig, logger)
	})
	return paymentUsecaseInstance
}

func newPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	auditLogRepository contracts.AuditLogRepository,
	transitionRecorder contracts.TransitionRecorder,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *paymentUsecase {
	sweepRate := rate.Inf
	if perSecond := internalConfig.Payment.ExpirySweepRatePerSecond; perSecond > 0 {
		sweepRate = rate.Limit(perSecond)
	}

	return &paymentUsecase{
		PaymentRepository:  paymentRepository,
		AuditLogRepository: auditLogRepository,
		TransitionRecorder: transitionRecorder,
		Storage:            storage,
		InternalConfig:     internalConfig,
		Log:                logger,
		sweepLimiter:       rate.NewLimiter(sweepRate, 1),
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*models.Payment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := uc.now()
	payment := &models.Payment{
		ID:              uuid.NewString(),
		PaymentType:     models.PaymentType(request.PaymentType),
		ReferenceID:     strings.TrimSpace(request.ReferenceID),
		PayerID:         request.PayerID,
		Amount:          request.Amount.Round(2),
		PaymentMethod:   models.PaymentMethod(request.PaymentMethod),
		Status:          models.PaymentStatusPending,
		PaymentDeadline: request.PaymentDeadline,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if payment.PaymentDeadline == nil && payment.PaymentMethod.RequiresManualProof() {
		deadline := now.Add(time.Duration(uc.InternalConfig.Payment.ManualTransferDeadlineInHours) * time.Hour)
		payment.PaymentDeadline = &deadline
	}

	if err := uc.PaymentRepository.Insert(ctx, payment); err != nil {
		return nil, err
	}

	uc.TransitionRecorder.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypePayment,
		EntityID:   payment.ID,
		ToStatus:   string(payment.Status),
		ActorID:    payment.PayerID,
		OccurredAt: now,
	})
	utils.LogBusinessEvent(uc.Log, "payment_created", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingActorIDKey, payment.PayerID),
	)
	return payment, nil
}

func (uc *paymentUsecase) GetPaymentByID(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	return uc.loadOwnedPayment(ctx, session, paymentID)
}

// ListPendingPayments returns payments waiting for an admin decision. Rows
// whose deadline passed are expired on the way out and left off the page.
func (uc *paymentUsecase) ListPendingPayments(ctx context.Context, pagination *requests.Pagination) ([]models.Payment, int, error) {
	status := models.PaymentStatusWaitingVerification

	payments, err := uc.PaymentRepository.FindByStatus(ctx, status, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.PaymentRepository.CountByStatus(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	pending := make([]models.Payment, 0, len(payments))
	for i := range payments {
		payment, err := uc.expireIfOverdue(ctx, &payments[i])
		if err != nil {
			return nil, 0, err
		}
		if payment.Status != status {
			total--
			continue
		}
		pending = append(pending, *payment)
	}

	return pending, total, nil
}

func (uc *paymentUsecase) ListPaymentAuditLogs(ctx context.Context, paymentID string) ([]models.AuditLog, error) {
	if _, err := uc.findPayment(ctx, paymentID); err != nil {
		return nil, err
	}
	return uc.AuditLogRepository.FindByEntity(ctx, constvars.EntityTypePayment, paymentID)
}

func (uc *paymentUsecase) SubmitProof(ctx context.Context, session *models.Session, paymentID, proofURL string) (*models.Payment, error) {
	proofURL = strings.TrimSpace(proofURL)
	if proofURL == "" {
		return nil, exceptions.ErrPaymentProofRequired(nil)
	}

	payment, err := uc.loadOwnedPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, payment, ActionSubmitProof, session.UserID, func(t *models.PaymentTransition) {
		t.ProofURL = &proofURL
	})
}

// SubmitProofFile stores the uploaded proof in object storage and submits its URL.
// The state is checked before uploading so a rejected request leaves no object behind.
func (uc *paymentUsecase) SubmitProofFile(ctx context.Context, session *models.Session, paymentID string, proof *requests.UploadPaymentProof) (*models.Payment, error) {
	if proof == nil || len(proof.Content) == 0 {
		return nil, exceptions.ErrPaymentProofRequired(nil)
	}

	limitInMB := uc.InternalConfig.Payment.ProofMaxUploadSizeInMB
	err := utils.ValidateProofFile(proof.ContentType, proof.Size, limitInMB)
	switch {
	case errors.Is(err, utils.ErrProofContentType):
		return nil, exceptions.ErrPaymentProofInvalidFormat(err, proof.ContentType)
	case errors.Is(err, utils.ErrProofTooLarge):
		return nil, exceptions.ErrPaymentProofTooLarge(err, proof.Size, limitInMB)
	}

	payment, err := uc.loadOwnedPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}
	if _, err := TransitionPayment(payment.Status, ActionSubmitProof, payment.PaymentDeadline, uc.now()); err != nil {
		return nil, uc.mapTransitionError(err, ActionSubmitProof, payment)
	}

	bucketName := uc.InternalConfig.Minio.PaymentProofBucketName
	objectName := utils.GenerateProofObjectName(payment.ID, proof.FileName)
	proofURL, err := uc.Storage.UploadObject(ctx, bucketName, objectName, proof.ContentType, bytes.NewReader(proof.Content), proof.Size)
	if err != nil {
		uc.Log.Error("paymentUsecase.SubmitProofFile error uploading proof",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.transition(ctx, payment, ActionSubmitProof, session.UserID, func(t *models.PaymentTransition) {
		t.ProofURL = &proofURL
	})
}

func (uc *paymentUsecase) Verify(ctx context.Context, paymentID, adminID string) (*models.Payment, error) {
	payment, err := uc.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, payment, ActionVerify, adminID, func(t *models.PaymentTransition) {
		t.VerifiedBy = &adminID
		t.VerifiedAt = &t.UpdatedAt
	})
}

func (uc *paymentUsecase) Reject(ctx context.Context, paymentID, adminID, reason string) (*models.Payment, error) {
	reason, err := utils.RequireReason(reason)
	if err != nil {
		return nil, exceptions.ErrRejectionReasonRequired(err)
	}

	payment, err := uc.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, payment, ActionReject, adminID, func(t *models.PaymentTransition) {
		t.VerifiedBy = &adminID
		t.VerifiedAt = &t.UpdatedAt
		t.RejectionReason = &reason
	})
}

// CheckExpiry applies the deadline rule and returns the payment as it now stands.
// A payment that is not overdue is returned unchanged.
func (uc *paymentUsecase) CheckExpiry(ctx context.Context, paymentID string) (*models.Payment, error) {
	return uc.loadPayment(ctx, paymentID)
}

func (uc *paymentUsecase) MarkPaid(ctx context.Context, paymentID, actorID string) (*models.Payment, error) {
	payment, err := uc.loadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, payment, ActionMarkPaid, actorID, func(t *models.PaymentTransition) {
		if actorID != "" {
			t.VerifiedBy = &actorID
			t.VerifiedAt = &t.UpdatedAt
		}
	})
}

func (uc *paymentUsecase) Cancel(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	payment, err := uc.loadOwnedPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}

	return uc.transition(ctx, payment, ActionCancel, session.UserID, nil)
}

// ExpireOverdue expires up to limit overdue payments and reports how many moved.
func (uc *paymentUsecase) ExpireOverdue(ctx context.Context, limit int) (int, error) {
	paymentIDs, err := uc.PaymentRepository.FindExpirableIDs(ctx, uc.now(), limit)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, paymentID := range paymentIDs {
		if err := uc.sweepLimiter.Wait(ctx); err != nil {
			return expired, err
		}

		payment, err := uc.loadPayment(ctx, paymentID)
		if err != nil {
			uc.Log.Warn("paymentUsecase.ExpireOverdue error expiring payment",
				zap.String(constvars.LoggingPaymentIDKey, paymentID),
				zap.Error(err),
			)
			continue
		}
		if payment.Status == models.PaymentStatusExpired {
			expired++
		}
	}
	return expired, nil
}

func (uc *paymentUsecase) findPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil, paymentID)
	}
	return payment, nil
}

// loadPayment reads a payment and applies lazy expiry before returning it.
func (uc *paymentUsecase) loadPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return uc.expireIfOverdue(ctx, payment)
}

// loadOwnedPayment is loadPayment for payer-facing operations. Admins reach
// every payment, anyone else only their own. A stranger gets not found and
// never triggers lazy expiry.
func (uc *paymentUsecase) loadOwnedPayment(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	payment, err := uc.findPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !canAccessPayment(session, payment) {
		requesterID := ""
		if session != nil {
			requesterID = session.UserID
		}
		utils.LogSecurityEvent(uc.Log, "payment_access_denied", utils.GetRequestID(ctx), "warning",
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
			zap.String(constvars.LoggingActorIDKey, requesterID),
		)
		return nil, exceptions.ErrPaymentNotFound(exceptions.ErrNotPaymentOwner, paymentID)
	}
	return uc.expireIfOverdue(ctx, payment)
}

func canAccessPayment(session *models.Session, payment *models.Payment) bool {
	if session == nil {
		return false
	}
	if session.HasAnyRole(constvars.HaloRoleAdmin, constvars.HaloRoleSuperadmin) {
		return true
	}
	return session.UserID != "" && session.UserID == payment.PayerID
}

func (uc *paymentUsecase) expireIfOverdue(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if !ShouldExpire(payment, uc.now()) {
		return payment, nil
	}

	expired, err := uc.transition(ctx, payment, ActionExpire, "", nil)
	if errors.Is(err, exceptions.ErrInvalidState) {
		// another request moved it first, report what is stored now
		return uc.findPayment(ctx, payment.ID)
	}
	return expired, err
}

// transition validates action against the pure state machine and persists it
// with a write conditional on the status that was read.
func (uc *paymentUsecase) transition(ctx context.Context, payment *models.Payment, action PaymentAction, actorID string, apply func(*models.PaymentTransition)) (*models.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	now := uc.now()

	next, err := TransitionPayment(payment.Status, action, payment.PaymentDeadline, now)
	if err != nil {
		uc.Log.Info("paymentUsecase transition refused",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			zap.String(constvars.LoggingOperationKey, string(action)),
			zap.String(constvars.LoggingPaymentStatusKey, string(payment.Status)),
		)
		return nil, uc.mapTransitionError(err, action, payment)
	}

	transition := &models.PaymentTransition{
		PaymentID: payment.ID,
		From:      payment.Status,
		To:        next,
		UpdatedAt: now,
	}
	if apply != nil {
		apply(transition)
	}

	updated, err := uc.PaymentRepository.UpdateTransition(ctx, transition)
	if err != nil {
		uc.Log.Error("paymentUsecase error persisting transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			zap.String(constvars.LoggingOperationKey, string(action)),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		current, err := uc.findPayment(ctx, payment.ID)
		if err != nil {
			return nil, err
		}
		return nil, exceptions.ErrPaymentInvalidState(
			errors.Join(exceptions.ErrInvalidState, errStatusChangedConcurrently),
			action.Describe(),
			string(current.Status),
		)
	}

	entry := &models.AuditLog{
		EntityType: constvars.EntityTypePayment,
		EntityID:   updated.ID,
		FromStatus: string(transition.From),
		ToStatus:   string(transition.To),
		ActorID:    actorID,
		OccurredAt: now,
	}
	if transition.RejectionReason != nil {
		entry.Reason = *transition.RejectionReason
	}
	uc.TransitionRecorder.Record(ctx, entry)

	utils.LogBusinessEvent(uc.Log, "payment_"+string(action), requestID,
		zap.String(constvars.LoggingPaymentIDKey, updated.ID),
		zap.String(constvars.LoggingActorIDKey, actorID),
		zap.String(constvars.LoggingFromStatusKey, string(transition.From)),
		zap.String(constvars.LoggingToStatusKey, string(transition.To)),
	)
	return updated, nil
}

func (uc *paymentUsecase) mapTransitionError(err error, action PaymentAction, payment *models.Payment) error {
	if errors.Is(err, ErrDeadlinePassed) {
		return exceptions.ErrPaymentDeadlinePassed(err, payment.ID)
	}
	return exceptions.ErrPaymentInvalidState(err, action.Describe(), string(payment.Status))
}
