package withdrawRequests

import (
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
)

var errStatusChangedConcurrently = errors.New("status changed by a concurrent request")

type withdrawRequestUsecase struct {
	WithdrawRequestRepository contracts.WithdrawRequestRepository
	TransitionRecorder        contracts.TransitionRecorder
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
	now                       func() time.Time
}

var (
	withdrawRequestUsecaseInstance contracts.WithdrawRequestUsecase
	onceWithdrawRequestUsecase     sync.Once
)

func NewWithdrawRequestUsecase(
	withdrawRequestRepository contracts.WithdrawRequestRepository,
	transitionRecorder contracts.TransitionRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WithdrawRequestUsecase {
	onceWithdrawRequestUsecase.Do(func() {
		withdrawRequestUsecaseInstance = newWithdrawRequestUsecase(withdrawRequestRepository, transitionRecorder, internalConfig, logger)
	})
	return withdrawRequestUsecaseInstance
}

func newWithdrawRequestUsecase(
	withdrawRequestRepository contracts.WithdrawRequestRepository,
	transitionRecorder contracts.TransitionRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *withdrawRequestUsecase {
	return &withdrawRequestUsecase{
		WithdrawRequestRepository: withdrawRequestRepository,
		TransitionRecorder:        transitionRecorder,
		InternalConfig:            internalConfig,
		Log:                       logger,
		now:                       func() time.Time { return time.Now().UTC() },
	}
}

func (uc *withdrawRequestUsecase) CreateWithdrawRequest(ctx context.Context, request *requests.CreateWithdrawRequest) (*models.WithdrawRequest, error) {
	if !request.Amount.IsPositive() {
		return nil, exceptions.ErrWithdrawAmountNotPositive(nil)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := uc.now()
	withdrawRequest := &models.WithdrawRequest{
		ID:                uuid.NewString(),
		OptometristID:     request.OptometristID,
		Amount:            request.Amount,
		BankName:          strings.TrimSpace(request.BankName),
		BankAccountNumber: strings.TrimSpace(request.BankAccountNumber),
		BankAccountName:   strings.TrimSpace(request.BankAccountName),
		Status:            models.WithdrawStatusPending,
		RequestedAt:       now,
		UpdatedAt:         now,
	}

	if err := uc.WithdrawRequestRepository.Insert(ctx, withdrawRequest); err != nil {
		return nil, err
	}

	uc.TransitionRecorder.Record(ctx, &models.AuditLog{
		EntityType: constvars.EntityTypeWithdrawRequest,
		EntityID:   withdrawRequest.ID,
		ToStatus:   string(withdrawRequest.Status),
		ActorID:    withdrawRequest.OptometristID,
		OccurredAt: now,
	})
	utils.LogBusinessEvent(uc.Log, "withdraw_request_created", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequest.ID),
		zap.String(constvars.LoggingActorIDKey, withdrawRequest.OptometristID),
	)
	return withdrawRequest, nil
}

func (uc *withdrawRequestUsecase) GetWithdrawRequestByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error) {
	return uc.findWithdrawRequest(ctx, withdrawRequestID)
}

func (uc *withdrawRequestUsecase) ListWithdrawRequests(ctx context.Context, filter *requests.WithdrawRequestFilter) ([]models.WithdrawRequest, int, error) {
	status := models.WithdrawStatus(filter.Status)
	if status != "" && !status.IsValid() {
		return nil, 0, exceptions.ErrStatusFilterInvalid(nil)
	}

	withdrawRequests, err := uc.WithdrawRequestRepository.FindAll(ctx, status, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.WithdrawRequestRepository.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return withdrawRequests, total, nil
}

func (uc *withdrawRequestUsecase) Approve(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error) {
	return uc.transition(ctx, withdrawRequestID, ActionApprove, adminID, nil)
}

func (uc *withdrawRequestUsecase) Reject(ctx context.Context, withdrawRequestID, adminID, reason string) (*models.WithdrawRequest, error) {
	reason, err := utils.RequireReason(reason)
	if err != nil {
		return nil, exceptions.ErrRejectionReasonRequired(err)
	}
	return uc.transition(ctx, withdrawRequestID, ActionReject, adminID, &reason)
}

func (uc *withdrawRequestUsecase) MarkPaid(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error) {
	return uc.transition(ctx, withdrawRequestID, ActionMarkPaid, adminID, nil)
}

func (uc *withdrawRequestUsecase) findWithdrawRequest(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error) {
	withdrawRequest, err := uc.WithdrawRequestRepository.FindByID(ctx, withdrawRequestID)
	if err != nil {
		return nil, err
	}
	if withdrawRequest == nil {
		return nil, exceptions.ErrWithdrawRequestNotFound(nil, withdrawRequestID)
	}
	return withdrawRequest, nil
}

func (uc *withdrawRequestUsecase) transition(ctx context.Context, withdrawRequestID string, action WithdrawAction, adminID string, note *string) (*models.WithdrawRequest, error) {
	requestID := utils.GetRequestID(ctx)

	withdrawRequest, err := uc.findWithdrawRequest(ctx, withdrawRequestID)
	if err != nil {
		return nil, err
	}

	next, err := TransitionWithdraw(withdrawRequest.Status, action)
	if err != nil {
		uc.Log.Info("withdrawRequestUsecase transition refused",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequest.ID),
			zap.String(constvars.LoggingOperationKey, string(action)),
			zap.String(constvars.LoggingWithdrawStatusKey, string(withdrawRequest.Status)),
		)
		return nil, exceptions.ErrWithdrawRequestInvalidState(err, action.Describe(), string(withdrawRequest.Status))
	}

	now := uc.now()
	transition := &models.WithdrawTransition{
		WithdrawRequestID: withdrawRequest.ID,
		From:              withdrawRequest.Status,
		To:                next,
		ReviewedBy:        adminID,
		ReviewedAt:        now,
		Note:              note,
		UpdatedAt:         now,
	}

	updated, err := uc.WithdrawRequestRepository.UpdateTransition(ctx, transition)
	if err != nil {
		uc.Log.Error("withdrawRequestUsecase error persisting transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequest.ID),
			zap.String(constvars.LoggingOperationKey, string(action)),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		current, err := uc.findWithdrawRequest(ctx, withdrawRequest.ID)
		if err != nil {
			return nil, err
		}
		return nil, exceptions.ErrWithdrawRequestInvalidState(
			errors.Join(exceptions.ErrInvalidState, errStatusChangedConcurrently),
			action.Describe(),
			string(current.Status),
		)
	}

	entry := &models.AuditLog{
		EntityType: constvars.EntityTypeWithdrawRequest,
		EntityID:   updated.ID,
		FromStatus: string(transition.From),
		ToStatus:   string(transition.To),
		ActorID:    adminID,
		OccurredAt: now,
	}
	if note != nil {
		entry.Reason = *note
	}
	uc.TransitionRecorder.Record(ctx, entry)

	utils.LogBusinessEvent(uc.Log, "withdraw_request_"+string(action), requestID,
		zap.String(constvars.LoggingWithdrawRequestIDKey, updated.ID),
		zap.String(constvars.LoggingActorIDKey, adminID),
		zap.String(constvars.LoggingFromStatusKey, string(transition.From)),
		zap.String(constvars.LoggingToStatusKey, string(transition.To)),
	)
	return updated, nil
}
