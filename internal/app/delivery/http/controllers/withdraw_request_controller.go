package controllers

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WithdrawRequestController struct {
	Log                    *zap.Logger
	WithdrawRequestUsecase contracts.WithdrawRequestUsecase
	InternalConfig         *config.InternalConfig
}

var (
	withdrawRequestControllerInstance *WithdrawRequestController
	onceWithdrawRequestController     sync.Once
)

func NewWithdrawRequestController(logger *zap.Logger, withdrawRequestUsecase contracts.WithdrawRequestUsecase, internalConfig *config.InternalConfig) *WithdrawRequestController {
	onceWithdrawRequestController.Do(func() {
		withdrawRequestControllerInstance = &WithdrawRequestController{
			Log:                    logger,
			WithdrawRequestUsecase: withdrawRequestUsecase,
			InternalConfig:         internalConfig,
		}
	})
	return withdrawRequestControllerInstance
}

func (ctrl *WithdrawRequestController) requestTimeout() time.Duration {
	seconds := defaultRequestTimeoutInSeconds
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.RequestTimeoutInSeconds > 0 {
		seconds = ctrl.InternalConfig.App.RequestTimeoutInSeconds
	}
	return time.Duration(seconds) * time.Second
}

func (ctrl *WithdrawRequestController) CreateWithdrawRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateWithdrawRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("WithdrawRequestController.CreateWithdrawRequest error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.OptometristID = session.UserID

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequest, err := ctrl.WithdrawRequestUsecase.CreateWithdrawRequest(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateWithdrawRequestSuccessMessage, utils.MapWithdrawRequestToResponse(withdrawRequest))
}

func (ctrl *WithdrawRequestController) GetWithdrawRequestByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	withdrawRequestID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamWithdrawRequestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequest, err := ctrl.WithdrawRequestUsecase.GetWithdrawRequestByID(ctx, withdrawRequestID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWithdrawRequestSuccessMessage, utils.MapWithdrawRequestToResponse(withdrawRequest))
}

func (ctrl *WithdrawRequestController) defaultListPageSize() int {
	if ctrl.InternalConfig == nil {
		return constvars.DefaultPageSize
	}
	return ctrl.InternalConfig.Withdraw.DefaultListPageSize
}

func (ctrl *WithdrawRequestController) ListWithdrawRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	filter := utils.BuildWithdrawRequestFilter(r, ctrl.defaultListPageSize())

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequests, total, err := ctrl.WithdrawRequestUsecase.ListWithdrawRequests(ctx, filter)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	baseURL := r.URL.Path
	if filter.Status != "" {
		baseURL += "?" + url.Values{constvars.URLQueryParamStatus: {filter.Status}}.Encode()
	}
	paginationData := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, baseURL)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetWithdrawRequestsSuccessMessage, paginationData, utils.MapWithdrawRequestsToResponse(withdrawRequests))
}

func (ctrl *WithdrawRequestController) ApproveWithdrawRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	withdrawRequestID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamWithdrawRequestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequest, err := ctrl.WithdrawRequestUsecase.Approve(ctx, withdrawRequestID, session.UserID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "withdraw_request_approved", requestID, "info",
		zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequestID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApproveWithdrawRequestSuccessMessage, utils.MapWithdrawRequestToResponse(withdrawRequest))
}

func (ctrl *WithdrawRequestController) RejectWithdrawRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	withdrawRequestID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamWithdrawRequestID)
	if !ok {
		return
	}

	request := new(requests.RejectWithdrawRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequest, err := ctrl.WithdrawRequestUsecase.Reject(ctx, withdrawRequestID, session.UserID, request.Reason)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "withdraw_request_rejected", requestID, "info",
		zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequestID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RejectWithdrawRequestSuccessMessage, utils.MapWithdrawRequestToResponse(withdrawRequest))
}

func (ctrl *WithdrawRequestController) MarkWithdrawRequestPaid(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	withdrawRequestID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamWithdrawRequestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	withdrawRequest, err := ctrl.WithdrawRequestUsecase.MarkPaid(ctx, withdrawRequestID, session.UserID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "withdraw_request_paid", requestID, "info",
		zap.String(constvars.LoggingWithdrawRequestIDKey, withdrawRequestID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkWithdrawRequestPaidSuccessMessage, utils.MapWithdrawRequestToResponse(withdrawRequest))
}
