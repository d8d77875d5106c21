package controllers

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			InternalConfig: internalConfig,
		}
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) requestTimeout() time.Duration {
	seconds := defaultRequestTimeoutInSeconds
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.RequestTimeoutInSeconds > 0 {
		seconds = ctrl.InternalConfig.App.RequestTimeoutInSeconds
	}
	return time.Duration(seconds) * time.Second
}

func (ctrl *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreatePayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("PaymentController.CreatePayment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PayerID = session.UserID

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.CreatePayment(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.GetPaymentByID(ctx, session, paymentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) ListPendingPayments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	pagination := utils.BuildPaginationRequest(r, constvars.DefaultPageSize)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payments, total, err := ctrl.PaymentUsecase.ListPendingPayments(ctx, pagination)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPendingPaymentsSuccessMessage, paginationData, utils.MapPaymentsToResponse(payments))
}

func (ctrl *PaymentController) ListPaymentAuditLogs(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	logs, err := ctrl.PaymentUsecase.ListPaymentAuditLogs(ctx, paymentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentAuditLogsSuccessMessage, utils.MapAuditLogsToResponse(logs))
}

// SubmitProof accepts either a JSON body with proof_url or a multipart
// upload with the proof file.
func (ctrl *PaymentController) SubmitProof(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		proof, err := ctrl.readProofFile(r)
		if err != nil {
			ctrl.Log.Error("PaymentController.SubmitProof error reading multipart proof",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		payment, err := ctrl.PaymentUsecase.SubmitProofFile(ctx, session, paymentID, proof)
		if err != nil {
			buildUsecaseErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitPaymentProofSuccessMessage, utils.MapPaymentToResponse(payment))
		return
	}

	request := new(requests.SubmitPaymentProof)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if strings.TrimSpace(request.ProofURL) == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPaymentProofRequired(nil))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	payment, err := ctrl.PaymentUsecase.SubmitProof(ctx, session, paymentID, request.ProofURL)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitPaymentProofSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) readProofFile(r *http.Request) (*requests.UploadPaymentProof, error) {
	limitInMB := ctrl.InternalConfig.Payment.ProofMaxUploadSizeInMB
	if err := r.ParseMultipartForm(limitInMB << 20); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldPaymentProof)
	if err != nil {
		return nil, exceptions.ErrPaymentProofRequired(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	return &requests.UploadPaymentProof{
		FileName:    fileHeader.Filename,
		ContentType: mimetype.Detect(content).String(),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

func (ctrl *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.Verify(ctx, paymentID, session.UserID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "payment_verified", requestID, "info",
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyPaymentSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) RejectPayment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	request := new(requests.RejectPayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.Reject(ctx, paymentID, session.UserID, request.Reason)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogSecurityEvent(ctrl.Log, "payment_rejected", requestID, "info",
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingActorIDKey, session.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RejectPaymentSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) CheckPaymentExpiry(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.CheckExpiry(ctx, paymentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckPaymentExpirySuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.MarkPaid(ctx, paymentID, session.UserID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkPaymentPaidSuccessMessage, utils.MapPaymentToResponse(payment))
}

func (ctrl *PaymentController) CancelPayment(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	session, ok := sessionFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	payment, err := ctrl.PaymentUsecase.Cancel(ctx, session, paymentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelPaymentSuccessMessage, utils.MapPaymentToResponse(payment))
}
