package controllers

import (
	"context"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*models.Payment, error) {
	args := m.Called(ctx, request)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) GetPaymentByID(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, session, paymentID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) ListPendingPayments(ctx context.Context, pagination *requests.Pagination) ([]models.Payment, int, error) {
	args := m.Called(ctx, pagination)
	payments, _ := args.Get(0).([]models.Payment)
	return payments, args.Int(1), args.Error(2)
}

func (m *MockPaymentUsecase) ListPaymentAuditLogs(ctx context.Context, paymentID string) ([]models.AuditLog, error) {
	args := m.Called(ctx, paymentID)
	logs, _ := args.Get(0).([]models.AuditLog)
	return logs, args.Error(1)
}

func (m *MockPaymentUsecase) SubmitProof(ctx context.Context, session *models.Session, paymentID, proofURL string) (*models.Payment, error) {
	args := m.Called(ctx, session, paymentID, proofURL)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) SubmitProofFile(ctx context.Context, session *models.Session, paymentID string, proof *requests.UploadPaymentProof) (*models.Payment, error) {
	args := m.Called(ctx, session, paymentID, proof)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) Verify(ctx context.Context, paymentID, adminID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, adminID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) Reject(ctx context.Context, paymentID, adminID, reason string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, adminID, reason)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) CheckExpiry(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) MarkPaid(ctx context.Context, paymentID, actorID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, actorID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) Cancel(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, session, paymentID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) ExpireOverdue(ctx context.Context, limit int) (int, error) {
	args := m.Called(ctx, limit)
	return args.Int(0), args.Error(1)
}

type MockWithdrawRequestUsecase struct {
	mock.Mock
}

func (m *MockWithdrawRequestUsecase) CreateWithdrawRequest(ctx context.Context, request *requests.CreateWithdrawRequest) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, request)
	withdrawRequest, _ := args.Get(0).(*models.WithdrawRequest)
	return withdrawRequest, args.Error(1)
}

func (m *MockWithdrawRequestUsecase) GetWithdrawRequestByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, withdrawRequestID)
	withdrawRequest, _ := args.Get(0).(*models.WithdrawRequest)
	return withdrawRequest, args.Error(1)
}

func (m *MockWithdrawRequestUsecase) ListWithdrawRequests(ctx context.Context, filter *requests.WithdrawRequestFilter) ([]models.WithdrawRequest, int, error) {
	args := m.Called(ctx, filter)
	withdrawRequests, _ := args.Get(0).([]models.WithdrawRequest)
	return withdrawRequests, args.Int(1), args.Error(2)
}

func (m *MockWithdrawRequestUsecase) Approve(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, withdrawRequestID, adminID)
	withdrawRequest, _ := args.Get(0).(*models.WithdrawRequest)
	return withdrawRequest, args.Error(1)
}

func (m *MockWithdrawRequestUsecase) Reject(ctx context.Context, withdrawRequestID, adminID, reason string) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, withdrawRequestID, adminID, reason)
	withdrawRequest, _ := args.Get(0).(*models.WithdrawRequest)
	return withdrawRequest, args.Error(1)
}

func (m *MockWithdrawRequestUsecase) MarkPaid(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, withdrawRequestID, adminID)
	withdrawRequest, _ := args.Get(0).(*models.WithdrawRequest)
	return withdrawRequest, args.Error(1)
}

// newControllerRequest builds a request the way the middleware chain leaves it:
// request id and session in context, URL params on the chi route context.
func newControllerRequest(method, target string, body io.Reader, session *models.Session, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	routeContext := chi.NewRouteContext()
	for key, value := range params {
		routeContext.URLParams.Add(key, value)
	}

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeContext)
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, "HALO_SVC_test")
	if session != nil {
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
	}
	return req.WithContext(ctx)
}
