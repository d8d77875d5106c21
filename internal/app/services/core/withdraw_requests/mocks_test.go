package withdrawRequests

import (
	"context"
	"halo-optom-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockWithdrawRequestRepository struct {
	mock.Mock
}

func (m *MockWithdrawRequestRepository) Insert(ctx context.Context, request *models.WithdrawRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWithdrawRequestRepository) FindByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, withdrawRequestID)
	request, _ := args.Get(0).(*models.WithdrawRequest)
	return request, args.Error(1)
}

func (m *MockWithdrawRequestRepository) FindAll(ctx context.Context, status models.WithdrawStatus, limit, offset int) ([]models.WithdrawRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	requests, _ := args.Get(0).([]models.WithdrawRequest)
	return requests, args.Error(1)
}

func (m *MockWithdrawRequestRepository) Count(ctx context.Context, status models.WithdrawStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockWithdrawRequestRepository) UpdateTransition(ctx context.Context, transition *models.WithdrawTransition) (*models.WithdrawRequest, error) {
	args := m.Called(ctx, transition)
	request, _ := args.Get(0).(*models.WithdrawRequest)
	return request, args.Error(1)
}

type MockTransitionRecorder struct {
	mock.Mock
}

func (m *MockTransitionRecorder) Record(ctx context.Context, entry *models.AuditLog) {
	m.Called(ctx, entry)
}
