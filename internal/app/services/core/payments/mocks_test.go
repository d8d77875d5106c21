package payments

import (
	"context"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Insert(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindByStatus(ctx context.Context, status models.PaymentStatus, limit, offset int) ([]models.Payment, error) {
	args := m.Called(ctx, status, limit, offset)
	payments, _ := args.Get(0).([]models.Payment)
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) CountByStatus(ctx context.Context, status models.PaymentStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) UpdateTransition(ctx context.Context, transition *models.PaymentTransition) (*models.Payment, error) {
	args := m.Called(ctx, transition)
	payment, _ := args.Get(0).(*models.Payment)
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindExpirableIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	args := m.Called(ctx, now, limit)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindByEntity(ctx context.Context, entityType, entityID string) ([]models.AuditLog, error) {
	args := m.Called(ctx, entityType, entityID)
	logs, _ := args.Get(0).([]models.AuditLog)
	return logs, args.Error(1)
}

type MockTransitionRecorder struct {
	mock.Mock
}

func (m *MockTransitionRecorder) Record(ctx context.Context, entry *models.AuditLog) {
	m.Called(ctx, entry)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content io.Reader, size int64) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, content, size)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockPaymentUsecase struct {
	mock.Mock
	contracts.PaymentUsecase
}

func (m *MockPaymentUsecase) ExpireOverdue(ctx context.Context, limit int) (int, error) {
	args := m.Called(ctx, limit)
	return args.Int(0), args.Error(1)
}
