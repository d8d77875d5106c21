package contracts

import (
	"context"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/dto/requests"
)

type WithdrawRequestRepository interface {
	Insert(ctx context.Context, request *models.WithdrawRequest) error
	FindByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error)
	FindAll(ctx context.Context, status models.WithdrawStatus, limit, offset int) ([]models.WithdrawRequest, error)
	Count(ctx context.Context, status models.WithdrawStatus) (int, error)
	// UpdateTransition returns nil when the row is no longer in transition.From.
	UpdateTransition(ctx context.Context, transition *models.WithdrawTransition) (*models.WithdrawRequest, error)
}

type WithdrawRequestUsecase interface {
	CreateWithdrawRequest(ctx context.Context, request *requests.CreateWithdrawRequest) (*models.WithdrawRequest, error)
	GetWithdrawRequestByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error)
	ListWithdrawRequests(ctx context.Context, filter *requests.WithdrawRequestFilter) ([]models.WithdrawRequest, int, error)
	Approve(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error)
	Reject(ctx context.Context, withdrawRequestID, adminID, reason string) (*models.WithdrawRequest, error)
	MarkPaid(ctx context.Context, withdrawRequestID, adminID string) (*models.WithdrawRequest, error)
}
