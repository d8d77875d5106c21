package withdrawRequests

import (
	"context"
	"database/sql"
	"errors"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type withdrawRequestPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	withdrawRequestPostgresRepositoryInstance contracts.WithdrawRequestRepository
	onceWithdrawRequestPostgresRepository     sync.Once
)

func NewWithdrawRequestPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.WithdrawRequestRepository {
	onceWithdrawRequestPostgresRepository.Do(func() {
		withdrawRequestPostgresRepositoryInstance = &withdrawRequestPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return withdrawRequestPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWithdrawRequest(row rowScanner) (*models.WithdrawRequest, error) {
	var request models.WithdrawRequest
	err := row.Scan(
		&request.ID,
		&request.OptometristID,
		&request.Amount,
		&request.BankName,
		&request.BankAccountNumber,
		&request.BankAccountName,
		&request.Status,
		&request.RequestedAt,
		&request.ReviewedBy,
		&request.ReviewedAt,
		&request.Note,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *withdrawRequestPostgresRepository) Insert(ctx context.Context, request *models.WithdrawRequest) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertWithdrawRequest,
		request.ID,
		request.OptometristID,
		request.Amount,
		request.BankName,
		request.BankAccountNumber,
		request.BankAccountName,
		request.Status,
		request.RequestedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *withdrawRequestPostgresRepository) FindByID(ctx context.Context, withdrawRequestID string) (*models.WithdrawRequest, error) {
	request, err := scanWithdrawRequest(r.DB.QueryRowContext(ctx, queries.GetWithdrawRequestByID, withdrawRequestID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return request, nil
}

// FindAll lists every status when status is empty.
func (r *withdrawRequestPostgresRepository) FindAll(ctx context.Context, status models.WithdrawStatus, limit, offset int) ([]models.WithdrawRequest, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetWithdrawRequests, status, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	requests := make([]models.WithdrawRequest, 0)
	for rows.Next() {
		request, err := scanWithdrawRequest(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		requests = append(requests, *request)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return requests, nil
}

func (r *withdrawRequestPostgresRepository) Count(ctx context.Context, status models.WithdrawStatus) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, queries.CountWithdrawRequests, status).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (r *withdrawRequestPostgresRepository) UpdateTransition(ctx context.Context, transition *models.WithdrawTransition) (*models.WithdrawRequest, error) {
	var note interface{}
	if transition.Note != nil {
		note = *transition.Note
	}

	row := r.DB.QueryRowContext(ctx, queries.UpdateWithdrawRequestTransition,
		transition.WithdrawRequestID,
		transition.To,
		transition.ReviewedBy,
		transition.ReviewedAt,
		note,
		transition.UpdatedAt,
		transition.From,
	)

	request, err := scanWithdrawRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return request, nil
}
