package payments

import (
	"context"
	"database/sql"
	"errors"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/queries"
	"sync"
	"time"

	"go.uber.org/zap"
)

type paymentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	paymentPostgresRepositoryInstance contracts.PaymentRepository
	oncePaymentPostgresRepository     sync.Once
)

func NewPaymentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PaymentRepository {
	oncePaymentPostgresRepository.Do(func() {
		paymentPostgresRepositoryInstance = &paymentPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return paymentPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID,
		&payment.PaymentType,
		&payment.ReferenceID,
		&payment.PayerID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.PaymentProofURL,
		&payment.PaymentDeadline,
		&payment.VerifiedBy,
		&payment.VerifiedAt,
		&payment.RejectionReason,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentPostgresRepository) Insert(ctx context.Context, payment *models.Payment) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertPayment,
		payment.ID,
		payment.PaymentType,
		payment.ReferenceID,
		payment.PayerID,
		payment.Amount,
		payment.PaymentMethod,
		payment.Status,
		payment.PaymentDeadline,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *paymentPostgresRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := scanPayment(r.DB.QueryRowContext(ctx, queries.GetPaymentByID, paymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return payment, nil
}

func (r *paymentPostgresRepository) FindByStatus(ctx context.Context, status models.PaymentStatus, limit, offset int) ([]models.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPaymentsByStatus, status, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		payments = append(payments, *payment)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return payments, nil
}

func (r *paymentPostgresRepository) CountByStatus(ctx context.Context, status models.PaymentStatus) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, queries.CountPaymentsByStatus, status).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (r *paymentPostgresRepository) UpdateTransition(ctx context.Context, transition *models.PaymentTransition) (*models.Payment, error) {
	row := r.DB.QueryRowContext(ctx, queries.UpdatePaymentTransition,
		transition.PaymentID,
		transition.To,
		nullableString(transition.ProofURL),
		nullableString(transition.VerifiedBy),
		nullableTime(transition.VerifiedAt),
		nullableString(transition.RejectionReason),
		transition.UpdatedAt,
		transition.From,
	)

	payment, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return payment, nil
}

func (r *paymentPostgresRepository) FindExpirableIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetExpirablePaymentIDs, now, limit)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return ids, nil
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
