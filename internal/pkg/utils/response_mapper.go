package utils

import (
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/dto/responses"
	"time"
)

func MapPaymentToResponse(payment *models.Payment) *responses.Payment {
	if payment == nil {
		return nil
	}

	return &responses.Payment{
		ID:              payment.ID,
		PaymentType:     string(payment.PaymentType),
		ReferenceID:     payment.ReferenceID,
		PayerID:         payment.PayerID,
		Amount:          payment.Amount.StringFixed(2),
		PaymentMethod:   string(payment.PaymentMethod),
		Status:          string(payment.Status),
		PaymentProofURL: derefString(payment.PaymentProofURL),
		PaymentDeadline: payment.PaymentDeadline,
		VerifiedBy:      derefString(payment.VerifiedBy),
		VerifiedAt:      payment.VerifiedAt,
		RejectionReason: derefString(payment.RejectionReason),
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
}

func MapPaymentsToResponse(payments []models.Payment) []responses.Payment {
	result := make([]responses.Payment, 0, len(payments))
	for i := range payments {
		result = append(result, *MapPaymentToResponse(&payments[i]))
	}
	return result
}

func MapWithdrawRequestToResponse(request *models.WithdrawRequest) *responses.WithdrawRequest {
	if request == nil {
		return nil
	}

	return &responses.WithdrawRequest{
		ID:                request.ID,
		OptometristID:     request.OptometristID,
		Amount:            request.Amount.StringFixed(2),
		BankName:          request.BankName,
		BankAccountNumber: request.BankAccountNumber,
		BankAccountName:   request.BankAccountName,
		Status:            string(request.Status),
		RequestedAt:       request.RequestedAt,
		ReviewedBy:        derefString(request.ReviewedBy),
		ReviewedAt:        request.ReviewedAt,
		Note:              derefString(request.Note),
	}
}

func MapWithdrawRequestsToResponse(requests []models.WithdrawRequest) []responses.WithdrawRequest {
	result := make([]responses.WithdrawRequest, 0, len(requests))
	for i := range requests {
		result = append(result, *MapWithdrawRequestToResponse(&requests[i]))
	}
	return result
}

func MapAuditLogsToResponse(logs []models.AuditLog) []responses.AuditLog {
	result := make([]responses.AuditLog, 0, len(logs))
	for _, log := range logs {
		result = append(result, responses.AuditLog{
			FromStatus: log.FromStatus,
			ToStatus:   log.ToStatus,
			ActorID:    log.ActorID,
			Reason:     log.Reason,
			OccurredAt: log.OccurredAt,
		})
	}
	return result
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func StringPtr(value string) *string {
	return &value
}

func TimePtr(value time.Time) *time.Time {
	return &value
}
