package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending             PaymentStatus = "pending"
	PaymentStatusWaitingVerification PaymentStatus = "waiting_verification"
	PaymentStatusVerified            PaymentStatus = "verified"
	PaymentStatusPaid                PaymentStatus = "paid"
	PaymentStatusRejected            PaymentStatus = "rejected"
	PaymentStatusExpired             PaymentStatus = "expired"
	PaymentStatusCancelled           PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusWaitingVerification, PaymentStatusVerified,
		PaymentStatusPaid, PaymentStatusRejected, PaymentStatusExpired, PaymentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition can leave this status.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusVerified, PaymentStatusPaid, PaymentStatusRejected, PaymentStatusExpired, PaymentStatusCancelled:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeOrder       PaymentType = "order"
	PaymentTypeAppointment PaymentType = "appointment"
)

type PaymentMethod string

const (
	PaymentMethodXendit       PaymentMethod = "xendit"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodManual       PaymentMethod = "manual"
	PaymentMethodOther        PaymentMethod = "other"
)

// RequiresManualProof reports whether the payer has to upload a transfer proof
// for an admin to verify.
func (m PaymentMethod) RequiresManualProof() bool {
	return m == PaymentMethodBankTransfer || m == PaymentMethodManual
}

type Payment struct {
	ID              string          `json:"id"`
	PaymentType     PaymentType     `json:"payment_type"`
	ReferenceID     string          `json:"reference_id"`
	PayerID         string          `json:"payer_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Status          PaymentStatus   `json:"status"`
	PaymentProofURL *string         `json:"payment_proof_url,omitempty"`
	PaymentDeadline *time.Time      `json:"payment_deadline,omitempty"`
	VerifiedBy      *string         `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsPastDeadline is false for payments without a deadline.
func (p *Payment) IsPastDeadline(now time.Time) bool {
	return p.PaymentDeadline != nil && now.After(*p.PaymentDeadline)
}

// PaymentTransition is a status change guarded by the status it starts from.
// Nil fields leave the stored column untouched.
type PaymentTransition struct {
	PaymentID       string
	From            PaymentStatus
	To              PaymentStatus
	ProofURL        *string
	VerifiedBy      *string
	VerifiedAt      *time.Time
	RejectionReason *string
	UpdatedAt       time.Time
}
