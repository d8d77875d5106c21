package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawStatus string

const (
	WithdrawStatusPending  WithdrawStatus = "PENDING"
	WithdrawStatusApproved WithdrawStatus = "APPROVED"
	WithdrawStatusPaid     WithdrawStatus = "PAID"
	WithdrawStatusRejected WithdrawStatus = "REJECTED"
)

func (s WithdrawStatus) IsValid() bool {
	switch s {
	case WithdrawStatusPending, WithdrawStatusApproved, WithdrawStatusPaid, WithdrawStatusRejected:
		return true
	}
	return false
}

type WithdrawRequest struct {
	ID                string          `json:"id"`
	OptometristID     string          `json:"optometrist_id"`
	Amount            decimal.Decimal `json:"amount"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	BankAccountName   string          `json:"bank_account_name"`
	Status            WithdrawStatus  `json:"status"`
	RequestedAt       time.Time       `json:"requested_at"`
	ReviewedBy        *string         `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time      `json:"reviewed_at,omitempty"`
	Note              *string         `json:"note,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type WithdrawTransition struct {
	WithdrawRequestID string
	From              WithdrawStatus
	To                WithdrawStatus
	ReviewedBy        string
	ReviewedAt        time.Time
	Note              *string
	UpdatedAt         time.Time
}
