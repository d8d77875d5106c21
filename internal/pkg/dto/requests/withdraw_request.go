package requests

import "github.com/shopspring/decimal"

type CreateWithdrawRequest struct {
	Amount            decimal.Decimal `json:"amount" validate:"required,amount"`
	BankName          string          `json:"bank_name" validate:"required,not_blank,max=100"`
	BankAccountNumber string          `json:"bank_account_number" validate:"required,numeric,min=5,max=34"`
	BankAccountName   string          `json:"bank_account_name" validate:"required,not_blank,max=100"`
	OptometristID     string          `json:"-"`
}

type RejectWithdrawRequest struct {
	Reason string `json:"reason"`
}

type WithdrawRequestFilter struct {
	Status string
	Pagination
}
