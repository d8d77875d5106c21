package responses

import "time"

type WithdrawRequest struct {
	ID                string     `json:"id"`
	OptometristID     string     `json:"optometrist_id"`
	Amount            string     `json:"amount"`
	BankName          string     `json:"bank_name"`
	BankAccountNumber string     `json:"bank_account_number"`
	BankAccountName   string     `json:"bank_account_name"`
	Status            string     `json:"status"`
	RequestedAt       time.Time  `json:"requested_at"`
	ReviewedBy        string     `json:"reviewed_by,omitempty"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	Note              string     `json:"note,omitempty"`
}
