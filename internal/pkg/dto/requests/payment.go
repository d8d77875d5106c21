package requests

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayment struct {
	PaymentType     string          `json:"payment_type" validate:"required,oneof=order appointment"`
	ReferenceID     string          `json:"reference_id" validate:"required,not_blank,max=64"`
	Amount          decimal.Decimal `json:"amount" validate:"required,amount"`
	PaymentMethod   string          `json:"payment_method" validate:"required,oneof=xendit bank_transfer manual other"`
	PaymentDeadline *time.Time      `json:"payment_deadline" validate:"omitempty,future_ttl"`
	PayerID         string          `json:"-"`
}

type SubmitPaymentProof struct {
	ProofURL string `json:"proof_url" validate:"required,url"`
}

// UploadPaymentProof carries a proof file received as multipart form data.
type UploadPaymentProof struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

type RejectPayment struct {
	Reason string `json:"reason"`
}
