package responses

import "time"

type Payment struct {
	ID              string     `json:"id"`
	PaymentType     string     `json:"payment_type"`
	ReferenceID     string     `json:"reference_id"`
	PayerID         string     `json:"payer_id"`
	Amount          string     `json:"amount"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	PaymentProofURL string     `json:"payment_proof_url,omitempty"`
	PaymentDeadline *time.Time `json:"payment_deadline,omitempty"`
	VerifiedBy      string     `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AuditLog struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
