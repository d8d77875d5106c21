package queries

const (
	paymentColumns = `
		id, payment_type, reference_id, payer_id, amount, payment_method, status,
		payment_proof_url, payment_deadline, verified_by, verified_at, rejection_reason,
		created_at, updated_at`

	InsertPayment = `
		INSERT INTO payments (
			id, payment_type, reference_id, payer_id, amount, payment_method, status,
			payment_deadline, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	GetPaymentByID = `
		SELECT` + paymentColumns + `
		FROM payments
		WHERE id = $1
	`

	GetPaymentsByStatus = `
		SELECT` + paymentColumns + `
		FROM payments
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	CountPaymentsByStatus = `
		SELECT COUNT(*)
		FROM payments
		WHERE status = $1
	`

	// Only rows still in the expected status are updated, so a concurrent
	// transition leaves this statement with no row to return.
	UpdatePaymentTransition = `
		UPDATE payments
		SET status = $2,
			payment_proof_url = COALESCE($3, payment_proof_url),
			verified_by = COALESCE($4, verified_by),
			verified_at = COALESCE($5, verified_at),
			rejection_reason = COALESCE($6, rejection_reason),
			updated_at = $7
		WHERE id = $1 AND status = $8
		RETURNING` + paymentColumns + `
	`

	GetExpirablePaymentIDs = `
		SELECT id
		FROM payments
		WHERE status IN ('pending', 'waiting_verification')
			AND payment_deadline IS NOT NULL
			AND payment_deadline < $1
		ORDER BY payment_deadline ASC
		LIMIT $2
	`
)
