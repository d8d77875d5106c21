package queries

const (
	withdrawRequestColumns = `
		id, optometrist_id, amount, bank_name, bank_account_number, bank_account_name,
		status, requested_at, reviewed_by, reviewed_at, note, updated_at`

	InsertWithdrawRequest = `
		INSERT INTO withdraw_requests (
			id, optometrist_id, amount, bank_name, bank_account_number, bank_account_name,
			status, requested_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	GetWithdrawRequestByID = `
		SELECT` + withdrawRequestColumns + `
		FROM withdraw_requests
		WHERE id = $1
	`

	GetWithdrawRequests = `
		SELECT` + withdrawRequestColumns + `
		FROM withdraw_requests
		WHERE ($1::text = '' OR status = $1)
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3
	`

	CountWithdrawRequests = `
		SELECT COUNT(*)
		FROM withdraw_requests
		WHERE ($1::text = '' OR status = $1)
	`

	UpdateWithdrawRequestTransition = `
		UPDATE withdraw_requests
		SET status = $2,
			reviewed_by = $3,
			reviewed_at = $4,
			note = COALESCE($5, note),
			updated_at = $6
		WHERE id = $1 AND status = $7
		RETURNING` + withdrawRequestColumns + `
	`
)
