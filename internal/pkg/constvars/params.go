package constvars

const (
	URLParamPaymentID         = "payment_id"
	URLParamWithdrawRequestID = "withdraw_request_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamStatus   = "status"
)

const (
	FormFieldPaymentProof = "proof"
)
