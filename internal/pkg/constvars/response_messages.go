package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	CreatePaymentSuccessMessage       = "payment created successfully"
	GetPaymentSuccessMessage          = "get payment successfully"
	GetPendingPaymentsSuccessMessage  = "get payments waiting for verification successfully"
	GetPaymentAuditLogsSuccessMessage = "get payment audit logs successfully"
	SubmitPaymentProofSuccessMessage  = "payment proof submitted successfully"
	VerifyPaymentSuccessMessage       = "payment verified successfully"
	RejectPaymentSuccessMessage       = "payment rejected successfully"
	CheckPaymentExpirySuccessMessage  = "payment expiry checked successfully"
	MarkPaymentPaidSuccessMessage     = "payment marked as paid successfully"
	CancelPaymentSuccessMessage       = "payment cancelled successfully"

	CreateWithdrawRequestSuccessMessage   = "withdraw request created successfully"
	GetWithdrawRequestSuccessMessage      = "get withdraw request successfully"
	GetWithdrawRequestsSuccessMessage     = "get withdraw requests successfully"
	ApproveWithdrawRequestSuccessMessage  = "withdraw request approved successfully"
	RejectWithdrawRequestSuccessMessage   = "withdraw request rejected successfully"
	MarkWithdrawRequestPaidSuccessMessage = "withdraw request marked as paid successfully"
)
