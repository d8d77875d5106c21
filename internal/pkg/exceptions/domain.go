package exceptions

import "errors"

// Sentinels returned by the workflow state machines. Use errors.Is to test
// for them, they are usually wrapped with the attempted action.
var (
	ErrInvalidState = errors.New("invalid state transition")
	ErrBlankReason  = errors.New("reason must not be blank")

	// ErrNotPaymentOwner is reported to clients as not found.
	ErrNotPaymentOwner = errors.New("requester is neither the payer nor an admin")
)
