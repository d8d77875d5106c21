package payments

import (
	"fmt"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"
	"time"
)

type PaymentAction string

const (
	ActionSubmitProof PaymentAction = "submit_proof"
	ActionVerify      PaymentAction = "verify"
	ActionReject      PaymentAction = "reject"
	ActionExpire      PaymentAction = "expire"
	ActionMarkPaid    PaymentAction = "mark_paid"
	ActionCancel      PaymentAction = "cancel"
)

// ErrDeadlinePassed is an invalid state: a pending payment whose deadline is
// over can no longer receive a proof.
var ErrDeadlinePassed = fmt.Errorf("%w: payment deadline has passed", exceptions.ErrInvalidState)

// Describe renders the action for client messages, e.g. "payment cannot be verified".
func (a PaymentAction) Describe() string {
	switch a {
	case ActionSubmitProof:
		return "submitted for verification"
	case ActionVerify:
		return "verified"
	case ActionReject:
		return "rejected"
	case ActionExpire:
		return "expired"
	case ActionMarkPaid:
		return "marked as paid"
	case ActionCancel:
		return "cancelled"
	}
	return string(a)
}

// TransitionPayment returns the status a payment moves to when action is
// applied, or an error wrapping exceptions.ErrInvalidState. It has no side effects.
func TransitionPayment(current models.PaymentStatus, action PaymentAction, deadline *time.Time, now time.Time) (models.PaymentStatus, error) {
	pastDeadline := deadline != nil && now.After(*deadline)

	switch action {
	case ActionSubmitProof:
		if current != models.PaymentStatusPending {
			return current, invalidPaymentTransition(current, action)
		}
		if pastDeadline {
			return current, ErrDeadlinePassed
		}
		return models.PaymentStatusWaitingVerification, nil

	case ActionVerify:
		if current != models.PaymentStatusWaitingVerification {
			return current, invalidPaymentTransition(current, action)
		}
		return models.PaymentStatusVerified, nil

	case ActionReject:
		if current != models.PaymentStatusWaitingVerification {
			return current, invalidPaymentTransition(current, action)
		}
		return models.PaymentStatusRejected, nil

	case ActionExpire:
		if !IsExpirable(current) || !pastDeadline {
			return current, invalidPaymentTransition(current, action)
		}
		return models.PaymentStatusExpired, nil

	case ActionMarkPaid:
		if current != models.PaymentStatusPending {
			return current, invalidPaymentTransition(current, action)
		}
		return models.PaymentStatusPaid, nil

	case ActionCancel:
		if current != models.PaymentStatusPending {
			return current, invalidPaymentTransition(current, action)
		}
		return models.PaymentStatusCancelled, nil
	}

	return current, fmt.Errorf("%w: unknown payment action %q", exceptions.ErrInvalidState, action)
}

// IsExpirable reports whether the deadline still applies to a payment in this status.
func IsExpirable(status models.PaymentStatus) bool {
	return status == models.PaymentStatusPending || status == models.PaymentStatusWaitingVerification
}

// ShouldExpire is the lazy expiry rule evaluated whenever a payment is read.
func ShouldExpire(payment *models.Payment, now time.Time) bool {
	return IsExpirable(payment.Status) && payment.IsPastDeadline(now)
}

func invalidPaymentTransition(current models.PaymentStatus, action PaymentAction) error {
	return fmt.Errorf("%w: cannot %s payment in status %s", exceptions.ErrInvalidState, action, current)
}
