package withdrawRequests

import (
	"fmt"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"
)

type WithdrawAction string

const (
	ActionApprove  WithdrawAction = "approve"
	ActionReject   WithdrawAction = "reject"
	ActionMarkPaid WithdrawAction = "mark_paid"
)

func (a WithdrawAction) Describe() string {
	switch a {
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	case ActionMarkPaid:
		return "marked as paid"
	}
	return string(a)
}

// TransitionWithdraw returns the status a withdraw request moves to when
// action is applied, or an error wrapping exceptions.ErrInvalidState.
// Transitions only move forward: PENDING to APPROVED or REJECTED, APPROVED to PAID.
func TransitionWithdraw(current models.WithdrawStatus, action WithdrawAction) (models.WithdrawStatus, error) {
	switch action {
	case ActionApprove:
		if current == models.WithdrawStatusPending {
			return models.WithdrawStatusApproved, nil
		}
	case ActionReject:
		if current == models.WithdrawStatusPending {
			return models.WithdrawStatusRejected, nil
		}
	case ActionMarkPaid:
		if current == models.WithdrawStatusApproved {
			return models.WithdrawStatusPaid, nil
		}
	default:
		return current, fmt.Errorf("%w: unknown withdraw action %q", exceptions.ErrInvalidState, action)
	}

	return current, fmt.Errorf("%w: cannot %s withdraw request in status %s", exceptions.ErrInvalidState, action, current)
}
