package paymentsm

import "paymentcore/internal/core/domain"

// eligibleForConfirm implements the Confirm row of the eligibility
// table: RequiresConfirmation, RequiresPaymentMethod, RequiresCustomerAction.
func eligibleForConfirm(status domain.IntentStatus) bool {
	switch status {
	case domain.IntentStatusRequiresConfirmation,
		domain.IntentStatusRequiresPaymentMethod,
		domain.IntentStatusRequiresCustomerAction:
		return true
	default:
		return false
	}
}

// eligibleForCapture implements the Capture row: RequiresCapture,
// PartiallyCapturedAndCapturable.
func eligibleForCapture(status domain.IntentStatus) bool {
	switch status {
	case domain.IntentStatusRequiresCapture, domain.IntentStatusPartiallyCapturedAndCapturable:
		return true
	default:
		return false
	}
}

// eligibleForCancel implements the Cancel row: any non-terminal status
// except already Cancelled/Succeeded.
func eligibleForCancel(status domain.IntentStatus) bool {
	if status == domain.IntentStatusCancelled || status == domain.IntentStatusSucceeded {
		return false
	}
	return !status.IsTerminal()
}

// eligibleForCancelPostCapture implements the CancelPostCapture row:
// Succeeded, PartiallyCaptured, PartiallyCapturedAndCapturable.
func eligibleForCancelPostCapture(status domain.IntentStatus) bool {
	switch status {
	case domain.IntentStatusSucceeded, domain.IntentStatusPartiallyCaptured, domain.IntentStatusPartiallyCapturedAndCapturable:
		return true
	default:
		return false
	}
}

// eligibleForReject implements the Reject row: not in
// {Failed, Succeeded, Processing}.
func eligibleForReject(status domain.IntentStatus) bool {
	switch status {
	case domain.IntentStatusFailed, domain.IntentStatusSucceeded, domain.IntentStatusProcessing:
		return false
	default:
		return true
	}
}

// eligibleForRefund implements the Refund row, tested against the
// attempt (not intent) status: Charged, PartialCharged,
// PartialChargedAndCapturable.
func eligibleForRefund(status domain.AttemptStatus) bool {
	switch status {
	case domain.AttemptStatusCharged, domain.AttemptStatusPartialCharged, domain.AttemptStatusPartialChargedAndCapturable:
		return true
	default:
		return false
	}
}

// eligibleForUpdate implements the (pre-confirm) Update row: an intent
// that hasn't yet been confirmed against a connector.
func eligibleForUpdate(status domain.IntentStatus) bool {
	switch status {
	case domain.IntentStatusRequiresPaymentMethod, domain.IntentStatusRequiresConfirmation:
		return true
	default:
		return false
	}
}
