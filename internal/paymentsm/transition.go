package paymentsm

import (
	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
)

// deriveIntentStatus folds a normalized connector result into the
// intent-level status. capturable
// is the amount still capturable after this result is applied.
func deriveIntentStatus(attemptStatus domain.AttemptStatus, captureMethod domain.CaptureMethod, capturable int64) domain.IntentStatus {
	switch attemptStatus {
	case domain.AttemptStatusAuthorized:
		if captureMethod == domain.CaptureMethodManual {
			return domain.IntentStatusRequiresCapture
		}
		// automatic capture: the confirm flow immediately chains a
		// Capture dispatch; RequiresCapture is the correct interim
		// state until that chain resolves.
		return domain.IntentStatusRequiresCapture
	case domain.AttemptStatusCharged:
		return domain.IntentStatusSucceeded
	case domain.AttemptStatusPartialCharged:
		if capturable > 0 {
			return domain.IntentStatusPartiallyCapturedAndCapturable
		}
		return domain.IntentStatusPartiallyCaptured
	case domain.AttemptStatusPartialChargedAndCapturable:
		return domain.IntentStatusPartiallyCapturedAndCapturable
	case domain.AttemptStatusAuthenticationPending, domain.AttemptStatusDeviceDataCollectionPending:
		return domain.IntentStatusRequiresCustomerAction
	case domain.AttemptStatusPending, domain.AttemptStatusCaptureInitiated:
		return domain.IntentStatusProcessing
	case domain.AttemptStatusVoided:
		return domain.IntentStatusCancelled
	case domain.AttemptStatusFailure, domain.AttemptStatusAuthorizationFailed, domain.AttemptStatusVoidFailed, domain.AttemptStatusCaptureFailed:
		return domain.IntentStatusFailed
	case domain.AttemptStatusAutoRefunded:
		return domain.IntentStatusCancelled
	default:
		return domain.IntentStatusProcessing
	}
}

// attemptUpdateFromResult builds the diff-only AttemptUpdate this
// connector result authorizes.
func attemptUpdateFromResult(result *ports.ConnectorResult, amountCaptured *int64) domain.AttemptUpdate {
	status := result.Status
	return domain.AttemptUpdate{
		UpdatedBy:              "connector_dispatch",
		Status:                 &status,
		ConnectorTransactionID: result.ConnectorTransactionID,
		AmountCaptured:         amountCaptured,
		ErrorCode:              result.ErrorCode,
		ErrorMessage:           result.ErrorMessage,
		ErrorReason:            result.ErrorReason,
		UnifiedCode:            result.UnifiedCode,
		UnifiedMessage:         result.UnifiedMessage,
		RedirectionData:        result.RedirectionData,
		IntegrityCheck:         &result.IntegrityCheck,
	}
}

// isRetriableResult reports whether a failed dispatch should be
// rescheduled through the process tracker rather than terminally
// failing the attempt.
func isRetriableResult(result *ports.ConnectorResult) bool {
	return result.Status == domain.AttemptStatusPending
}

// eventTypeForIntent maps an intent status worth notifying a merchant
// about to the outgoing webhook event type, or ("", false) if this
// status change doesn't warrant one.
func eventTypeForIntent(status domain.IntentStatus) (domain.EventType, bool) {
	switch status {
	case domain.IntentStatusSucceeded:
		return domain.EventPaymentSucceeded, true
	case domain.IntentStatusFailed:
		return domain.EventPaymentFailed, true
	case domain.IntentStatusRequiresCustomerAction, domain.IntentStatusRequiresMerchantAction:
		return domain.EventActionRequired, true
	case domain.IntentStatusProcessing:
		return domain.EventPaymentProcessing, true
	default:
		return "", false
	}
}
