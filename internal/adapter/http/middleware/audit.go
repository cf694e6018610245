package middleware

import (
	"encoding/json"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records every successful write operation as an audit entry.
// Reads and failed requests are skipped; the action is resolved from
// the matched route pattern, not the raw path, so ids never leak into
// the action mapping.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			return
		}

		action, resourceType := mapRouteToAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		var merchantID *string
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(string); ok && id != "" {
				merchantID = &id
			}
		}

		details, _ := json.Marshal(map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditEntry{
			ID:           "aud_" + uuid.NewString(),
			MerchantID:   merchantID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			Details:      string(details),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(method, route string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/payments" && method == "POST":
		return domain.AuditActionPaymentCreate, "payment"
	case route == "/api/v1/payments/:id/update" && method == "POST":
		return domain.AuditActionPaymentUpdate, "payment"
	case (route == "/api/v1/payments/:id/confirm" || route == "/api/v1/client/payments/:id/confirm") && method == "POST":
		return domain.AuditActionPaymentConfirm, "payment"
	case route == "/api/v1/payments/:id/capture" && method == "POST":
		return domain.AuditActionPaymentCapture, "payment"
	case (route == "/api/v1/payments/:id/cancel" || route == "/api/v1/payments/:id/cancel_post_capture") && method == "POST":
		return domain.AuditActionPaymentCancel, "payment"
	case route == "/api/v1/payments/:id/reject" && method == "POST":
		return domain.AuditActionPaymentReject, "payment"
	case route == "/api/v1/refunds" && method == "POST":
		return domain.AuditActionRefundCreate, "refund"
	case route == "/api/v1/payouts" && method == "POST":
		return domain.AuditActionPayoutCreate, "payout"
	case route == "/api/v1/customers/:id/payment_methods" && method == "POST":
		return domain.AuditActionPaymentMethodSave, "payment_method"
	case route == "/api/v1/payment_methods/:id" && method == "DELETE":
		return domain.AuditActionPaymentMethodDelete, "payment_method"
	case route == "/api/v1/mandates/:id/revoke" && method == "POST":
		return domain.AuditActionMandateRevoke, "mandate"
	case route == "/api/v1/disputes/:id/accept" && method == "POST":
		return domain.AuditActionDisputeAccept, "dispute"
	case route == "/api/v1/disputes/:id/evidence" && method == "POST":
		return domain.AuditActionDisputeEvidence, "dispute"
	case route == "/api/v1/account/connectors" && method == "POST":
		return domain.AuditActionConnectorAccountCreate, "merchant_connector_account"
	case route == "/api/v1/account/profiles/:id" && method == "PUT":
		return domain.AuditActionProfileUpdate, "profile"
	}
	return "", ""
}
