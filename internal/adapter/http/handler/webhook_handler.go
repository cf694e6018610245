package handler

import (
	"io"

	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives inbound connector webhook deliveries. It is
// unauthenticated at the gin-route level — source authenticity is
// established inside WebhookService.HandleIncoming by verifying the
// connector's own signature against each candidate connector account.
type WebhookHandler struct {
	webhooks ports.WebhookService
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(webhooks ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Receive handles POST /webhooks/:merchant_id/:connector.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable webhook body"))
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	err = h.webhooks.HandleIncoming(c.Request.Context(), ports.InboundWebhookRequest{
		MerchantID:    c.Param("merchant_id"),
		ConnectorName: c.Param("connector"),
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"received": true})
}
