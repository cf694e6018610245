package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// RefundHandler exposes the Refund operation family.
type RefundHandler struct {
	refunds ports.RefundService
}

// NewRefundHandler creates a RefundHandler.
func NewRefundHandler(refunds ports.RefundService) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

// Create handles POST /refunds.
func (h *RefundHandler) Create(c *gin.Context) {
	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	refund, err := h.refunds.CreateRefund(c.Request.Context(), ports.CreateRefundRequest{
		MerchantID:     merchantID(c),
		PaymentID:      req.PaymentID,
		Amount:         req.Amount,
		Reason:         req.Reason,
		IdempotencyKey: c.GetHeader("X-Idempotency-Key"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, refund)
}

// Get handles GET /refunds/:id.
func (h *RefundHandler) Get(c *gin.Context) {
	refund, err := h.refunds.GetRefund(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, refund)
}

// Sync handles POST /refunds/:id/sync.
func (h *RefundHandler) Sync(c *gin.Context) {
	refund, err := h.refunds.SyncRefund(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, refund)
}
