package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayoutHandler exposes the Payout operation family supplemented from
// connector-backed disbursement flows.
type PayoutHandler struct {
	payouts ports.PayoutService
}

// NewPayoutHandler creates a PayoutHandler.
func NewPayoutHandler(payouts ports.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// Create handles POST /payouts.
func (h *PayoutHandler) Create(c *gin.Context) {
	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	payout, err := h.payouts.CreatePayout(c.Request.Context(), ports.CreatePayoutRequest{
		MerchantID:          merchantID(c),
		CustomerID:          req.CustomerID,
		MerchantConnectorID: req.MerchantConnectorID,
		Amount:              req.Amount,
		Currency:            req.Currency,
		IdempotencyKey:      c.GetHeader("X-Idempotency-Key"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payout)
}

// Get handles GET /payouts/:id.
func (h *PayoutHandler) Get(c *gin.Context) {
	payout, err := h.payouts.GetPayout(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payout)
}
