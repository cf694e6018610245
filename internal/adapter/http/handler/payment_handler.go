package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/adapter/http/middleware"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the PaymentIntent operation family.
type PaymentHandler struct {
	payments ports.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func merchantID(c *gin.Context) string {
	v, _ := c.Get(middleware.CtxMerchantID)
	s, _ := v.(string)
	return s
}

// Create handles POST /payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), ports.CreateIntentRequest{
		MerchantID:       merchantID(c),
		ProfileID:        req.ProfileID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		CustomerID:       req.CustomerID,
		CaptureMethod:    req.CaptureMethod,
		SetupFutureUsage: req.SetupFutureUsage,
		Description:      req.Description,
		ReturnURL:        req.ReturnURL,
		Metadata:         req.Metadata,
		BillingAddress:   req.BillingAddress,
		ShippingAddress:  req.ShippingAddress,
		IdempotencyKey:   c.GetHeader("X-Idempotency-Key"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, intent)
}

// Update handles POST /payments/:id/update.
func (h *PaymentHandler) Update(c *gin.Context) {
	var req dto.UpdateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	intent, err := h.payments.UpdateIntent(c.Request.Context(), ports.UpdateIntentRequest{
		MerchantID:      merchantID(c),
		PaymentID:       c.Param("id"),
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		Metadata:        req.Metadata,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Confirm handles POST /payments/:id/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	intent, err := h.payments.Confirm(c.Request.Context(), ports.ConfirmRequest{
		MerchantID:      merchantID(c),
		PaymentID:       c.Param("id"),
		ClientSecret:    req.ClientSecret,
		PaymentMethodID: req.PaymentMethodID,
		PaymentMethod:   req.PaymentMethod,
		VaultToken:      req.VaultToken,
		OffSession:      req.OffSession,
		MandateID:       req.MandateID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Capture handles POST /payments/:id/capture.
func (h *PaymentHandler) Capture(c *gin.Context) {
	var req dto.CaptureRequest
	_ = c.ShouldBindJSON(&req)
	intent, err := h.payments.Capture(c.Request.Context(), ports.CaptureRequest{
		MerchantID: merchantID(c),
		PaymentID:  c.Param("id"),
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Cancel handles POST /payments/:id/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	_ = c.ShouldBindJSON(&req)
	intent, err := h.payments.Cancel(c.Request.Context(), ports.CancelRequest{
		MerchantID: merchantID(c),
		PaymentID:  c.Param("id"),
		Reason:     req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// CancelPostCapture handles POST /payments/:id/cancel_post_capture.
func (h *PaymentHandler) CancelPostCapture(c *gin.Context) {
	var req dto.CancelRequest
	_ = c.ShouldBindJSON(&req)
	intent, err := h.payments.CancelPostCapture(c.Request.Context(), ports.CancelPostCaptureRequest{
		MerchantID: merchantID(c),
		PaymentID:  c.Param("id"),
		Reason:     req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Reject handles POST /payments/:id/reject.
func (h *PaymentHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	_ = c.ShouldBindJSON(&req)
	intent, err := h.payments.Reject(c.Request.Context(), ports.RejectRequest{
		MerchantID: merchantID(c),
		PaymentID:  c.Param("id"),
		Reason:     req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Sync handles POST /payments/:id/sync, forcing a connector round-trip.
func (h *PaymentHandler) Sync(c *gin.Context) {
	intent, err := h.payments.Sync(c.Request.Context(), merchantID(c), c.Param("id"), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// Status handles GET /payments/:id.
func (h *PaymentHandler) Status(c *gin.Context) {
	intent, err := h.payments.Status(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// SessionTokens handles GET /payments/:id/session_tokens.
func (h *PaymentHandler) SessionTokens(c *gin.Context) {
	result, err := h.payments.SessionTokens(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// PostSessionTokens handles POST /payments/:id/session_tokens/:connector.
func (h *PaymentHandler) PostSessionTokens(c *gin.Context) {
	var req dto.PostSessionTokensRequest
	_ = c.ShouldBindJSON(&req)
	intent, err := h.payments.PostSessionTokens(c.Request.Context(), merchantID(c), c.Param("id"), c.Param("connector"), req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// VerifyPaymentMethod handles POST /payment_methods/:id/verify.
func (h *PaymentHandler) VerifyPaymentMethod(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.payments.Verify(c.Request.Context(), ports.VerifyRequest{
		MerchantID:      merchantID(c),
		CustomerID:      req.CustomerID,
		PaymentMethodID: c.Param("id"),
	}); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"verified": true})
}
