package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes Customer, PaymentMethod and Mandate resources.
type CustomerHandler struct {
	customers ports.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	customer, err := h.customers.CreateCustomer(c.Request.Context(), &domain.Customer{
		MerchantID: merchantID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Metadata:   req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, customer)
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.GetCustomer(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, customer)
}

// ListPaymentMethods handles GET /customers/:id/payment_methods.
func (h *CustomerHandler) ListPaymentMethods(c *gin.Context) {
	pms, err := h.customers.ListPaymentMethods(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, pms)
}

// SavePaymentMethod handles POST /customers/:id/payment_methods.
func (h *CustomerHandler) SavePaymentMethod(c *gin.Context) {
	var req dto.SavePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	pm, err := h.customers.SavePaymentMethod(c.Request.Context(), &domain.PaymentMethod{
		MerchantID:  merchantID(c),
		CustomerID:  c.Param("id"),
		Type:        req.Type,
		Token:       req.Token,
		Last4:       req.Last4,
		CardNetwork: req.CardNetwork,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pm)
}

// DeletePaymentMethod handles DELETE /payment_methods/:id.
func (h *CustomerHandler) DeletePaymentMethod(c *gin.Context) {
	if err := h.customers.DeletePaymentMethod(c.Request.Context(), merchantID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// RevokeMandate handles POST /mandates/:id/revoke.
func (h *CustomerHandler) RevokeMandate(c *gin.Context) {
	if err := h.customers.RevokeMandate(c.Request.Context(), merchantID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"revoked": true})
}
