package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler exposes merchant self-service: account lookup,
// connector-account onboarding, and business profile configuration.
type MerchantHandler struct {
	merchants ports.MerchantService
}

// NewMerchantHandler creates a MerchantHandler.
func NewMerchantHandler(merchants ports.MerchantService) *MerchantHandler {
	return &MerchantHandler{merchants: merchants}
}

// GetMe handles GET /account/me.
func (h *MerchantHandler) GetMe(c *gin.Context) {
	m, err := h.merchants.GetMerchant(c.Request.Context(), merchantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

// CreateConnectorAccount handles POST /account/connectors. Restricted to
// the admin key variant since it provisions processor credentials.
func (h *MerchantHandler) CreateConnectorAccount(c *gin.Context) {
	var req dto.CreateConnectorAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mca, err := h.merchants.CreateConnectorAccount(c.Request.Context(), &domain.MerchantConnectorAccount{
		ProfileID:      req.ProfileID,
		MerchantID:     merchantID(c),
		ConnectorName:  req.ConnectorName,
		ConnectorLabel: req.ConnectorLabel,
		AuthType:       req.AuthType,
		UseUCS:         req.UseUCS,
		TestMode:       req.TestMode,
	}, req.Credentials)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, mca)
}

// UpdateBusinessProfile handles PUT /account/profiles/:id.
func (h *MerchantHandler) UpdateBusinessProfile(c *gin.Context) {
	var req dto.UpdateBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	profile, err := h.merchants.UpdateBusinessProfile(c.Request.Context(), c.Param("id"), req.RoutingAlgorithmID, req.DefaultConnectorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}
