package handler

import (
	"paymentcore/internal/adapter/http/dto"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
	"paymentcore/pkg/response"

	"github.com/gin-gonic/gin"
)

// DisputeHandler exposes the Dispute operation family.
type DisputeHandler struct {
	disputes ports.DisputeService
}

// NewDisputeHandler creates a DisputeHandler.
func NewDisputeHandler(disputes ports.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputes: disputes}
}

// Get handles GET /disputes/:id.
func (h *DisputeHandler) Get(c *gin.Context) {
	dispute, err := h.disputes.GetDispute(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dispute)
}

// List handles GET /disputes.
func (h *DisputeHandler) List(c *gin.Context) {
	disputes, err := h.disputes.ListDisputes(c.Request.Context(), merchantID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, disputes)
}

// Accept handles POST /disputes/:id/accept. Requires the admin key
// variant since accepting a dispute concedes the funds.
func (h *DisputeHandler) Accept(c *gin.Context) {
	dispute, err := h.disputes.Accept(c.Request.Context(), merchantID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dispute)
}

// SubmitEvidence handles POST /disputes/:id/evidence. Requires the admin
// key variant.
func (h *DisputeHandler) SubmitEvidence(c *gin.Context) {
	var req dto.SubmitEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dispute, err := h.disputes.SubmitEvidence(c.Request.Context(), merchantID(c), c.Param("id"), req.Evidence)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dispute)
}
