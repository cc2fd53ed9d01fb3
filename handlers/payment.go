package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickmed/services/payment"
	"quickmed/utils"
)

// PaymentHandler serves payment-intent creation.
type PaymentHandler struct {
	Svc payment.Service
}

// NewPaymentHandler wires the payment handler.
func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreateIntent returns a client secret for a booking's bill
// (POST /create-payment-intent). The bill is in the smallest currency unit.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var body struct {
		Bill int64 `json:"bill"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid payment request"))
		return
	}

	clientSecret, err := h.Svc.CreateIntent(c.Request.Context(), body.Bill)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
