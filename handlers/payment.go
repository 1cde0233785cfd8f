package handlers

import (
	"net/http"

	"motorent/models"
	"motorent/services/booking"
	"motorent/services/payment"
	"motorent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler drives the checkout flow: order creation before the
// gateway checkout, then proof verification which is the only write path
// into the booking ledger.
type PaymentHandler struct {
	Gateway        payment.Gateway
	BookingService booking.BookingService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(gw payment.Gateway, bs booking.BookingService) *PaymentHandler {
	return &PaymentHandler{Gateway: gw, BookingService: bs}
}

// CreateOrderHandler handles POST /api/payment/order. The amount is quoted
// server-side from the car's daily rate, never taken from the client.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	var intent models.BookingIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid order request", err.Error())
		return
	}

	amount, err := h.BookingService.Quote(intent.CarID, intent)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	order, err := h.Gateway.CreateOrder(amount)
	if err != nil {
		zap.L().Error("Failed to create payment order", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// VerifyPaymentHandler handles POST /api/payment/verify. On a valid
// signature the booking is recorded and the car taken off the market; on a
// mismatch nothing is written.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	var req struct {
		Proof  models.PaymentProof  `json:"proof" binding:"required"`
		Intent models.BookingIntent `json:"intent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid verification request", err.Error())
		return
	}

	if err := h.Gateway.VerifyProof(req.Proof); err != nil {
		zap.L().Warn("Payment verification rejected",
			zap.String("orderId", req.Proof.OrderID),
			zap.String("paymentId", req.Proof.PaymentID))
		utils.RespondError(c, err)
		return
	}

	created, err := h.BookingService.CreateFromPayment(req.Proof, req.Intent, c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": created})
}
