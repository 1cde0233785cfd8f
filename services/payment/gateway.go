package payment

import (
	"fmt"
	"math"
	"time"

	"motorent/models"
	"motorent/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway creates checkout orders and verifies payment proofs. Only a
// verified proof may reach the booking ledger.
type Gateway interface {
	CreateOrder(amount float64) (*models.PaymentOrder, error)
	VerifyProof(proof models.PaymentProof) error
}

// RazorpayGateway is the production Gateway backed by the Razorpay API.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayGateway builds a Gateway from the configured key pair.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers a checkout order with the gateway. The gateway works
// in minor currency units, so the amount is converted to paise.
func (g *RazorpayGateway) CreateOrder(amount float64) (*models.PaymentOrder, error) {
	if amount <= 0 {
		return nil, utils.NewValidationError("amount must be positive")
	}

	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": "INR",
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, utils.NewDependencyError("failed to create payment order", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, utils.NewDependencyError("payment gateway returned no order id", nil)
	}

	return &models.PaymentOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: "INR",
	}, nil
}

// VerifyProof checks the client-submitted signature against the server-side
// HMAC. A mismatch is a security-relevant rejection, never retried.
func (g *RazorpayGateway) VerifyProof(proof models.PaymentProof) error {
	if proof.OrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return utils.NewValidationError("orderId, paymentId and signature are required")
	}
	if !VerifySignature(proof.OrderID, proof.PaymentID, proof.Signature, g.keySecret) {
		return utils.NewPaymentVerificationError("payment signature mismatch")
	}
	return nil
}
