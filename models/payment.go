package models

// PaymentOrder is the gateway order created before checkout.
type PaymentOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentProof is the client-submitted result of a gateway checkout. The
// signature must match the server-side HMAC before any booking is written.
type PaymentProof struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// AdminStats aggregates the dashboard counters.
type AdminStats struct {
	TotalUsers     int64   `json:"totalUsers"`
	AvailableCars  int64   `json:"availableCars"`
	ActiveBookings int64   `json:"activeBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}
