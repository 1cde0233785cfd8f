package models

import "time"

// PaymentStatusPaid is the only payment status the verified-payment path
// produces; unverified payments never reach the ledger.
const PaymentStatusPaid = "Paid"

// Booking represents a confirmed, paid reservation of a car for a date range.
// Bookings are immutable once written.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	CarID          string    `bson:"carId" json:"carId"`
	StartDate      time.Time `bson:"startDate" json:"startDate"`
	EndDate        time.Time `bson:"endDate" json:"endDate"`
	PickupLocation string    `bson:"pickupLocation" json:"pickupLocation"`
	ReturnLocation string    `bson:"returnLocation" json:"returnLocation"`
	TotalAmount    float64   `bson:"totalAmount" json:"totalAmount"`
	TransactionID  string    `bson:"transactionId" json:"transactionId"`
	PaymentStatus  string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingIntent is the renter-supplied part of a booking, bound at payment
// verification time. The amount is computed server-side from the car's rate.
type BookingIntent struct {
	CarID          string    `json:"carId"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	PickupLocation string    `json:"pickupLocation"`
	ReturnLocation string    `json:"returnLocation"`
}

// BookingWithCar joins a booking with its car at read time. Car is nil when
// the listing has since been removed by an admin.
type BookingWithCar struct {
	Booking `bson:",inline"`
	Car     *Car `bson:"car,omitempty" json:"car,omitempty"`
}
