package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus describes payment lifecycle. Transitions are one-way.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// Payment records settlement of a booking. Booking is a snapshot taken when the
// payment was created and stays valid after the booking is checked out.
type Payment struct {
	ID          int64
	Booking     Booking
	Amount      decimal.Decimal
	Status      PaymentStatus
	ProcessedAt time.Time
}

// NewPayment creates a pending payment for the booking total.
func NewPayment(b Booking) Payment {
	return Payment{
		Booking: b,
		Amount:  b.TotalPrice,
		Status:  PaymentStatusPending,
	}
}

// Complete moves a pending payment to completed and reports whether it did.
func (p *Payment) Complete(at time.Time) bool {
	if p.Status != PaymentStatusPending {
		return false
	}
	p.Status = PaymentStatusCompleted
	p.ProcessedAt = at
	return true
}

// CustomerID returns the owner of the paid booking.
func (p Payment) CustomerID() int64 {
	return p.Booking.CustomerID
}
