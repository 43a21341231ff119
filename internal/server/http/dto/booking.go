package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingRequest describes booking creation payload. Dates are YYYY-MM-DD.
type BookingRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

// BookingResponse describes a booking.
type BookingResponse struct {
	ID         int64           `json:"id"`
	PropertyID int64           `json:"property_id"`
	Location   string          `json:"location"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PaymentResponse describes a payment and the booking it settled.
type PaymentResponse struct {
	ID          int64           `json:"id"`
	BookingID   int64           `json:"booking_id"`
	PropertyID  int64           `json:"property_id"`
	Location    string          `json:"location"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// HistoryResponse lists live bookings and payments of the current user.
type HistoryResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Payments []PaymentResponse `json:"payments"`
}
