package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names a domain event; it doubles as the routing key.
type EventType string

const (
	EventBookingCreated    EventType = "booking.created"
	EventBookingCheckedOut EventType = "booking.checked_out"
	EventPaymentCompleted  EventType = "payment.completed"
)

// Event is emitted after a ledger mutation has been applied.
type Event struct {
	Type       EventType       `json:"type"`
	CustomerID int64           `json:"customer_id"`
	PropertyID int64           `json:"property_id"`
	BookingID  int64           `json:"booking_id"`
	PaymentID  int64           `json:"payment_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// BookingEvent builds an event describing a booking change.
func BookingEvent(t EventType, b Booking, at time.Time) Event {
	return Event{
		Type:       t,
		CustomerID: b.CustomerID,
		PropertyID: b.PropertyID,
		BookingID:  b.ID,
		Amount:     b.TotalPrice,
		OccurredAt: at,
	}
}

// PaymentEvent builds an event for a settled payment.
func PaymentEvent(p Payment) Event {
	ev := BookingEvent(EventPaymentCompleted, p.Booking, p.ProcessedAt)
	ev.PaymentID = p.ID
	ev.Amount = p.Amount
	return ev
}
