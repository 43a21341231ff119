package console

import (
	"fmt"
	"strings"

	"github.com/polkiloo/staybook/internal/domain/model"
)

func formatProperty(p model.Property) string {
	return fmt.Sprintf("%s - $%s per night, Amenities: %s",
		p.Location, p.NightlyPrice.String(), strings.Join(p.Amenities, ", "))
}

func formatBooking(b model.Booking, customer string) string {
	return fmt.Sprintf("Booking(%d): %s booked %s from %s to %s at $%s",
		b.ID, customer, b.Location,
		b.CheckIn.Format(model.DateLayout), b.CheckOut.Format(model.DateLayout),
		b.TotalPrice.String())
}

func formatPayment(p model.Payment) string {
	return fmt.Sprintf("Payment(%d): $%s, Status: %s", p.ID, p.Amount.String(), statusLabel(p.Status))
}

func statusLabel(s model.PaymentStatus) string {
	switch s {
	case model.PaymentStatusCompleted:
		return "Completed"
	case model.PaymentStatusPending:
		return "Pending"
	default:
		return string(s)
	}
}
