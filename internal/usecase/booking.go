package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
)

// BookingUseCase manages the booking ledger.
type BookingUseCase struct {
	bookings repository.BookingRepository
	events   EventSink
	now      func() time.Time
}

// NewBookingUseCase constructs BookingUseCase.
func NewBookingUseCase(bookings repository.BookingRepository, events EventSink) *BookingUseCase {
	return &BookingUseCase{
		bookings: bookings,
		events:   sinkOrDiscard(events),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create books propertyID for the customer. Dates are YYYY-MM-DD; the total is
// nights multiplied by the nightly price.
func (u *BookingUseCase) Create(ctx context.Context, customerID, propertyID int64, checkIn, checkOut string) (*model.Booking, error) {
	stay, err := ParseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	booking, err := u.bookings.Create(ctx, customerID, propertyID, stay)
	if err != nil {
		return nil, err
	}

	u.events.Enqueue(model.BookingEvent(model.EventBookingCreated, *booking, u.now()))
	return booking, nil
}

// Checkout releases the property of a customer's booking and removes the booking.
func (u *BookingUseCase) Checkout(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	booking, err := u.bookings.Remove(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}

	u.events.Enqueue(model.BookingEvent(model.EventBookingCheckedOut, *booking, u.now()))
	return booking, nil
}

// ListFor returns live bookings of the customer in ledger order.
func (u *BookingUseCase) ListFor(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return u.bookings.ListByCustomer(ctx, customerID)
}

// Get returns a live booking owned by the customer.
func (u *BookingUseCase) Get(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	return u.bookings.GetForCustomer(ctx, customerID, bookingID)
}
