package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
)

// PaymentUseCase records payments against bookings.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	bookings repository.BookingRepository
	events   EventSink
	now      func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository, bookings repository.BookingRepository, events EventSink) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		bookings: bookings,
		events:   sinkOrDiscard(events),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Process settles the booking total. The payment keeps a copy of the booking.
func (u *PaymentUseCase) Process(ctx context.Context, booking model.Booking) (*model.Payment, error) {
	payment := model.NewPayment(booking)
	payment.Complete(u.now())

	stored, err := u.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	u.events.Enqueue(model.PaymentEvent(*stored))
	return stored, nil
}

// ProcessFor pays for a live booking owned by the customer.
func (u *PaymentUseCase) ProcessFor(ctx context.Context, customerID, bookingID int64) (*model.Payment, error) {
	booking, err := u.bookings.GetForCustomer(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	return u.Process(ctx, *booking)
}

// ListFor returns payments of the customer in ledger order.
func (u *PaymentUseCase) ListFor(ctx context.Context, customerID int64) ([]model.Payment, error) {
	return u.payments.ListByCustomer(ctx, customerID)
}
